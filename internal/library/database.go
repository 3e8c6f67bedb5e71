package library

import (
	"errors"
	"fmt"

	"vhdlsema/internal/ident"
)

// ErrDuplicateLibrary is returned when a library name is registered twice.
var ErrDuplicateLibrary = errors.New("library already exists")

// DesignDatabase is the root of the design model: it owns every library.
type DesignDatabase struct {
	libs   []*Library
	byName map[ident.Key]*Library
}

func NewDesignDatabase() *DesignDatabase {
	return &DesignDatabase{byName: make(map[ident.Key]*Library)}
}

// PopulateBuiltins is the hook for predefined libraries (std, ieee).
// None are modelled yet.
func (db *DesignDatabase) PopulateBuiltins() {}

// AddLibrary registers lib.
func (db *DesignDatabase) AddLibrary(lib *Library) error {
	k := lib.ID().Key()
	if _, ok := db.byName[k]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateLibrary, lib.ID().Pretty())
	}
	db.byName[k] = lib
	db.libs = append(db.libs, lib)
	return nil
}

// FindLibrary returns the library named id or nil.
func (db *DesignDatabase) FindLibrary(id ident.Identifier) *Library {
	return db.byName[id.Key()]
}

// Libraries returns the libraries in registration order.
func (db *DesignDatabase) Libraries() []*Library { return db.libs }
