// Package ident models VHDL identifiers.
//
// A basic identifier (foo) is case-insensitive and restricted to letters,
// digits and single underlines; an extended identifier (\foo\) is
// case-sensitive and may hold any graphic Latin-1 character. Names are stored
// as raw Latin-1 bytes inside Go strings. The delimiters of extended
// identifiers are never part of the stored name.
package ident

import (
	"errors"
	"hash/fnv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrInvalidBasic reports a name that is not a legal basic identifier.
	ErrInvalidBasic = errors.New("ident: not a valid basic identifier")
	// ErrInvalidExtended reports a name that is not a legal extended identifier.
	ErrInvalidExtended = errors.New("ident: not a valid extended identifier")
	// ErrInvalidUTF8 reports undecodable UTF-8 input.
	ErrInvalidUTF8 = errors.New("ident: invalid UTF-8")
	// ErrNotLatin1 reports a code point above U+00FF.
	ErrNotLatin1 = errors.New("ident: character outside Latin-1")
)

// Identifier is an immutable, validated VHDL name. The zero value is not a
// valid identifier; build one with FromLatin1 or FromUTF8.
type Identifier struct {
	orig      string
	canonical string
	pretty    string
	extended  bool
}

// Key is the comparable part of an Identifier. Two identifiers are equal iff
// their keys are equal, so Key is what maps index by.
type Key struct {
	Canonical string
	Extended  bool
}

// FromLatin1 validates name (raw Latin-1 bytes) and builds an identifier.
func FromLatin1(name string, extended bool) (Identifier, error) {
	if extended {
		if name == "" {
			return Identifier{}, ErrInvalidExtended
		}
		for i := 0; i < len(name); i++ {
			if !IsExtendedChar(name[i]) {
				return Identifier{}, ErrInvalidExtended
			}
		}
	} else {
		for i := 0; i < len(name); i++ {
			if !IsBasicChar(name[i]) {
				return Identifier{}, ErrInvalidBasic
			}
		}
		if !validBasicShape(name) {
			return Identifier{}, ErrInvalidBasic
		}
	}

	canonical := name
	if !extended {
		canonical = LowerLatin1(name)
	}
	return Identifier{
		orig:      name,
		canonical: canonical,
		pretty:    PrettyLatin1(name),
		extended:  extended,
	}, nil
}

// FromUTF8 decodes name from UTF-8, requires every code point to fit in
// Latin-1 and then applies the same validation as FromLatin1.
func FromUTF8(name string, extended bool) (Identifier, error) {
	if !utf8.ValidString(name) {
		return Identifier{}, ErrInvalidUTF8
	}
	latin1, err := charmap.ISO8859_1.NewEncoder().String(name)
	if err != nil {
		return Identifier{}, ErrNotLatin1
	}
	return FromLatin1(latin1, extended)
}

// MustLatin1 is FromLatin1 for names known to be valid; it panics otherwise.
func MustLatin1(name string, extended bool) Identifier {
	id, err := FromLatin1(name, extended)
	if err != nil {
		panic(err)
	}
	return id
}

// Orig returns the name exactly as supplied (Latin-1).
func (id Identifier) Orig() string { return id.orig }

// Canonical returns the case-folded name for basic identifiers and the
// original name for extended ones.
func (id Identifier) Canonical() string { return id.canonical }

// Pretty returns a printable UTF-8 rendering of the original name.
func (id Identifier) Pretty() string { return id.pretty }

// Extended reports whether this is an extended identifier.
func (id Identifier) Extended() bool { return id.extended }

// IsValid reports whether id was produced by a constructor.
func (id Identifier) IsValid() bool { return id.orig != "" }

// Key returns the equality key of the identifier.
func (id Identifier) Key() Key {
	return Key{Canonical: id.canonical, Extended: id.extended}
}

// Equal reports whether both identifiers name the same thing.
func (id Identifier) Equal(other Identifier) bool {
	return id.extended == other.extended && id.canonical == other.canonical
}

// Hash is consistent with Equal.
func (id Identifier) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id.canonical)) //nolint:errcheck
	sum := h.Sum64()
	if id.extended {
		sum ^= 1
	}
	return sum
}

// String implements fmt.Stringer using the pretty name.
func (id Identifier) String() string { return id.pretty }
