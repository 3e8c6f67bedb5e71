package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит разобранные деревья по хешу содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is one cached parse result.
type DiskPayload struct {
	Schema     uint16
	TreeSchema uint16
	Path       string // informational only; the key is the content hash
	Tree       []byte // parsetree.Marshal output
}

// OpenDiskCache opens the cache at dir, or at $XDG_CACHE_HOME/<app> when dir
// is empty.
func OpenDiskCache(dir, app string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог "trees": для удобства очистки
	return filepath.Join(c.dir, "trees", hexKey+".mp")
}

// Put stores tree under the content hash key.
func (c *DiskCache) Put(key [32]byte, path string, tree *parsetree.Node) error {
	if c == nil {
		return nil
	}
	data, err := parsetree.Marshal(tree)
	if err != nil {
		return err
	}
	payload := DiskPayload{
		Schema:     diskCacheSchemaVersion,
		TreeSchema: parsetree.SchemaVersion,
		Path:       path,
		Tree:       data,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) //nolint:errcheck // после Rename файла уже нет

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get loads the tree cached under key and rebinds its spans to file.
// Entries written by another schema count as misses.
func (c *DiskCache) Get(key [32]byte, file source.FileID) (*parsetree.Node, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close() //nolint:errcheck

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("cache entry %s: %w", f.Name(), err)
	}
	if payload.Schema != diskCacheSchemaVersion || payload.TreeSchema != parsetree.SchemaVersion {
		return nil, false, nil
	}
	tree, err := parsetree.Unmarshal(payload.Tree, file)
	if err != nil {
		return nil, false, err
	}
	return tree, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
