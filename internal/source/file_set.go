package source

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every design file of a run. FileIDs are dense indexes and
// never reused; adding a path again creates a new version and Lookup
// returns the newest one. Not safe for concurrent mutation.
type FileSet struct {
	files   []File
	byPath  map[string]FileID
	baseDir string
}

func NewFileSet() *FileSet {
	return &FileSet{byPath: map[string]FileID{}}
}

// SetBaseDir sets the directory relative display paths are computed from.
func (s *FileSet) SetBaseDir(dir string) { s.baseDir = dir }

// BaseDir falls back to the working directory when unset.
func (s *FileSet) BaseDir() string {
	if s.baseDir != "" {
		return s.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Add stores already normalised content under path.
func (s *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(s.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	id := FileID(n)
	path = normalizePath(path)
	s.files = append(s.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	s.byPath[path] = id
	return id
}

// Load reads path, strips a UTF-8 BOM and folds CRLF before Add.
func (s *FileSet) Load(path string) (FileID, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- путь задаёт пользователь
	if err != nil {
		return 0, err
	}
	content, flags := normalize(raw)
	return s.Add(path, content, flags), nil
}

func normalize(raw []byte) ([]byte, FileFlags) {
	var flags FileFlags
	content, ok := removeBOM(raw)
	if ok {
		flags |= FileHadBOM
	}
	if content, ok = normalizeCRLF(content); ok {
		flags |= FileNormalizedCRLF
	}
	return content, flags
}

// AddVirtual adds in-memory content, flagged FileVirtual.
func (s *FileSet) AddVirtual(name string, content []byte) FileID {
	return s.Add(name, content, FileVirtual)
}

// Get returns nil for an unknown id.
func (s *FileSet) Get(id FileID) *File {
	if int(id) >= len(s.files) {
		return nil
	}
	return &s.files[id]
}

func (s *FileSet) Len() int { return len(s.files) }

// Lookup returns the newest FileID loaded under path.
func (s *FileSet) Lookup(path string) (FileID, bool) {
	id, ok := s.byPath[normalizePath(path)]
	return id, ok
}

// Resolve maps a span to positions; end is one past the last byte.
func (s *FileSet) Resolve(span Span) (start, end LineCol) {
	idx := s.files[span.File].LineIdx
	return toLineCol(idx, span.Start), toLineCol(idx, span.End)
}

// ResolveInclusive is Resolve with end at the last byte of the span.
func (s *FileSet) ResolveInclusive(span Span) (first, last LineCol) {
	idx := s.files[span.File].LineIdx
	return toLineCol(idx, span.Start), toLineCol(idx, span.Last())
}

// GetLine returns line n (1-based) without its newline, "" when out of range.
func (f *File) GetLine(n uint32) string {
	if n == 0 || int(n) > len(f.LineIdx)+1 {
		return ""
	}
	start := 0
	if n > 1 {
		start = int(f.LineIdx[n-2]) + 1
	}
	if start >= len(f.Content) {
		return ""
	}
	line := f.Content[start:]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return string(line)
}
