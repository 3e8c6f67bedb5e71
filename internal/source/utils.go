package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fortio.org/safecast"
)

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
	crlf    = []byte("\r\n")
)

// normalizeCRLF folds \r\n into \n; a lone \r stays.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, []byte{'\n'}), true
}

func removeBOM(content []byte) ([]byte, bool) {
	return bytes.CutPrefix(content, utf8BOM)
}

// buildLineIndex returns the offset of every '\n'. Files over 4 GiB are
// not supported anywhere in the pipeline.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for off := 0; ; off++ {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return out
		}
		off += i
		out = append(out, uint32(off)) // #nosec G115
	}
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// число переводов строк строго до off = номер строки (0-based);
	// сам '\n' принадлежит строке, которую он завершает
	n, _ := slices.BinarySearch(lineIdx, off)
	var startOff uint32
	if n > 0 {
		startOff = lineIdx[n-1] + 1
	}
	line, err := safecast.Conv[uint32](n + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{Line: line, Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns path as a cleaned absolute path.
func AbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(abs), nil
}

// RelativePath makes path relative to baseDir (cwd when empty). Paths that
// would escape baseDir are returned as absolute paths instead.
func RelativePath(path, baseDir string) (string, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		baseDir = wd
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(abs), nil
	}
	return filepath.ToSlash(rel), nil
}

// DisplayPath renders f.Path in style; baseDir only matters for
// PathRelative. Conversion errors fall back to the path as given.
func (f *File) DisplayPath(style PathStyle, baseDir string) string {
	var (
		out string
		err error
	)
	switch style {
	case PathAbsolute:
		out, err = AbsolutePath(f.Path)
	case PathRelative:
		out, err = RelativePath(f.Path, baseDir)
	case PathBasename:
		out = filepath.Base(f.Path)
	case PathAuto:
		out = f.Path
		if len(out) >= 40 && filepath.IsAbs(out) {
			out = filepath.Base(out)
		}
	default:
		out = f.Path
	}
	if err != nil {
		return f.Path
	}
	return out
}
