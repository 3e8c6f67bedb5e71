package source

import (
	"strconv"
	"strings"
)

// FileID is the index of a File in its FileSet.
type FileID uint32

// FileFlags records how a file's bytes were obtained and normalised.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // не с диска: тест, stdin, кэш
	FileHadBOM                               // UTF-8 BOM снят при загрузке
	FileNormalizedCRLF                       // \r\n заменены на \n
)

var fileFlagNames = []struct {
	flag FileFlags
	name string
}{
	{FileVirtual, "virtual"},
	{FileHadBOM, "bom"},
	{FileNormalizedCRLF, "crlf"},
}

// Has reports whether every bit of x is set.
func (f FileFlags) Has(x FileFlags) bool { return f&x == x }

// String lists the set flags as "bom|crlf"; no flags give "".
func (f FileFlags) String() string {
	var names []string
	for _, fn := range fileFlagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// File is one loaded design file. Content is raw bytes because VHDL
// sources are Latin-1; Hash is the SHA-256 of Content after normalisation.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // смещения всех '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based position; Col counts bytes, not runes.
type LineCol struct {
	Line uint32
	Col  uint32
}

// String formats the position as "line:col".
func (lc LineCol) String() string {
	return strconv.FormatUint(uint64(lc.Line), 10) + ":" + strconv.FormatUint(uint64(lc.Col), 10)
}

// PathStyle selects how File.DisplayPath renders a path.
type PathStyle uint8

const (
	PathAsGiven PathStyle = iota
	PathAuto              // длинные абсолютные пути сокращаются до имени
	PathAbsolute
	PathRelative // relative to the FileSet base dir
	PathBasename
)
