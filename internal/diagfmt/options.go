package diagfmt

import "vhdlsema/internal/source"

// PathMode specifies how file paths are displayed.
type PathMode = source.PathStyle

const (
	PathModeAsGiven  = source.PathAsGiven
	PathModeAuto     = source.PathAuto
	PathModeAbsolute = source.PathAbsolute
	PathModeRelative = source.PathRelative
	PathModeBasename = source.PathBasename
)

// ClassicOpts configures the line-oriented text output.
type ClassicOpts struct {
	PathMode PathMode
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	TabWidth  int // 0 means 4
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}
