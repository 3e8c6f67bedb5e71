package diagfmt

import "vhdlsema/internal/source"

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	return f.DisplayPath(mode, fs.BaseDir())
}

// location renders "path:line:col" or just "path" for spans without a position.
func location(fs *source.FileSet, span source.Span, mode PathMode) (string, bool) {
	path := displayPath(fs, span.File, mode)
	f := fs.Get(span.File)
	if f == nil || !span.HasPos() || int(span.Start) > len(f.Content) {
		return path, false
	}
	start, _ := fs.Resolve(span)
	return path + ":" + start.String(), true
}
