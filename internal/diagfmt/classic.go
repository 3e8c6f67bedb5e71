package diagfmt

import (
	"bufio"
	"io"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/source"
)

// Classic writes diagnostics one per line in the traditional analyzer
// format:
//
//	rtl/top.vhd:3:1: ERROR: Design unit top already exists in library!
//		Previous version was at rtl/a.vhd:1:1
//
// Diagnostics without a position print just the path. Notes follow their
// diagnostic on tab-indented lines.
func Classic(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts ClassicOpts) error {
	bw := bufio.NewWriter(w)
	for i := range diags {
		d := &diags[i]
		loc, _ := location(fs, d.Primary, opts.PathMode)
		bw.WriteString(loc)
		bw.WriteString(": ")
		bw.WriteString(d.Severity.String())
		bw.WriteString(": ")
		bw.WriteString(d.Message)
		bw.WriteByte('\n')
		for _, n := range d.Notes {
			bw.WriteByte('\t')
			bw.WriteString(n.Msg)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
