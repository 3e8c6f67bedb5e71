package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePath(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "base")
	for _, dir := range []string{filepath.Join(base, "rtl"), filepath.Join(tmp, "other")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"inside", filepath.Join(base, "rtl", "top.vhd"), "rtl/top.vhd"},
		{"outside falls back to absolute", filepath.Join(tmp, "other", "pkg.vhd"), normalizePath(filepath.Join(tmp, "other", "pkg.vhd"))},
		{"dotted name stays relative", filepath.Join(base, "..x.vhd"), "..x.vhd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativePath(tt.target, base)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("RelativePath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileFlagsString(t *testing.T) {
	cases := map[FileFlags]string{
		0:                               "",
		FileVirtual:                     "virtual",
		FileHadBOM | FileNormalizedCRLF: "bom|crlf",
	}
	for f, want := range cases {
		if got := f.String(); got != want {
			t.Errorf("FileFlags(%d).String() = %q, want %q", f, got, want)
		}
	}
	if (FileHadBOM).Has(FileHadBOM | FileVirtual) {
		t.Error("Has must require every bit")
	}
}

func TestToLineCol(t *testing.T) {
	idx := buildLineIndex([]byte("ab\n\ncd"))
	for off, want := range map[uint32]string{0: "1:1", 2: "1:3", 3: "2:1", 4: "3:1", 5: "3:2"} {
		if got := toLineCol(idx, off).String(); got != want {
			t.Errorf("offset %d: got %s, want %s", off, got, want)
		}
	}
}
