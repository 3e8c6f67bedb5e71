package ident

import (
	"errors"
	"testing"
)

func TestFromLatin1Basic(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		extended  bool
		canonical string
		pretty    string
		wantErr   error
	}{
		{name: "lower", in: "foo", canonical: "foo", pretty: "foo"},
		{name: "mixed case folds", in: "FoO", canonical: "foo", pretty: "FoO"},
		{name: "digits and underline", in: "foo_012", canonical: "foo_012", pretty: "foo_012"},
		{name: "trailing underline", in: "foo_", wantErr: ErrInvalidBasic},
		{name: "leading underline", in: "_foo", wantErr: ErrInvalidBasic},
		{name: "leading digit", in: "1foo", wantErr: ErrInvalidBasic},
		{name: "double underline", in: "foo__bar", wantErr: ErrInvalidBasic},
		{name: "empty", in: "", wantErr: ErrInvalidBasic},
		{name: "space", in: "foo bar", wantErr: ErrInvalidBasic},
		{name: "extended keeps case", in: "FoO", extended: true, canonical: "FoO", pretty: "FoO"},
		{name: "extended allows punctuation", in: "a b!_", extended: true, canonical: "a b!_", pretty: "a b!_"},
		{name: "extended rejects control", in: "a\x01", extended: true, wantErr: ErrInvalidExtended},
		{name: "extended rejects DEL", in: "a\x7f", extended: true, wantErr: ErrInvalidExtended},
		{name: "extended rejects C1", in: "a\x85", extended: true, wantErr: ErrInvalidExtended},
		{name: "extended rejects empty", in: "", extended: true, wantErr: ErrInvalidExtended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := FromLatin1(tt.in, tt.extended)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromLatin1(%q, %v) error = %v, want %v", tt.in, tt.extended, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromLatin1(%q, %v) unexpected error: %v", tt.in, tt.extended, err)
			}
			if id.Orig() != tt.in {
				t.Errorf("orig = %q, want %q", id.Orig(), tt.in)
			}
			if id.Canonical() != tt.canonical {
				t.Errorf("canonical = %q, want %q", id.Canonical(), tt.canonical)
			}
			if id.Pretty() != tt.pretty {
				t.Errorf("pretty = %q, want %q", id.Pretty(), tt.pretty)
			}
			if id.Extended() != tt.extended {
				t.Errorf("extended = %v, want %v", id.Extended(), tt.extended)
			}
		})
	}
}

func TestFromLatin1HighBytes(t *testing.T) {
	id, err := FromLatin1("f\xD6o", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Canonical() != "f\xF6o" {
		t.Errorf("canonical = %q, want %q", id.Canonical(), "f\xF6o")
	}
	if id.Pretty() != "fÖo" {
		t.Errorf("pretty = %q, want %q", id.Pretty(), "fÖo")
	}

	if _, err := FromLatin1("foo\xD7", false); !errors.Is(err, ErrInvalidBasic) {
		t.Errorf("multiplication sign in basic id: err = %v", err)
	}
	if _, err := FromLatin1("foo\xF7", false); !errors.Is(err, ErrInvalidBasic) {
		t.Errorf("division sign in basic id: err = %v", err)
	}

	ext, err := FromLatin1("f\xD6o\xD7\xBC", true)
	if err != nil {
		t.Fatalf("extended with high bytes: %v", err)
	}
	if ext.Canonical() != "f\xD6o\xD7\xBC" {
		t.Errorf("extended canonical changed: %q", ext.Canonical())
	}
	if ext.Pretty() != "fÖo×¼" {
		t.Errorf("extended pretty = %q", ext.Pretty())
	}
}

func TestFromUTF8(t *testing.T) {
	id, err := FromUTF8("f\xC3\x96o", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := MustLatin1("f\xD6o", false)
	if id != want {
		t.Errorf("FromUTF8 = %#v, want %#v", id, want)
	}

	for _, ext := range []bool{false, true} {
		if _, err := FromUTF8("a\U0001F600", ext); !errors.Is(err, ErrNotLatin1) {
			t.Errorf("emoji (extended=%v): err = %v, want ErrNotLatin1", ext, err)
		}
		if _, err := FromUTF8("aĀ", ext); !errors.Is(err, ErrNotLatin1) {
			t.Errorf("U+0100 (extended=%v): err = %v, want ErrNotLatin1", ext, err)
		}
		if _, err := FromUTF8("a\xC3", ext); !errors.Is(err, ErrInvalidUTF8) {
			t.Errorf("truncated UTF-8 (extended=%v): err = %v, want ErrInvalidUTF8", ext, err)
		}
	}
}

func TestIdentifierEquality(t *testing.T) {
	a := MustLatin1("foo", false)
	b := MustLatin1("fOo", false)
	if !a.Equal(b) {
		t.Fatalf("expected %q == %q", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Errorf("hash mismatch for equal identifiers")
	}
	if a.Key() != b.Key() {
		t.Errorf("key mismatch for equal identifiers")
	}

	ext := MustLatin1("foo", true)
	if a.Equal(ext) {
		t.Errorf("basic and extended identifiers must differ")
	}
	if a.Hash() == ext.Hash() {
		t.Errorf("extended flag must perturb the hash")
	}

	if MustLatin1("Foo", true).Equal(MustLatin1("foo", true)) {
		t.Errorf("extended identifiers differing in case must differ")
	}
}

func TestPrettyTable(t *testing.T) {
	tests := []struct {
		in   byte
		want string
	}{
		{0x00, "␀"},
		{0x1F, "␟"},
		{'A', "A"},
		{0x7F, "␡"},
		{0x80, `\x80`},
		{0x9F, `\x9f`},
		{0xA0, `\xa0`},
		{0xA1, "¡"},
		{0xAD, `\xad`},
		{0xD6, "Ö"},
		{0xFF, "ÿ"},
	}
	for _, tt := range tests {
		if got := PrettyByte(tt.in); got != tt.want {
			t.Errorf("PrettyByte(%#x) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
