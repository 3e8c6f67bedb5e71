package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word string
		kind Kind
		kw   bool
	}{
		{"entity", KwEntity, true},
		{"ENTITY", KwEntity, true},
		{"EnD", KwEnd, true},
		{"subtype", KwSubtype, true},
		{"signal", Reserved, true},
		{"Process", Reserved, true},
		{"entity_1", Ident, false},
		{"foo", Ident, false},
	}
	for _, tt := range tests {
		kind, kw := LookupKeyword(tt.word)
		if kind != tt.kind || kw != tt.kw {
			t.Errorf("LookupKeyword(%q) = %s,%v want %s,%v", tt.word, kind, kw, tt.kind, tt.kw)
		}
	}
}

func TestKindString(t *testing.T) {
	if KwArchitecture.String() != "KwArchitecture" {
		t.Errorf("unexpected name %q", KwArchitecture.String())
	}
	if Kind(250).String() != "Kind(250)" {
		t.Errorf("unexpected fallback %q", Kind(250).String())
	}
	if !Reserved.IsKeyword() || Ident.IsKeyword() || Semicolon.IsKeyword() {
		t.Error("IsKeyword misclassifies kinds")
	}
}
