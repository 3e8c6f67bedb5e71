package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{File: 1, Start: 2, End: 4}, Span{File: 1, Start: 8, End: 10}, Span{File: 1, Start: 2, End: 10}},
		{"nested", Span{File: 1, Start: 2, End: 10}, Span{File: 1, Start: 4, End: 5}, Span{File: 1, Start: 2, End: 10}},
		{"reversed", Span{File: 1, Start: 8, End: 10}, Span{File: 1, Start: 0, End: 1}, Span{File: 1, Start: 0, End: 10}},
		{"other file", Span{File: 1, Start: 2, End: 4}, Span{File: 2, Start: 0, End: 10}, Span{File: 1, Start: 2, End: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanLast(t *testing.T) {
	if got := (Span{Start: 3, End: 7}).Last(); got != 6 {
		t.Errorf("Last() = %d, want 6", got)
	}
	empty := Span{Start: 5, End: 5}
	if !empty.Empty() || empty.Last() != 5 || empty.Len() != 0 {
		t.Errorf("unexpected empty span behaviour: %v", empty)
	}
}

func TestFileSpanHasNoPos(t *testing.T) {
	sp := FileSpan(3)
	if sp.HasPos() {
		t.Fatal("FileSpan must not carry a position")
	}
	if sp.File != 3 {
		t.Fatalf("FileSpan lost its file: %v", sp)
	}
	if !(Span{File: 3, Start: 0, End: 0}).HasPos() {
		t.Fatal("zero offset span must carry a position")
	}
}
