package lexer

import (
	"testing"

	"vhdlsema/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.vhd", []byte(content)))
}

func TestCursorBumpToEOF(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte("a\nb") {
		if cursor.EOF() || cursor.Peek() != want {
			t.Fatalf("at %d: EOF=%v peek=%q, want %q", cursor.Off, cursor.EOF(), cursor.Peek(), want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump() = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() || cursor.Peek() != 0 || cursor.Bump() != 0 || cursor.Off != 3 {
		t.Errorf("cursor must stay at EOF, off=%d", cursor.Off)
	}
}

// TestPeekAhead проверяет PeekAt, HasPrefix и Advance у конца файла
func TestPeekAhead(t *testing.T) {
	cursor := NewCursor(createFile("a--b"))

	for k, want := range []byte{'a', '-', '-', 'b', 0, 0} {
		if got := cursor.PeekAt(uint32(k)); got != want {
			t.Errorf("PeekAt(%d) = %q, want %q", k, got, want)
		}
	}
	if cursor.HasPrefix("--") || !cursor.HasPrefix("a-") {
		t.Error("HasPrefix must look at the unread input only")
	}
	cursor.Bump()
	if !cursor.HasPrefix("--") || cursor.HasPrefix("--b!") {
		t.Error("HasPrefix must not read past EOF")
	}
	cursor.Advance(10)
	if !cursor.EOF() || cursor.Off != 4 {
		t.Errorf("Advance must stop at EOF, off=%d", cursor.Off)
	}
	if cursor.PeekAt(0) != 0 || cursor.HasPrefix("x") || !cursor.HasPrefix("") {
		t.Error("unexpected lookahead at EOF")
	}
	if sp := cursor.Here(); sp.Start != 4 || sp.End != 4 {
		t.Errorf("Here() = %+v", sp)
	}
}

func TestCursorEatAndReset(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	start := cursor.Mark()
	if cursor.Eat('b') {
		t.Fatal("Eat must not consume a different byte")
	}
	if !cursor.Eat('a') || !cursor.Eat('b') || cursor.Eat('b') {
		t.Fatal("unexpected Eat sequence")
	}
	if sp := cursor.SpanFrom(start); sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom = %+v", sp)
	}
	cursor.Reset(start)
	if cursor.Peek() != 'a' || cursor.Off != 0 {
		t.Errorf("Reset did not rewind, off=%d", cursor.Off)
	}
}

// TestSpanFromResolve: колонки в байтах, '\n' принадлежит своей строке
func TestSpanFromResolve(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vhd", []byte("\xC4\xD6\nb"))
	cursor := NewCursor(fs.Get(id))

	mark := cursor.Mark()
	cursor.Advance(2)
	start, end := fs.Resolve(cursor.SpanFrom(mark))
	if start.String() != "1:1" || end.String() != "1:3" {
		t.Errorf("Resolve = %s..%s, want 1:1..1:3", start, end)
	}

	mark = cursor.Mark()
	cursor.Advance(2)
	first, last := fs.ResolveInclusive(cursor.SpanFrom(mark))
	if first.String() != "1:3" || last.String() != "2:1" {
		t.Errorf("ResolveInclusive = %s..%s, want 1:3..2:1", first, last)
	}
}
