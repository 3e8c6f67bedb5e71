package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"vhdlsema/internal/source"
)

// Cursor walks the raw Latin-1 bytes of one design file.
type Cursor struct {
	File *source.File
	Off  uint32
	end  uint32
}

func NewCursor(f *source.File) Cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("design file too large: %w", err))
	}
	return Cursor{File: f, end: end}
}

func (c *Cursor) EOF() bool { return c.Off >= c.end }

// Peek is PeekAt(0).
func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// PeekAt возвращает байт на k позиций впереди, 0 за концом файла.
func (c *Cursor) PeekAt(k uint32) byte {
	if k >= c.end || c.Off >= c.end-k {
		return 0
	}
	return c.File.Content[c.Off+k]
}

// HasPrefix reports whether the unread input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	n := uint32(len(s))
	if c.Off > c.end || c.end-c.Off < n {
		return false
	}
	return string(c.File.Content[c.Off:c.Off+n]) == s
}

// Bump consumes one byte and returns it; 0 at EOF.
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.Off++
	}
	return b
}

// Advance skips n bytes, stopping at EOF.
func (c *Cursor) Advance(n int) {
	for ; n > 0 && !c.EOF(); n-- {
		c.Off++
	}
}

// Eat consumes b if it is next.
func (c *Cursor) Eat(b byte) bool {
	if c.EOF() || c.File.Content[c.Off] != b {
		return false
	}
	c.Off++
	return true
}

// Mark is a saved offset for SpanFrom and Reset.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }

// SpanFrom covers everything consumed since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Here is a zero-width span at the cursor.
func (c *Cursor) Here() source.Span {
	return c.SpanFrom(c.Mark())
}
