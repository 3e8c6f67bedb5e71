package diag

import (
	"slices"

	"fortio.org/safecast"
)

// Bag keeps diagnostics in report order up to a fixed limit; a zero limit
// keeps nothing. Reports beyond it are only counted.
type Bag struct {
	items   []Diagnostic
	max     uint16
	dropped int
}

func clampLimit(n int) uint16 {
	limit, err := safecast.Conv[uint16](n)
	if err != nil {
		if n < 0 {
			return 0
		}
		return ^uint16(0)
	}
	return limit
}

// NewBag holds at most max diagnostics, clamped to the uint16 range.
func NewBag(max int) *Bag {
	limit := clampLimit(max)
	return &Bag{items: make([]Diagnostic, 0, min(int(limit), 64)), max: limit}
}

// Add returns false when the limit dropped d.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 { return b.max }

// Dropped counts reports discarded by the limit.
func (b *Bag) Dropped() int { return b.dropped }

func (b *Bag) Len() int { return len(b.items) }

// Items shares the bag's storage; callers must not modify it.
func (b *Bag) Items() []Diagnostic { return slices.Clip(b.items) }

func isError(d Diagnostic) bool { return d.Severity >= SevError }

// Errors returns the error diagnostics in report order.
func (b *Bag) Errors() []Diagnostic { return b.filter(isError, true) }

// Warnings returns everything below SevError in report order.
func (b *Bag) Warnings() []Diagnostic { return b.filter(isError, false) }

func (b *Bag) filter(pred func(Diagnostic) bool, want bool) []Diagnostic {
	var out []Diagnostic
	for _, d := range b.items {
		if pred(d) == want {
			out = append(out, d)
		}
	}
	return out
}

func (b *Bag) HasErrors() bool { return slices.ContainsFunc(b.items, isError) }

func (b *Bag) HasWarnings() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevWarning })
}

// Merge appends other's diagnostics, raising the limit so they fit.
func (b *Bag) Merge(other *Bag) {
	if need := len(b.items) + len(other.items); need > int(b.max) {
		b.max = clampLimit(need)
	}
	room := int(b.max) - len(b.items)
	take := min(room, len(other.items))
	b.items = append(b.items, other.items[:take]...)
	b.dropped += len(other.items) - take + other.dropped
}
