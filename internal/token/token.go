package token

import (
	"vhdlsema/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsName reports whether the token can start a simple name.
func (t Token) IsName() bool {
	return t.Kind == Ident || t.Kind == ExtIdent
}
