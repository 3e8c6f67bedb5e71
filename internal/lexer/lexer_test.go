package lexer

import (
	"testing"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(100)
	lx := New(createFile(src), Options{Reporter: diag.BagReporter{Bag: bag}})
	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
		if len(toks) > 1000 {
			t.Fatal("lexer does not terminate")
		}
	}
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexerKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"entity header", "ENTITY e IS", []token.Kind{token.KwEntity, token.Ident, token.KwIs}},
		{"enum type", "type t is (a, 'b');", []token.Kind{
			token.KwType, token.Ident, token.KwIs, token.LParen, token.Ident, token.Comma,
			token.CharLit, token.RParen, token.Semicolon,
		}},
		{"comment skipped", "end -- trailing words\n;", []token.Kind{token.KwEnd, token.Semicolon}},
		{"use clause", "use work.all;", []token.Kind{token.KwUse, token.Ident, token.Dot, token.KwAll, token.Semicolon}},
		{"compound delimiters", "=> := <= /= <>", []token.Kind{
			token.Delimiter, token.Delimiter, token.Delimiter, token.Delimiter, token.Delimiter,
		}},
		{"attribute tick", "t'high", []token.Kind{token.Ident, token.Delimiter, token.Ident}},
		{"number", "16#FF# 1_000 2.5", []token.Kind{token.Number, token.Number, token.Number}},
		{"reserved word", "process", []token.Kind{token.Reserved}},
		{"latin1 separator", "a\xA0b", []token.Kind{token.Ident, token.Ident}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, bag := lexAll(t, tt.src)
			if bag.HasErrors() {
				t.Fatalf("unexpected diagnostics: %+v", bag.Items())
			}
			got := kinds(toks)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexerIdentText(t *testing.T) {
	toks, bag := lexAll(t, "'\\' Foo_Bar \\a\\\\b\\")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(toks))
	}
	if toks[0].Kind != token.CharLit || toks[0].Text != "\\" {
		t.Errorf("char literal %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Text != "Foo_Bar" {
		t.Errorf("basic ident text %q", toks[1].Text)
	}
	if toks[2].Kind != token.ExtIdent || toks[2].Text != "a\\b" {
		t.Errorf("extended ident %v %q", toks[2].Kind, toks[2].Text)
	}
	if toks[2].Span.Start != 12 || toks[2].Span.End != 18 {
		t.Errorf("extended ident span %v", toks[2].Span)
	}
}

func TestLexerKeywordsCaseInsensitive(t *testing.T) {
	toks, _ := lexAll(t, "EnTiTy ARCHITECTURE Package")
	want := []token.Kind{token.KwEntity, token.KwArchitecture, token.KwPackage}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexerStringLiteral(t *testing.T) {
	toks, bag := lexAll(t, `"say ""hi"""`)
	if bag.HasErrors() || len(toks) != 1 {
		t.Fatalf("unexpected result %v %+v", toks, bag.Items())
	}
	if toks[0].Text != `say "hi"` {
		t.Errorf("string text %q", toks[0].Text)
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"trailing underscore", "abc_", diag.LexBadBasicID},
		{"double underscore", "a__b", diag.LexBadBasicID},
		{"empty extended", `\\ x`, diag.LexEmptyExtID},
		{"unterminated extended", "\\abc\nx", diag.LexUnterminatedExtID},
		{"control char in extended", "\\a\x01b\\", diag.LexControlCharInExtID},
		{"unterminated string", "\"abc\n", diag.LexUnterminatedString},
		{"unknown char", "a ~ b", diag.LexUnknownChar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := lexAll(t, tt.src)
			items := bag.Items()
			if len(items) == 0 {
				t.Fatalf("expected %s", tt.code.ID())
			}
			if items[0].Code != tt.code {
				t.Errorf("got %s, want %s", items[0].Code.ID(), tt.code.ID())
			}
		})
	}
}

func TestLexerBadBasicStillIdent(t *testing.T) {
	toks, bag := lexAll(t, "abc_")
	if len(toks) != 1 || toks[0].Kind != token.Ident {
		t.Fatalf("expected one ident token, got %v", kinds(toks))
	}
	if bag.Len() != 1 {
		t.Errorf("expected one diagnostic, got %d", bag.Len())
	}
}

func TestLexerPeek(t *testing.T) {
	lx := New(createFile("entity e"), Options{})
	if lx.Peek().Kind != token.KwEntity {
		t.Fatal("peek should see entity")
	}
	if lx.Next().Kind != token.KwEntity {
		t.Fatal("next should return peeked token")
	}
	if lx.Next().Kind != token.Ident {
		t.Fatal("expected ident")
	}
	if lx.Next().Kind != token.EOF || lx.Next().Kind != token.EOF {
		t.Fatal("EOF must repeat")
	}
}
