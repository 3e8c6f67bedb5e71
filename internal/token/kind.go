package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is a basic identifier.
	Ident
	// ExtIdent is an extended identifier (\like this\).
	ExtIdent
	// CharLit is a character literal ('x').
	CharLit
	// StringLit is a string literal ("...").
	StringLit
	// Number is an abstract literal; the subset grammar never accepts one.
	Number

	Semicolon // ;
	Colon     // :
	Comma     // ,
	Dot       // .
	LParen    // (
	RParen    // )
	// Delimiter is any other VHDL delimiter (+, <=, =>, ...).
	Delimiter

	KwLibrary
	KwUse
	KwAll
	KwEntity
	KwArchitecture
	KwPackage
	KwBody
	KwOf
	KwIs
	KwBegin
	KwEnd
	KwType
	KwSubtype
	// Reserved is a reserved word without its own kind.
	Reserved
)

var kindNames = [...]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	Ident:          "Ident",
	ExtIdent:       "ExtIdent",
	CharLit:        "CharLit",
	StringLit:      "StringLit",
	Number:         "Number",
	Semicolon:      "Semicolon",
	Colon:          "Colon",
	Comma:          "Comma",
	Dot:            "Dot",
	LParen:         "LParen",
	RParen:         "RParen",
	Delimiter:      "Delimiter",
	KwLibrary:      "KwLibrary",
	KwUse:          "KwUse",
	KwAll:          "KwAll",
	KwEntity:       "KwEntity",
	KwArchitecture: "KwArchitecture",
	KwPackage:      "KwPackage",
	KwBody:         "KwBody",
	KwOf:           "KwOf",
	KwIs:           "KwIs",
	KwBegin:        "KwBegin",
	KwEnd:          "KwEnd",
	KwType:         "KwType",
	KwSubtype:      "KwSubtype",
	Reserved:       "Reserved",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwLibrary && k <= Reserved
}
