package token

import "vhdlsema/internal/ident"

var keywords = map[string]Kind{
	"library":      KwLibrary,
	"use":          KwUse,
	"all":          KwAll,
	"entity":       KwEntity,
	"architecture": KwArchitecture,
	"package":      KwPackage,
	"body":         KwBody,
	"of":           KwOf,
	"is":           KwIs,
	"begin":        KwBegin,
	"end":          KwEnd,
	"type":         KwType,
	"subtype":      KwSubtype,
}

// VHDL-2008 reserved words without a dedicated kind.
var reserved = map[string]struct{}{
	"abs": {}, "access": {}, "after": {}, "alias": {}, "and": {},
	"array": {}, "assert": {}, "assume": {}, "assume_guarantee": {},
	"attribute": {}, "block": {}, "buffer": {}, "bus": {}, "case": {},
	"component": {}, "configuration": {}, "constant": {}, "context": {},
	"cover": {}, "default": {}, "disconnect": {}, "downto": {}, "else": {},
	"elsif": {}, "exit": {}, "fairness": {}, "file": {}, "for": {},
	"force": {}, "function": {}, "generate": {}, "generic": {}, "group": {},
	"guarded": {}, "if": {}, "impure": {}, "in": {}, "inertial": {},
	"inout": {}, "label": {}, "linkage": {}, "literal": {}, "loop": {},
	"map": {}, "mod": {}, "nand": {}, "new": {}, "next": {}, "nor": {},
	"not": {}, "null": {}, "on": {}, "open": {}, "or": {}, "others": {},
	"out": {}, "parameter": {}, "port": {}, "postponed": {}, "procedure": {},
	"process": {}, "property": {}, "protected": {}, "pure": {}, "range": {},
	"record": {}, "register": {}, "reject": {}, "release": {}, "rem": {},
	"report": {}, "restrict": {}, "restrict_guarantee": {}, "return": {},
	"rol": {}, "ror": {}, "select": {}, "sequence": {}, "severity": {},
	"shared": {}, "signal": {}, "sla": {}, "sll": {}, "sra": {}, "srl": {},
	"strong": {}, "then": {}, "to": {}, "transport": {}, "unaffected": {},
	"units": {}, "until": {}, "variable": {}, "vmode": {}, "vprop": {},
	"vunit": {}, "wait": {}, "when": {}, "while": {}, "with": {}, "xnor": {},
	"xor": {},
}

// LookupKeyword classifies a basic identifier spelling. ok is false for
// ordinary identifiers.
func LookupKeyword(word string) (Kind, bool) {
	lower := ident.LowerLatin1(word)
	if k, ok := keywords[lower]; ok {
		return k, true
	}
	if _, ok := reserved[lower]; ok {
		return Reserved, true
	}
	return Ident, false
}
