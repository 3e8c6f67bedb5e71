package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedExtID   Code = 1002
	LexUnterminatedCharLit Code = 1003
	LexBadBasicID          Code = 1004
	LexEmptyExtID          Code = 1005
	LexUnterminatedString  Code = 1006
	LexControlCharInExtID  Code = 1007

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectSemicolon    Code = 2003
	SynExpectIs           Code = 2004
	SynExpectEnd          Code = 2005
	SynExpectDesignUnit   Code = 2006
	SynExpectEnumLiteral  Code = 2007
	SynExpectRightParen   Code = 2008
	SynExpectTypeDef      Code = 2009
	SynUnclosedParen      Code = 2010
	SynEmptyDesignFile    Code = 2011
	SynEndKeywordMismatch Code = 2012

	// Семантические
	SemaInfo                 Code = 3000
	SemaError                Code = 3001
	SemaDuplicateDesignUnit  Code = 3002
	SemaDuplicateDeclaration Code = 3003
	SemaDuplicateOverload    Code = 3004
	SemaEndNameMismatch      Code = 3005
	SemaUnknownType          Code = 3006
	SemaNotAType             Code = 3007
	SemaBadIdentifier        Code = 3008

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:              "Unknown error",
		LexInfo:                  "Lexical information",
		LexUnknownChar:           "Unknown character",
		LexUnterminatedExtID:     "Unterminated extended identifier",
		LexUnterminatedCharLit:   "Unterminated character literal",
		LexBadBasicID:            "Malformed basic identifier",
		LexEmptyExtID:            "Empty extended identifier",
		LexUnterminatedString:    "Unterminated string literal",
		LexControlCharInExtID:    "Control character in extended identifier",
		SynInfo:                  "Syntax information",
		SynUnexpectedToken:       "Unexpected token",
		SynExpectIdentifier:      "Expected identifier",
		SynExpectSemicolon:       "Expected semicolon",
		SynExpectIs:              "Expected 'is'",
		SynExpectEnd:             "Expected 'end'",
		SynExpectDesignUnit:      "Expected design unit",
		SynExpectEnumLiteral:     "Expected enumeration literal",
		SynExpectRightParen:      "Expected ')'",
		SynExpectTypeDef:         "Expected type definition",
		SynUnclosedParen:         "Unclosed parenthesis",
		SynEmptyDesignFile:       "Design file contains no design units",
		SynEndKeywordMismatch:    "Closing keyword does not match construct",
		SemaInfo:                 "Semantic information",
		SemaError:                "Semantic error",
		SemaDuplicateDesignUnit:  "Design unit already exists in library",
		SemaDuplicateDeclaration: "Duplicate declaration",
		SemaDuplicateOverload:    "Duplicate overloaded declaration",
		SemaEndNameMismatch:      "Closing name does not match declaration",
		SemaUnknownType:          "Unknown type name",
		SemaNotAType:             "Name does not denote a type",
		SemaBadIdentifier:        "Invalid identifier",
		IOInfo:                   "I/O information",
		IOLoadFileError:          "I/O load file error",
		IOCacheError:             "Parse cache error",
		ObsInfo:                  "Observability information",
		ObsTimings:               "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
