package parsetree

// Tag discriminates parse tree nodes.
type Tag uint8

const (
	TagInvalid Tag = iota
	TagDesignFile
	TagDesignUnit
	TagContextClause
	TagLibraryClause
	TagUseClause
	TagEntity
	TagArchitecture
	TagPackage
	TagDeclarationList
	TagFullTypeDeclaration
	TagSubtypeDeclaration
	TagEnumerationTypeDefinition
	TagEnumLiteralList
	TagBasicID
	TagExtID
	TagLitChar
	TagName
	TagIDList
)

var tagNames = [...]string{
	TagInvalid:                   "PT_INVALID",
	TagDesignFile:                "PT_DESIGN_FILE",
	TagDesignUnit:                "PT_DESIGN_UNIT",
	TagContextClause:             "PT_CONTEXT_CLAUSE",
	TagLibraryClause:             "PT_LIBRARY_CLAUSE",
	TagUseClause:                 "PT_USE_CLAUSE",
	TagEntity:                    "PT_ENTITY",
	TagArchitecture:              "PT_ARCHITECTURE",
	TagPackage:                   "PT_PACKAGE",
	TagDeclarationList:           "PT_DECLARATION_LIST",
	TagFullTypeDeclaration:       "PT_FULL_TYPE_DECLARATION",
	TagSubtypeDeclaration:        "PT_SUBTYPE_DECLARATION",
	TagEnumerationTypeDefinition: "PT_ENUMERATION_TYPE_DEFINITION",
	TagEnumLiteralList:           "PT_ENUM_LITERAL_LIST",
	TagBasicID:                   "PT_BASIC_ID",
	TagExtID:                     "PT_EXT_ID",
	TagLitChar:                   "PT_LIT_CHAR",
	TagName:                      "PT_NAME",
	TagIDList:                    "PT_ID_LIST",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "PT_UNKNOWN"
}
