package token

import "strings"

// SemanticType is the category an editor highlights a token with.
// The numeric value is the index advertised in the semantic-tokens legend,
// so the order below must never change without a protocol version bump.
type SemanticType uint8

const (
	TypeKeyword SemanticType = iota
	TypeVariable
	TypeFunction
	TypeOperator
	TypeParameter
	TypeType
	TypeString
	TypeNumber

	// TypeNone marks a token the classifier has not visited yet.
	TypeNone SemanticType = 0xFF
)

var semanticTypeNames = [...]string{
	TypeKeyword:   "keyword",
	TypeVariable:  "variable",
	TypeFunction:  "function",
	TypeOperator:  "operator",
	TypeParameter: "parameter",
	TypeType:      "type",
	TypeString:    "string",
	TypeNumber:    "number",
}

// SemanticTypes lists every assignable type in legend order.
func SemanticTypes() []SemanticType {
	return []SemanticType{
		TypeKeyword, TypeVariable, TypeFunction, TypeOperator,
		TypeParameter, TypeType, TypeString, TypeNumber,
	}
}

func (t SemanticType) String() string {
	if int(t) < len(semanticTypeNames) {
		return semanticTypeNames[t]
	}
	return "none"
}

// Modifier is a bit flag layered on top of a SemanticType.
type Modifier uint32

const (
	ModDeprecated Modifier = 1 << iota
	ModReadonly
	ModDefaultLibrary
	ModDefinition
)

// Modifiers returns every modifier flag in legend order.
func Modifiers() []Modifier {
	return []Modifier{ModDeprecated, ModReadonly, ModDefaultLibrary, ModDefinition}
}

func (m Modifier) name() string {
	switch m {
	case ModDeprecated:
		return "deprecated"
	case ModReadonly:
		return "readonly"
	case ModDefaultLibrary:
		return "defaultLibrary"
	case ModDefinition:
		return "definition"
	}
	return ""
}

// Has reports whether every bit of flag is set.
func (m Modifier) Has(flag Modifier) bool {
	return m&flag == flag
}

// String renders the set as "a|b" in legend order, or "" when empty.
func (m Modifier) String() string {
	if m == 0 {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, flag := range Modifiers() {
		if m&flag != 0 {
			parts = append(parts, flag.name())
		}
	}
	return strings.Join(parts, "|")
}
