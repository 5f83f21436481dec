package semtok

import (
	"go.lsp.dev/protocol"

	"pineapple/internal/token"
)

// Legend order is the wire contract: index i in TokenTypes is the
// token.SemanticType with value i, and modifier bit i is TokenModifiers[i].
var legendTypes = map[token.SemanticType]protocol.SemanticTokenTypes{
	token.TypeKeyword:   protocol.SemanticTokenKeyword,
	token.TypeVariable:  protocol.SemanticTokenVariable,
	token.TypeFunction:  protocol.SemanticTokenFunction,
	token.TypeOperator:  protocol.SemanticTokenOperator,
	token.TypeParameter: protocol.SemanticTokenParameter,
	token.TypeType:      protocol.SemanticTokenType,
	token.TypeString:    protocol.SemanticTokenString,
	token.TypeNumber:    protocol.SemanticTokenNumber,
}

var legendModifiers = map[token.Modifier]protocol.SemanticTokenModifiers{
	token.ModDeprecated:     protocol.SemanticTokenModifierDeprecated,
	token.ModReadonly:       protocol.SemanticTokenModifierReadonly,
	token.ModDefaultLibrary: protocol.SemanticTokenModifierDefaultLibrary,
	token.ModDefinition:     protocol.SemanticTokenModifierDefinition,
}

// Legend returns the legend published in the initialize response.
func Legend() protocol.SemanticTokensLegend {
	types := token.SemanticTypes()
	mods := token.Modifiers()
	legend := protocol.SemanticTokensLegend{
		TokenTypes:     make([]protocol.SemanticTokenTypes, 0, len(types)),
		TokenModifiers: make([]protocol.SemanticTokenModifiers, 0, len(mods)),
	}
	for _, t := range types {
		legend.TokenTypes = append(legend.TokenTypes, legendTypes[t])
	}
	for _, m := range mods {
		legend.TokenModifiers = append(legend.TokenModifiers, legendModifiers[m])
	}
	return legend
}
