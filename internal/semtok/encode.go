package semtok

import (
	"fortio.org/safecast"

	"pineapple/internal/token"
)

// Encode flattens classified tokens into groups of
// [lineDelta, colDelta, length, typeIndex, modifierMask].
// Tokens the classifier never typed are encoded as variables.
func Encode(toks []token.Token) []uint32 {
	data := make([]uint32, 0, len(toks)*5)
	for _, t := range toks {
		typ := t.Type
		if typ == token.TypeNone {
			typ = token.TypeVariable
		}
		data = append(data,
			t.LineDelta,
			t.ColDelta,
			t.Length(),
			uint32(typ),
			uint32(t.Modifiers),
		)
	}
	return data
}

// Decoded is one 5-integer group of an encoded payload.
type Decoded struct {
	LineDelta uint32
	ColDelta  uint32
	Length    uint32
	Type      token.SemanticType
	Modifiers token.Modifier
}

// Decode splits an encoded payload back into groups. A trailing partial
// group is ignored.
func Decode(data []uint32) []Decoded {
	out := make([]Decoded, 0, len(data)/5)
	for i := 0; i+5 <= len(data); i += 5 {
		typ, err := safecast.Conv[uint8](data[i+3])
		if err != nil {
			typ = uint8(token.TypeNone)
		}
		out = append(out, Decoded{
			LineDelta: data[i],
			ColDelta:  data[i+1],
			Length:    data[i+2],
			Type:      token.SemanticType(typ),
			Modifiers: token.Modifier(data[i+4]),
		})
	}
	return out
}
