package classify

import (
	"pineapple/internal/token"
)

// Classify annotates toks in place. It never fails.
func Classify(toks []token.Token) {
	run(toks, nil)
}

// Explain classifies toks in place and returns the name of the rule that
// fired for each token.
func Explain(toks []token.Token) []string {
	fired := make([]string, len(toks))
	run(toks, fired)
	return fired
}

func run(toks []token.Token, fired []string) {
	var st state
	for i := range toks {
		v := view{tok: &toks[i], st: &st}
		if i > 0 {
			v.prev = &toks[i-1]
		}
		if i+1 < len(toks) {
			v.next = &toks[i+1]
		}
		for _, r := range rules {
			if !r.when(v) {
				continue
			}
			r.apply(v)
			if fired != nil {
				fired[i] = r.name
			}
			break
		}
	}
}
