// Package classify assigns semantic types and modifiers to a lexed token
// stream in a single left-to-right pass.
//
// Classification looks one token back and one token ahead and tracks two
// flags, "inside parentheses" and "inside braces". The flags are booleans,
// not a stack: a second opening bracket of the same kind changes nothing and
// the first closing one clears the flag. The Pineapple grammar does not nest
// a bracket kind inside itself, so this is enough today; a grammar that does
// needs a bracket stack here.
//
// Rules are evaluated in the fixed order of the rules table and the first
// one that matches wins. The predicates overlap (an uppercase identifier
// before "(" is both a type and a call), so the order is part of the
// behavior. Explain reports which rule fired for each token.
package classify
