// Package regex implements the regular-expression mini-language used by the
// lexer generator: parsing surface syntax into an AST and compiling the AST
// into an NFA via Thompson's construction.
package regex

import "github.com/StefanOctavian/lambdaz/automata"

// Regex is the closed sum type of regular expressions; the unexported marker
// method keeps variants from being declared outside this package. Compilation
// dispatches through each variant's Thompson method rather than a type switch.
type Regex interface {
	// Thompson compiles the expression into an NFA whose state ids form the
	// contiguous range [q0, q0+n-1], with q0 initial and q0+n-1 the sole
	// accept state.
	Thompson(q0 int) *automata.NFA

	regexNode()
}

// Epsilon matches the empty string.
type Epsilon struct{}

// Char matches a single literal character.
type Char struct {
	C rune
}

// CharSet matches any single character from a finite set.
type CharSet struct {
	Set map[rune]bool
}

// Concat matches Left followed by Right.
type Concat struct {
	Left, Right Regex
}

// Union matches either Left or Right.
type Union struct {
	Left, Right Regex
}

// Star matches zero or more repetitions of Inner.
type Star struct {
	Inner Regex
}

// Plus matches one or more repetitions of Inner. Equivalent to
// Concat(Inner, Star(Inner)) and desugared as such during compilation.
type Plus struct {
	Inner Regex
}

// Question matches Inner or the empty string. Equivalent to
// Union(Inner, Epsilon) and desugared as such during compilation.
type Question struct {
	Inner Regex
}

func (Epsilon) regexNode()  {}
func (Char) regexNode()     {}
func (CharSet) regexNode()  {}
func (Concat) regexNode()   {}
func (Union) regexNode()    {}
func (Star) regexNode()     {}
func (Plus) regexNode()     {}
func (Question) regexNode() {}

func rangeSet(lo, hi rune) map[rune]bool {
	set := make(map[rune]bool, hi-lo+1)
	for c := lo; c <= hi; c++ {
		set[c] = true
	}
	return set
}

// Lower is the predefined [a-z] character set.
func Lower() CharSet { return CharSet{Set: rangeSet('a', 'z')} }

// Upper is the predefined [A-Z] character set.
func Upper() CharSet { return CharSet{Set: rangeSet('A', 'Z')} }

// Digit is the predefined [0-9] character set.
func Digit() CharSet { return CharSet{Set: rangeSet('0', '9')} }
