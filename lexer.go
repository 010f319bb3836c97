// Package lambdaz implements a regex-driven lexical analyzer generator: token
// specs are compiled through Thompson's construction and subset construction
// into a single DFA that tokenizes input by longest-prefix match, breaking
// same-length ties by spec order.
package lambdaz

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/StefanOctavian/lambdaz/automata"
	"github.com/StefanOctavian/lambdaz/regex"
	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// TokenSpec binds a token name to the regex matching its lexemes. Order in a
// spec is significant: when two tokens match prefixes of the same length, the
// earlier entry wins.
type TokenSpec struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// Token is one lexeme of the input paired with the name of the spec entry
// that matched it.
type Token struct {
	Name  string
	Value string
}

// Lexer is a compiled token spec. It is immutable after construction and safe
// for concurrent use; tokenization only touches per-call state.
type Lexer struct {
	names       []string
	acceptToken map[int]int // NFA accept state -> spec index
	dfa         *automata.DFA
	acceptMap   map[string]int // accepting DFA state -> smallest member spec index
}

// NewLexer compiles an ordered token spec into a Lexer. Each pattern is
// parsed and compiled to an NFA at the next free state range, all NFAs are
// unioned under a fresh start state 0, and the result is determinized once.
// A malformed pattern rejects the whole spec.
func NewLexer(spec []TokenSpec) (*Lexer, error) {
	l := &Lexer{
		names:       make([]string, 0, len(spec)),
		acceptToken: make(map[int]int, len(spec)),
	}
	for _, ts := range spec {
		l.names = append(l.names, ts.Name)
	}
	if dedupe := sliceutil.Dedupe(l.names); len(dedupe) != len(l.names) {
		gologger.Warning().Msgf("%v duplicate token names found in spec, earlier entries shadow later ones", len(l.names)-len(dedupe))
	}

	nfa := automata.NewNFA(0)
	last := 0
	for i, ts := range spec {
		ast, err := regex.Parse(ts.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling token %s: %w", ts.Name, err)
		}
		sub := ast.Thompson(last + 1)
		final := last + sub.Size()
		nfa.Include(sub)
		nfa.AddTransition(0, automata.Epsilon, sub.Start)
		nfa.Accept[final] = true
		l.acceptToken[final] = i
		last = final
	}

	l.dfa = nfa.Determinize()

	l.acceptMap = make(map[string]int, len(l.dfa.Accept))
	for key := range l.dfa.Accept {
		winner := len(spec)
		for q := range l.dfa.States[key] {
			if i, ok := l.acceptToken[q]; ok && i < winner {
				winner = i
			}
		}
		l.acceptMap[key] = winner
	}

	// a token matching the empty string would stall the tokenizer, reject it
	// up front rather than looping at lex time
	if l.dfa.Accept[l.dfa.Start] {
		return nil, errorutil.NewWithTag("lexer", "token %s matches the empty string", l.names[l.acceptMap[l.dfa.Start]])
	}

	return l, nil
}

// TokenNames returns the token names in spec order.
func (l *Lexer) TokenNames() []string {
	names := make([]string, len(l.names))
	copy(names, l.names)
	return names
}

// longestPrefixMatch runs the DFA over suffix, remembering the last accepting
// state seen. It returns that state's key and the byte length of the matched
// prefix. When no prefix is accepted, ok is false and n is the byte offset of
// the offending character, or len(suffix) if the scan ran off the end.
func (l *Lexer) longestPrefixMatch(suffix string) (best string, n int, ok bool) {
	state := l.dfa.Start
	n = -1
	if l.dfa.Accept[state] {
		best, n, ok = state, 0, true
	}
	for i, c := range suffix {
		next := l.dfa.Step(state, c)
		if next == automata.SinkKey {
			if ok {
				return best, n, true
			}
			return "", i, false
		}
		state = next
		if l.dfa.Accept[state] {
			best, n, ok = state, i+utf8.RuneLen(c), true
		}
	}
	if ok {
		return best, n, true
	}
	return "", len(suffix), false
}

// Lex splits word into tokens. The output is either the full token slice or a
// *LexError for the first position no token can match; the lexer never
// recovers past an error.
func (l *Lexer) Lex(word string) ([]Token, error) {
	var tokens []Token
	index := 0
	suffix := word
	for suffix != "" {
		state, n, ok := l.longestPrefixMatch(suffix)
		index += n
		if !ok {
			return nil, positionError(word, index, n == len(suffix))
		}
		tokens = append(tokens, Token{Name: l.names[l.acceptMap[state]], Value: suffix[:n]})
		suffix = suffix[n:]
	}
	return tokens, nil
}

// positionError converts an absolute input offset into a line/column LexError
// by folding over the line lengths of word.
func positionError(word string, index int, eof bool) *LexError {
	col := index
	line := 0
	for i, ln := range strings.Split(word, "\n") {
		line = i
		// col == len(ln) is the newline ending this line (or the end of input)
		if col <= len(ln) {
			break
		}
		col -= len(ln) + 1 // the line and the newline ending it
	}
	return &LexError{Line: line, Column: col, EOF: eof}
}
