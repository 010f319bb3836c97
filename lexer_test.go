package lambdaz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustLexer(t *testing.T, spec []TokenSpec) *Lexer {
	t.Helper()
	l, err := NewLexer(spec)
	require.Nil(t, err)
	return l
}

func TestSpecPriority(t *testing.T) {
	// same-length ties go to the earliest spec entry
	l := mustLexer(t, []TokenSpec{{Name: "A", Pattern: "a"}, {Name: "B", Pattern: "a"}})
	tokens, err := l.Lex("a")
	require.Nil(t, err)
	require.Equal(t, []Token{{Name: "A", Value: "a"}}, tokens)

	l = mustLexer(t, []TokenSpec{{Name: "B", Pattern: "a"}, {Name: "A", Pattern: "a"}})
	tokens, err = l.Lex("a")
	require.Nil(t, err)
	require.Equal(t, []Token{{Name: "B", Value: "a"}}, tokens)
}

func TestLongestMatch(t *testing.T) {
	// longest match runs before priority
	l := mustLexer(t, []TokenSpec{{Name: "X", Pattern: "a"}, {Name: "Y", Pattern: "a+"}})
	tokens, err := l.Lex("aaa")
	require.Nil(t, err)
	require.Equal(t, []Token{{Name: "Y", Value: "aaa"}}, tokens)
}

func TestPrefixHalting(t *testing.T) {
	l := mustLexer(t, []TokenSpec{{Name: "DIGIT", Pattern: "[0-9]"}})
	tokens, err := l.Lex("12")
	require.Nil(t, err)
	require.Equal(t, []Token{{Name: "DIGIT", Value: "1"}, {Name: "DIGIT", Value: "2"}}, tokens)
}

func TestErrorPosition(t *testing.T) {
	l := mustLexer(t, []TokenSpec{{Name: "A", Pattern: "a"}})

	tokens, err := l.Lex("aa")
	require.Nil(t, err)
	require.Len(t, tokens, 2)

	tokens, err = l.Lex("")
	require.Nil(t, err)
	require.Empty(t, tokens)

	_, err = l.Lex("aab?")
	require.NotNil(t, err)
	var lerr *LexError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 0, lerr.Line)
	require.Equal(t, 2, lerr.Column)
	require.False(t, lerr.EOF)
	require.EqualError(t, err, "No viable alternative at character 2, line 0")
}

func TestEOFError(t *testing.T) {
	l := mustLexer(t, []TokenSpec{{Name: "AB", Pattern: "ab"}})
	_, err := l.Lex("a")
	require.NotNil(t, err)
	var lerr *LexError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 0, lerr.Line)
	require.True(t, lerr.EOF)
	require.EqualError(t, err, "No viable alternative at character EOF, line 0")
}

func TestMultilineErrorPosition(t *testing.T) {
	l := mustLexer(t, []TokenSpec{
		{Name: "SPACE", Pattern: `\ `},
		{Name: "NEWLINE", Pattern: "\n"},
		{Name: "ABC", Pattern: "a(b+)c"},
		{Name: "AS", Pattern: "a+"},
		{Name: "BCS", Pattern: "(bc)+"},
		{Name: "DORC", Pattern: "(d|c)+"},
	})

	// "bd" on the second line matches no token: the "b" commits the scan to
	// BCS and the "d" kills it with nothing accepted
	_, err := l.Lex("d a\nbdbc ccddabbbc")
	require.NotNil(t, err)
	var lerr *LexError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 1, lerr.Line)
	require.Equal(t, 1, lerr.Column)
	require.False(t, lerr.EOF)
	require.EqualError(t, err, "No viable alternative at character 1, line 1")
}

func TestLexScenario(t *testing.T) {
	l := mustLexer(t, []TokenSpec{
		{Name: "SPACE", Pattern: `\ `},
		{Name: "NEWLINE", Pattern: "\n"},
		{Name: "ABC", Pattern: "a(b+)c"},
		{Name: "AS", Pattern: "a+"},
		{Name: "BCS", Pattern: "(bc)+"},
		{Name: "DORC", Pattern: "(d|c)+"},
	})

	tokens, err := l.Lex("d a\nbcbc ccddabbbc")
	require.Nil(t, err)
	require.Equal(t, []Token{
		{Name: "DORC", Value: "d"},
		{Name: "SPACE", Value: " "},
		{Name: "AS", Value: "a"},
		{Name: "NEWLINE", Value: "\n"},
		{Name: "BCS", Value: "bcbc"},
		{Name: "SPACE", Value: " "},
		{Name: "DORC", Value: "ccdd"},
		// longest match hands the whole tail to ABC, not AS then BCS
		{Name: "ABC", Value: "abbbc"},
	}, tokens)
}

func TestIdentifiersAndWhitespace(t *testing.T) {
	l := mustLexer(t, []TokenSpec{
		{Name: "ID", Pattern: "([a-z]|[A-Z])+"},
		{Name: "WS", Pattern: "(\\ |\n)+"},
	})
	tokens, err := l.Lex("Hello World")
	require.Nil(t, err)
	require.Equal(t, []Token{
		{Name: "ID", Value: "Hello"},
		{Name: "WS", Value: " "},
		{Name: "ID", Value: "World"},
	}, tokens)
}

func TestDeterminism(t *testing.T) {
	l := mustLexer(t, DefaultTokens)
	first, err := l.Lex("( + ( 1 2 ) )")
	require.Nil(t, err)
	second, err := l.Lex("( + ( 1 2 ) )")
	require.Nil(t, err)
	require.Equal(t, first, second)
}

func TestDefaultTokens(t *testing.T) {
	l := mustLexer(t, DefaultTokens)

	tokens, err := l.Lex("(lambda x: (x))")
	require.Nil(t, err)
	names := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		names = append(names, tok.Name)
	}
	require.Equal(t, []string{
		TokLParen, TokLambda, TokWS, TokID, TokColon, TokWS,
		TokLParen, TokID, TokRParen, TokRParen,
	}, names)

	// "+" is PLUS, "++" lexes as the longer CONCAT despite PLUS coming first
	tokens, err = l.Lex("+")
	require.Nil(t, err)
	require.Equal(t, []Token{{Name: TokPlus, Value: "+"}}, tokens)

	tokens, err = l.Lex("++")
	require.Nil(t, err)
	require.Equal(t, []Token{{Name: TokConcat, Value: "++"}}, tokens)

	// "lambda" wins the same-length tie against ID
	tokens, err = l.Lex("lambda")
	require.Nil(t, err)
	require.Equal(t, []Token{{Name: TokLambda, Value: "lambda"}}, tokens)

	tokens, err = l.Lex("lambdas")
	require.Nil(t, err)
	require.Equal(t, []Token{{Name: TokID, Value: "lambdas"}}, tokens)
}

func TestNullableTokenRejected(t *testing.T) {
	for _, spec := range [][]TokenSpec{
		{{Name: "E", Pattern: "eps"}},
		{{Name: "ANY", Pattern: "a*"}},
		{{Name: "OPT", Pattern: "a?"}},
		{{Name: "A", Pattern: "a"}, {Name: "STARS", Pattern: "b*"}},
	} {
		_, err := NewLexer(spec)
		require.NotNil(t, err, "spec %v", spec)
		require.Contains(t, err.Error(), "matches the empty string", "spec %v", spec)
	}
}

func TestBadPatternRejectsSpec(t *testing.T) {
	_, err := NewLexer([]TokenSpec{{Name: "OK", Pattern: "a"}, {Name: "BAD", Pattern: "(a"}})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "compiling token BAD")
	require.Contains(t, err.Error(), "expected )")
}

func TestLongestPrefixMatch(t *testing.T) {
	l := mustLexer(t, []TokenSpec{{Name: "A", Pattern: "a"}, {Name: "AB", Pattern: "ab"}})

	state, n, ok := l.longestPrefixMatch("abx")
	require.True(t, ok)
	require.Equal(t, 2, n)
	require.Equal(t, "AB", l.names[l.acceptMap[state]])

	state, n, ok = l.longestPrefixMatch("ax")
	require.True(t, ok)
	require.Equal(t, 1, n)
	require.Equal(t, "A", l.names[l.acceptMap[state]])

	_, n, ok = l.longestPrefixMatch("xa")
	require.False(t, ok)
	require.Equal(t, 0, n)

	// scan runs off the end without accepting
	_, n, ok = l.longestPrefixMatch("")
	require.False(t, ok)
	require.Equal(t, 0, n)
}

func TestLexOutsideAlphabet(t *testing.T) {
	l := mustLexer(t, []TokenSpec{{Name: "A", Pattern: "a+"}})
	_, err := l.Lex("aa#a")
	require.NotNil(t, err)
	var lerr *LexError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 0, lerr.Line)
	require.Equal(t, 2, lerr.Column)
}
