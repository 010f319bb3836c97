package lang

import (
	"testing"

	"github.com/StefanOctavian/lambdaz"
	"github.com/stretchr/testify/require"
)

func mustTokens(t *testing.T, src string) []lambdaz.Token {
	t.Helper()
	lexer, err := lambdaz.NewLexer(lambdaz.DefaultTokens)
	require.Nil(t, err)
	tokens, err := lexer.Lex(src)
	require.Nil(t, err)
	return tokens
}

func TestParseFlatList(t *testing.T) {
	prog, err := Parse(mustTokens(t, "( 1 2 3 )"))
	require.Nil(t, err)
	require.Equal(t, &List{Items: []Atom{
		&Num{Value: 1}, &Num{Value: 2}, &Num{Value: 3},
	}}, prog)
}

func TestParseEmptyList(t *testing.T) {
	prog, err := Parse(mustTokens(t, "()"))
	require.Nil(t, err)
	require.Equal(t, &List{}, prog)
}

func TestParseNestedList(t *testing.T) {
	prog, err := Parse(mustTokens(t, "( a ( 1 b ) )"))
	require.Nil(t, err)
	require.Equal(t, &List{Items: []Atom{
		&Ident{Name: "a"},
		&List{Items: []Atom{&Num{Value: 1}, &Ident{Name: "b"}}},
	}}, prog)
}

func TestParseBuiltins(t *testing.T) {
	prog, err := Parse(mustTokens(t, "( + ( 1 2 ) )"))
	require.Nil(t, err)
	require.Equal(t, &List{Items: []Atom{
		&Ident{Name: "+"},
		&List{Items: []Atom{&Num{Value: 1}, &Num{Value: 2}}},
	}}, prog)

	prog, err = Parse(mustTokens(t, "( ++ ( ( 1 ) ( 2 ) ) )"))
	require.Nil(t, err)
	require.Equal(t, &Ident{Name: "++"}, prog.Items[0])
}

func TestParseLambda(t *testing.T) {
	prog, err := Parse(mustTokens(t, "( lambda x: x 5 )"))
	require.Nil(t, err)
	require.Equal(t, &List{Items: []Atom{
		&Lambda{Arg: "x", Body: &Ident{Name: "x"}, Env: map[string]Atom{}},
		&Num{Value: 5},
	}}, prog)
}

func TestParseLambdaListBody(t *testing.T) {
	prog, err := Parse(mustTokens(t, "( lambda x: ( + ( x 1 ) ) )"))
	require.Nil(t, err)
	require.Len(t, prog.Items, 1)
	fn, ok := prog.Items[0].(*Lambda)
	require.True(t, ok)
	require.Equal(t, "x", fn.Arg)
	require.IsType(t, &List{}, fn.Body)
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"(",           // unterminated list
		"( lambda x ", // lambda missing colon and body
		") (",         // program does not start with a list
		"( : )",       // colon outside a lambda
	}
	for _, src := range cases {
		_, err := Parse(mustTokens(t, src))
		require.NotNil(t, err, "source %q", src)
	}
}

func TestParseIgnoresSurroundingWhitespace(t *testing.T) {
	prog, err := Parse(mustTokens(t, "  ( 1 )\n"))
	require.Nil(t, err)
	require.Equal(t, &List{Items: []Atom{&Num{Value: 1}}}, prog)
}
