package lambdaz

// Terminal names of the LambdaZ surface language.
const (
	TokLambda = "LAMBDA"
	TokID     = "ID"
	TokNum    = "NUM"
	TokPlus   = "PLUS"
	TokConcat = "CONCAT"
	TokColon  = "COLON"
	TokLParen = "LPAREN"
	TokRParen = "RPAREN"
	TokWS     = "WS"
)

// DefaultTokens is the token spec of the LambdaZ language. PLUS precedes
// CONCAT but "++" still lexes as CONCAT: longest match runs first, spec order
// only breaks same-length ties (which is how "lambda" beats ID).
var DefaultTokens = []TokenSpec{
	{Name: TokLambda, Pattern: "lambda"},
	{Name: TokID, Pattern: "([a-z]|[A-Z])+"},
	{Name: TokNum, Pattern: "([0-9])+"},
	{Name: TokPlus, Pattern: `\+`},
	{Name: TokConcat, Pattern: `\+\+`},
	{Name: TokColon, Pattern: ":"},
	{Name: TokLParen, Pattern: `\(`},
	{Name: TokRParen, Pattern: `\)`},
	{Name: TokWS, Pattern: "(\\ |\t|\n)+"},
}
