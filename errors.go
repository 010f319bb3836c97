package lambdaz

import "strconv"

// ErrorFormat is the template lexical error messages are rendered through.
const ErrorFormat = "No viable alternative at character {{col}}, line {{line}}"

// LexError reports the position of the first input character no token spec
// can match. Line is 0-based, Column is the offset of the offending character
// within that line. EOF marks scans that consumed the rest of the input
// without ever reaching an accept state.
type LexError struct {
	Line   int
	Column int
	EOF    bool
}

func (e *LexError) Error() string {
	col := strconv.Itoa(e.Column)
	if e.EOF {
		col = "EOF"
	}
	return Replace(ErrorFormat, map[string]interface{}{
		"col":  col,
		"line": e.Line,
	})
}
