package lang

import (
	"fmt"
	"strconv"

	"github.com/StefanOctavian/lambdaz"
)

// Nonterminals of the predictive parser.
type nonterm int

const (
	ntList nonterm = iota
	ntAtom
	ntLambdaExpr
	// ntLambdaReduce triggers the reduction of a parsed lambda expression
	ntLambdaReduce
)

// symbol is a parse-stack entry: a terminal token name or a nonterminal.
type symbol struct {
	term string
	nt   nonterm
}

func terminal(name string) symbol { return symbol{term: name} }

func nonterminal(nt nonterm) symbol { return symbol{nt: nt} }

// listMarker delimits list reductions on the value stack.
type listMarker struct{}

func (listMarker) Eval(map[string]Atom) (Atom, error) {
	return nil, fmt.Errorf("reduce marker is not a value")
}

func (listMarker) String() string { return "" }

type parser struct {
	parseStack []symbol
	valueStack []Atom
	tokens     []lambdaz.Token
	index      int
}

// Parse builds the list structure of a LambdaZ program from its token stream.
// The program must be a single parenthesized list.
func Parse(tokens []lambdaz.Token) (*List, error) {
	p := &parser{tokens: tokens}
	p.pushParse(terminal(lambdaz.TokRParen))
	p.pushParse(nonterminal(ntList))
	p.pushParse(terminal(lambdaz.TokLParen))
	p.valueStack = []Atom{listMarker{}}

	for len(p.parseStack) > 0 {
		top := p.parseStack[len(p.parseStack)-1]
		p.parseStack = p.parseStack[:len(p.parseStack)-1]

		var err error
		if top.term != "" {
			err = p.terminal(top.term)
		} else {
			err = p.nonterminal(top.nt)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(p.valueStack) != 1 {
		return nil, fmt.Errorf("malformed program: %d values left after parse", len(p.valueStack))
	}
	prog, ok := p.valueStack[0].(*List)
	if !ok {
		return nil, fmt.Errorf("malformed program: top level is not a list")
	}
	return prog, nil
}

func (p *parser) pushParse(s symbol) {
	p.parseStack = append(p.parseStack, s)
}

func (p *parser) pushValue(a Atom) {
	p.valueStack = append(p.valueStack, a)
}

func (p *parser) popValue() Atom {
	a := p.valueStack[len(p.valueStack)-1]
	p.valueStack = p.valueStack[:len(p.valueStack)-1]
	return a
}

// peek returns the name of the next non-whitespace token without consuming it.
func (p *parser) peek() (string, error) {
	for p.index < len(p.tokens) && p.tokens[p.index].Name == lambdaz.TokWS {
		p.index++
	}
	if p.index >= len(p.tokens) {
		return "", fmt.Errorf("unexpected end of input")
	}
	return p.tokens[p.index].Name, nil
}

// terminal matches the expected token, pushing its value where one exists and
// reducing the current list on a closing parenthesis.
func (p *parser) terminal(name string) error {
	got, err := p.peek()
	if err != nil {
		return err
	}
	if got != name {
		return fmt.Errorf("unexpected token %s, expected %s", got, name)
	}
	tok := p.tokens[p.index]
	switch name {
	case lambdaz.TokID:
		p.pushValue(&Ident{Name: tok.Value})
	case lambdaz.TokNum:
		value, err := strconv.Atoi(tok.Value)
		if err != nil {
			return fmt.Errorf("invalid number literal %q", tok.Value)
		}
		p.pushValue(&Num{Value: value})
	case lambdaz.TokPlus:
		p.pushValue(&Ident{Name: "+"})
	case lambdaz.TokConcat:
		p.pushValue(&Ident{Name: "++"})
	case lambdaz.TokRParen:
		if err := p.reduceList(); err != nil {
			return err
		}
	}
	p.index++
	return nil
}

func (p *parser) nonterminal(nt nonterm) error {
	switch nt {
	case ntList:
		got, err := p.peek()
		if err != nil {
			return err
		}
		if got != lambdaz.TokRParen {
			p.pushParse(nonterminal(ntList))
			p.pushParse(nonterminal(ntAtom))
		}
	case ntAtom:
		got, err := p.peek()
		if err != nil {
			return err
		}
		switch got {
		case lambdaz.TokLParen:
			p.pushValue(listMarker{})
			p.pushParse(terminal(lambdaz.TokRParen))
			p.pushParse(nonterminal(ntList))
			p.pushParse(terminal(lambdaz.TokLParen))
		case lambdaz.TokID, lambdaz.TokNum, lambdaz.TokPlus, lambdaz.TokConcat:
			// no need to go through the main loop for single-token atoms
			return p.terminal(got)
		case lambdaz.TokLambda:
			p.pushParse(nonterminal(ntLambdaExpr))
		default:
			return fmt.Errorf("unexpected token %s", got)
		}
	case ntLambdaExpr:
		p.pushParse(nonterminal(ntLambdaReduce))
		p.pushParse(nonterminal(ntAtom))
		p.pushParse(terminal(lambdaz.TokColon))
		p.pushParse(terminal(lambdaz.TokID))
		p.pushParse(terminal(lambdaz.TokLambda))
	case ntLambdaReduce:
		return p.reduceLambda()
	}
	return nil
}

// reduceList pops values down to the nearest marker and pushes them back as a
// single list.
func (p *parser) reduceList() error {
	var items []Atom
	for {
		if len(p.valueStack) == 0 {
			return fmt.Errorf("malformed program: unbalanced parentheses")
		}
		top := p.popValue()
		if _, ok := top.(listMarker); ok {
			break
		}
		items = append(items, top)
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	p.pushValue(&List{Items: items})
	return nil
}

// reduceLambda pops the parsed body and argument and pushes the lambda value.
func (p *parser) reduceLambda() error {
	if len(p.valueStack) < 2 {
		return fmt.Errorf("malformed lambda expression")
	}
	body := p.popValue()
	arg, ok := p.popValue().(*Ident)
	if !ok {
		return fmt.Errorf("lambda argument must be an identifier")
	}
	p.pushValue(&Lambda{Arg: arg.Name, Body: body, Env: map[string]Atom{}})
	return nil
}
