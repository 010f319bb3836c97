// Package lang implements the LambdaZ surface language on top of the generic
// lexer: a stack-based predictive parser over the token stream and an
// evaluator for the resulting list structure.
package lang

import (
	"fmt"
	"strconv"
	"strings"
)

// Atom is a LambdaZ value: an identifier, a number, a list or a lambda.
type Atom interface {
	// Eval reduces the atom under the given scope.
	Eval(scope map[string]Atom) (Atom, error)
	String() string
}

// Ident is an identifier. The builtins "+" and "++" evaluate to themselves;
// anything else is looked up in scope.
type Ident struct {
	Name string
}

func (a *Ident) Eval(scope map[string]Atom) (Atom, error) {
	if a.Name == "+" || a.Name == "++" {
		return a, nil
	}
	value, ok := scope[a.Name]
	if !ok {
		return nil, fmt.Errorf("unbound identifier %s", a.Name)
	}
	return value, nil
}

func (a *Ident) String() string { return a.Name }

// Num is an integer literal.
type Num struct {
	Value int
}

func (a *Num) Eval(map[string]Atom) (Atom, error) { return a, nil }

func (a *Num) String() string { return strconv.Itoa(a.Value) }

// List is a parenthesized sequence of atoms. A two-element list whose head
// evaluates to a lambda or a builtin is an application; every other list
// evaluates element-wise.
type List struct {
	Items []Atom
}

func (a *List) Eval(scope map[string]Atom) (Atom, error) {
	items := make([]Atom, len(a.Items))
	for i, item := range a.Items {
		value, err := item.Eval(scope)
		if err != nil {
			return nil, err
		}
		items[i] = value
	}
	if len(items) != 2 {
		return &List{Items: items}, nil
	}
	arg := items[1]
	switch f := items[0].(type) {
	case *Lambda:
		return f.Body.Eval(merged(scope, f.Env, map[string]Atom{f.Arg: arg}))
	case *Ident:
		switch f.Name {
		case "+":
			return sum(arg)
		case "++":
			return flatten(arg)
		}
	}
	return &List{Items: items}, nil
}

func (a *List) String() string {
	if len(a.Items) == 0 {
		return "()"
	}
	parts := make([]string, len(a.Items))
	for i, item := range a.Items {
		parts[i] = item.String()
	}
	return "( " + strings.Join(parts, " ") + " )"
}

// Lambda is a single-argument function. Evaluating it captures the current
// scope; applying it evaluates the body under scope, captured environment and
// argument binding, in that precedence order.
type Lambda struct {
	Arg  string
	Body Atom
	Env  map[string]Atom
}

func (a *Lambda) Eval(scope map[string]Atom) (Atom, error) {
	return &Lambda{Arg: a.Arg, Body: a.Body, Env: merged(a.Env, scope)}, nil
}

func (a *Lambda) String() string {
	return fmt.Sprintf("lambda %s: %s", a.Arg, a.Body)
}

// sum implements the "+" builtin: the deep sum of a numeric list.
func sum(arg Atom) (Atom, error) {
	list, ok := arg.(*List)
	if !ok {
		return nil, fmt.Errorf("cannot add non list")
	}
	total := 0
	for _, item := range list.Items {
		switch v := item.(type) {
		case *Num:
			total += v.Value
		case *List:
			inner, err := sum(v)
			if err != nil {
				return nil, err
			}
			total += inner.(*Num).Value
		default:
			return nil, fmt.Errorf("cannot add %s", item)
		}
	}
	return &Num{Value: total}, nil
}

// flatten implements the "++" builtin: concatenation one level deep.
func flatten(arg Atom) (Atom, error) {
	list, ok := arg.(*List)
	if !ok {
		return nil, fmt.Errorf("cannot concat non list")
	}
	var items []Atom
	for _, item := range list.Items {
		if inner, ok := item.(*List); ok {
			items = append(items, inner.Items...)
		} else {
			items = append(items, item)
		}
	}
	return &List{Items: items}, nil
}

// merged overlays the given scopes left to right, later entries winning.
func merged(scopes ...map[string]Atom) map[string]Atom {
	out := make(map[string]Atom)
	for _, scope := range scopes {
		for k, v := range scope {
			out[k] = v
		}
	}
	return out
}
