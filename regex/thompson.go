package regex

import "github.com/StefanOctavian/lambdaz/automata"

// Thompson's construction. Every case keeps the contiguous-range invariant:
// a subexpression compiled at q0 owns exactly the ids [q0, q0+Size-1], starts
// at q0 and accepts only at q0+Size-1. That is what lets composite cases
// compile their children at fixed offsets without renumbering anything.

func (Epsilon) Thompson(q0 int) *automata.NFA {
	n := automata.NewNFA(q0)
	n.Accept[q0] = true
	return n
}

func (r Char) Thompson(q0 int) *automata.NFA {
	q1 := q0 + 1
	n := automata.NewNFA(q0)
	n.AddState(q1)
	n.AddTransition(q0, r.C, q1)
	n.Accept[q1] = true
	return n
}

func (r CharSet) Thompson(q0 int) *automata.NFA {
	q1 := q0 + 1
	n := automata.NewNFA(q0)
	n.AddState(q1)
	for c := range r.Set {
		n.AddTransition(q0, c, q1)
	}
	n.Accept[q1] = true
	return n
}

func (r Concat) Thompson(q0 int) *automata.NFA {
	n := r.Left.Thompson(q0)
	qfLeft := q0 + n.Size() - 1
	right := r.Right.Thompson(qfLeft + 1)
	n.Include(right)
	n.AddTransition(qfLeft, automata.Epsilon, right.Start)
	n.Accept = right.Accept
	return n
}

func (r Union) Thompson(q0 int) *automata.NFA {
	left := r.Left.Thompson(q0 + 1)
	qfLeft := q0 + left.Size()
	right := r.Right.Thompson(qfLeft + 1)
	qfRight := qfLeft + right.Size()
	qf := qfRight + 1

	n := automata.NewNFA(q0)
	n.Include(left)
	n.Include(right)
	n.AddState(qf)
	n.AddTransition(q0, automata.Epsilon, left.Start)
	n.AddTransition(q0, automata.Epsilon, right.Start)
	n.AddTransition(qfLeft, automata.Epsilon, qf)
	n.AddTransition(qfRight, automata.Epsilon, qf)
	n.Accept = automata.NewStateSet(qf)
	return n
}

func (r Star) Thompson(q0 int) *automata.NFA {
	inner := r.Inner.Thompson(q0 + 1)
	qfInner := q0 + inner.Size()
	qf := qfInner + 1

	n := automata.NewNFA(q0)
	n.Include(inner)
	n.AddState(qf)
	n.AddTransition(q0, automata.Epsilon, inner.Start)
	n.AddTransition(q0, automata.Epsilon, qf)
	n.AddTransition(qfInner, automata.Epsilon, inner.Start)
	n.AddTransition(qfInner, automata.Epsilon, qf)
	n.Accept = automata.NewStateSet(qf)
	return n
}

func (r Plus) Thompson(q0 int) *automata.NFA {
	return Concat{Left: r.Inner, Right: Star{Inner: r.Inner}}.Thompson(q0)
}

func (r Question) Thompson(q0 int) *automata.NFA {
	return Union{Left: r.Inner, Right: Epsilon{}}.Thompson(q0)
}
