package automata

import (
	"sort"
	"strconv"
	"strings"
)

// SinkKey is the canonical key of the empty DFA state, the unique
// non-accepting sink every dead transition lands in.
const SinkKey = "{}"

// Key returns the canonical string form of the set, e.g. "{1,2,5}". Equal
// sets produce equal keys, which is what lets DFA states built from sets of
// NFA states collapse to the same node.
func (s StateSet) Key() string {
	if len(s) == 0 {
		return SinkKey
	}
	ids := make([]int, 0, len(s))
	for q := range s {
		ids = append(ids, q)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// DFA is a deterministic finite automaton whose states are frozen sets of NFA
// state ids, addressed by their canonical key. Trans is total over
// (state, alphabet symbol); symbols outside the alphabet have no entry and
// behave like a transition into the sink.
type DFA struct {
	Alphabet map[rune]bool
	States   map[string]StateSet
	Start    string
	Trans    map[string]map[rune]string
	Accept   map[string]bool
}

// Step returns the successor of state on c. Missing entries (symbols outside
// the alphabet) map to the sink.
func (d *DFA) Step(state string, c rune) string {
	if next, ok := d.Trans[state][c]; ok {
		return next
	}
	return SinkKey
}

// Accepts simulates the automaton on word.
func (d *DFA) Accepts(word string) bool {
	state := d.Start
	for _, c := range word {
		next, ok := d.Trans[state][c]
		if !ok {
			return false
		}
		state = next
	}
	return d.Accept[state]
}

// Determinize converts the NFA into an equivalent DFA using subset
// construction. The worklist is an unbounded slice; the number of reachable
// subsets is not known up front and can be exponential in the worst case.
func (n *NFA) Determinize() *DFA {
	closures := n.EpsilonClosures()

	start := closures[n.Start]
	d := &DFA{
		Alphabet: make(map[rune]bool, len(n.Alphabet)),
		States:   make(map[string]StateSet),
		Start:    start.Key(),
		Trans:    make(map[string]map[rune]string),
		Accept:   make(map[string]bool),
	}
	for sym := range n.Alphabet {
		d.Alphabet[sym] = true
	}

	d.States[d.Start] = start
	worklist := []StateSet{start}

	for len(worklist) > 0 {
		group := worklist[0]
		worklist = worklist[1:]
		key := group.Key()

		if group.Intersects(n.Accept) {
			d.Accept[key] = true
		}

		row := make(map[rune]string, len(n.Alphabet))
		for c := range n.Alphabet {
			next := make(StateSet)
			for q := range group {
				for t := range n.Targets(q, c) {
					next.Add(closures[t])
				}
			}
			nextKey := next.Key()
			row[c] = nextKey
			if _, seen := d.States[nextKey]; !seen {
				d.States[nextKey] = next
				worklist = append(worklist, next)
			}
		}
		d.Trans[key] = row
	}

	return d
}
