// Package vm simulates a compiled nfa.NFA with a Pike-VM style BFS: a set
// of live threads advances one input codepoint at a time, each thread
// carrying its own capture-span bookkeeping. This avoids the exponential
// blow-up of naive backtracking while still reporting capture groups.
package vm

import (
	"github.com/luckasRanarison/regex-potata/internal/sparse"
	"github.com/luckasRanarison/regex-potata/nfa"
)

// Match is a half-open span of codepoint offsets into the input.
type Match struct {
	Start, End int
}

// Capture is one capture group's result for a single match. Group 0 is
// always the whole match.
type Capture struct {
	Group      uint32
	Name       string
	Start, End int
}

// thread is one live execution path: a state plus the capture spans
// accumulated to reach it. captures[2*g] / captures[2*g+1] are the start
// and end of group g, or -1 if the group hasn't been entered/closed yet.
type thread struct {
	state    nfa.StateID
	captures []int
}

// Simulator executes one compiled NFA. Its active-set buffers are sized
// once by New and reused by every Find/FindAll/CapturesAll call, while
// capture slots are allocated per call; no match state carries over between
// calls, so a Simulator is reusable but not safe
// for concurrent use — callers wanting concurrency should use one
// Simulator per goroutine (they're cheap to build).
type Simulator struct {
	n         *nfa.NFA
	visited   *sparse.SparseSet
	queue     []thread
	nextQueue []thread

	// MaxSteps optionally bounds the number of input codepoints the attempt
	// from a single start position may consume; an attempt that exceeds it
	// gives up with no match for that start, and Find moves on to the next
	// start. Zero means unbounded, matching the source engine's behavior.
	MaxSteps int
}

// New creates a Simulator for n.
func New(n *nfa.NFA) *Simulator {
	capacity := n.NumStates()
	if capacity < 16 {
		capacity = 16
	}
	return &Simulator{
		n:       n,
		visited: sparse.NewSparseSet(uint32(capacity)),
		queue:   make([]thread, 0, capacity),
	}
}

func (s *Simulator) newCaptures() []int {
	slots := s.n.CaptureCount() * 2
	caps := make([]int, slots)
	for i := range caps {
		caps[i] = -1
	}
	return caps
}

func cloneCaptures(c []int) []int {
	out := make([]int, len(c))
	copy(out, c)
	return out
}

// addThread follows epsilon/group/split transitions from t until it
// reaches a Symbol or the accept state, appending any new frontier state
// to dst. visited prevents revisiting a state within one generation,
// which both bounds the work and implements the spec's tie-break: the
// first path to reach a state keeps it.
func (s *Simulator) addThread(dst *[]thread, t thread, pos int) {
	if s.visited.Contains(uint32(t.state)) {
		return
	}
	s.visited.Insert(uint32(t.state))

	if s.n.IsMatch(t.state) {
		*dst = append(*dst, t)
		return
	}

	transitions := s.n.State(t.state).Transitions
	if len(transitions) == 0 {
		return
	}

	for _, tr := range transitions {
		switch tr.Predicate.Kind {
		case nfa.Epsilon:
			s.addThread(dst, thread{state: tr.Target, captures: t.captures}, pos)
		case nfa.GroupEnter:
			caps := cloneCaptures(t.captures)
			caps[2*tr.Predicate.Group] = pos
			s.addThread(dst, thread{state: tr.Target, captures: caps}, pos)
		case nfa.GroupExit:
			caps := cloneCaptures(t.captures)
			caps[2*tr.Predicate.Group+1] = pos
			s.addThread(dst, thread{state: tr.Target, captures: caps}, pos)
		case nfa.Symbol:
			*dst = append(*dst, t)
			return
		}
	}
}

// step consumes rune r from thread t, adding successor threads to
// s.nextQueue via the epsilon-closure at pos, the position just after r.
func (s *Simulator) step(t thread, r rune, pos int) {
	for _, tr := range s.n.State(t.state).Transitions {
		if tr.Predicate.Kind == nfa.Symbol && tr.Predicate.Accepts(r) {
			s.addThread(&s.nextQueue, thread{state: tr.Target, captures: t.captures}, pos)
		}
	}
}

// runFrom simulates the NFA starting at input[start:], implementing the
// spec's greedy-longest rule: it records every position at which the
// accept state is live and returns the last (longest) one, not the first.
func (s *Simulator) runFrom(input []rune, start int) (caps []int, end int, matched bool) {
	s.queue = s.queue[:0]
	s.visited.Clear()

	s.addThread(&s.queue, thread{state: s.n.Start(), captures: s.newCaptures()}, start)

	lastEnd := -1
	var lastCaps []int
	pos := start
	steps := 0

	for {
		for _, t := range s.queue {
			if s.n.IsMatch(t.state) {
				lastEnd = pos
				lastCaps = t.captures
				break
			}
		}

		if len(s.queue) == 0 || pos >= len(input) {
			break
		}
		if s.MaxSteps > 0 {
			steps++
			if steps > s.MaxSteps {
				return nil, 0, false
			}
		}

		r := input[pos]
		s.nextQueue = s.nextQueue[:0]
		s.visited.Clear()
		for _, t := range s.queue {
			s.step(t, r, pos+1)
		}
		s.queue, s.nextQueue = s.nextQueue, s.queue[:0]
		pos++
	}

	if lastEnd == -1 {
		return nil, 0, false
	}
	return lastCaps, lastEnd, true
}

// Find returns the leftmost match at or after from, scanning candidate
// start positions in order and taking the first one that matches
// (greedy-longest at that start), per the spec's scanning policy.
func (s *Simulator) Find(input []rune, from int) (Match, []Capture, bool) {
	for start := from; start <= len(input); start++ {
		caps, end, matched := s.runFrom(input, start)
		if matched {
			return Match{Start: start, End: end}, s.buildCaptures(caps, start, end), true
		}
	}
	return Match{}, nil, false
}

// FindAll returns every non-overlapping match in input, advancing past a
// zero-width match by one codepoint to guarantee forward progress.
func (s *Simulator) FindAll(input []rune) []Match {
	var matches []Match
	from := 0
	for from <= len(input) {
		m, _, ok := s.Find(input, from)
		if !ok {
			break
		}
		matches = append(matches, m)
		if m.End > m.Start {
			from = m.End
		} else {
			from = m.Start + 1
		}
	}
	return matches
}

// CapturesAll returns the full capture list (including group 0) for
// every non-overlapping match in input.
func (s *Simulator) CapturesAll(input []rune) [][]Capture {
	var all [][]Capture
	from := 0
	for from <= len(input) {
		_, caps, ok := s.Find(input, from)
		if !ok {
			break
		}
		all = append(all, caps)
		m := Match{Start: caps[0].Start, End: caps[0].End}
		if m.End > m.Start {
			from = m.End
		} else {
			from = m.Start + 1
		}
	}
	return all
}

// buildCaptures converts the raw slot array into the public Capture list.
// Group 0 is always present and equals the match bounds; a group not
// traversed on the winning path is omitted rather than reported empty.
func (s *Simulator) buildCaptures(caps []int, matchStart, matchEnd int) []Capture {
	out := []Capture{{Group: 0, Name: s.n.CaptureName(0), Start: matchStart, End: matchEnd}}
	for g := 1; g < s.n.CaptureCount(); g++ {
		start, end := caps[2*g], caps[2*g+1]
		if start < 0 || end < 0 {
			continue
		}
		out = append(out, Capture{Group: uint32(g), Name: s.n.CaptureName(uint32(g)), Start: start, End: end})
	}
	return out
}
