package nfa

// Builder constructs an NFA incrementally. States can be allocated before
// their transitions are known (needed for Kleene-style back-edges), and
// transitions are appended once the target is known — there is no
// fixed-arity "kind" per state, unlike a builder aimed at DFA
// determinization; a state simply accumulates an ordered transition list.
type Builder struct {
	states []State
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

// NewState allocates a state with no transitions yet and returns its id.
func (b *Builder) NewState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{})
	return id
}

// AddEpsilon appends an epsilon transition from -> to.
func (b *Builder) AddEpsilon(from, to StateID) {
	b.states[from].Transitions = append(b.states[from].Transitions, epsilon(to))
}

// AddGroupEnter appends a GroupEnter(group) transition from -> to.
func (b *Builder) AddGroupEnter(from StateID, group uint32, to StateID) {
	b.states[from].Transitions = append(b.states[from].Transitions, groupEnter(group, to))
}

// AddGroupExit appends a GroupExit(group) transition from -> to.
func (b *Builder) AddGroupExit(from StateID, group uint32, to StateID) {
	b.states[from].Transitions = append(b.states[from].Transitions, groupExit(group, to))
}

// AddSymbol appends a Symbol transition from -> to, accepting runes for
// which accepts returns true.
func (b *Builder) AddSymbol(from StateID, accepts func(rune) bool, label string, to StateID) {
	b.states[from].Transitions = append(b.states[from].Transitions, symbol(accepts, label, to))
}

// States returns the number of states allocated so far.
func (b *Builder) States() int {
	return len(b.states)
}

// Build finalizes the NFA. start is the entry state, accept is the single
// accept state (Thompson construction guarantees exactly one), and
// captureNames[i] is the name of capture group i (empty string for
// positional-only groups; index 0 is always "").
func (b *Builder) Build(start, accept StateID, captureCount int, captureNames []string) *NFA {
	return &NFA{
		states:       b.states,
		start:        start,
		accept:       accept,
		captureCount: captureCount,
		captureNames: captureNames,
	}
}
