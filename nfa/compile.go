package nfa

import (
	"github.com/luckasRanarison/regex-potata/ast"
	"github.com/luckasRanarison/regex-potata/parser"
)

const maxRecursionDepth = 1000

// Compile parses pattern and Thompson-constructs its NFA. No partial NFA
// is ever returned alongside an error.
func Compile(pattern string) (*NFA, error) {
	root, groupCount, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}

	names := make([]string, groupCount+1)
	collectCaptureNames(root, names)

	c := &compiler{b: NewBuilder()}

	// state 0 is reserved for the whole-pattern entry so it is allocated
	// first, matching the "state 0 is the start" invariant.
	start := c.b.NewState()

	entry, exit, err := c.compile(root)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	accept := c.b.NewState() // allocated last: state N-1 is the accept.

	c.b.AddGroupEnter(start, 0, entry)
	c.b.AddGroupExit(exit, 0, accept)

	return c.b.Build(start, accept, groupCount+1, names), nil
}

func collectCaptureNames(node ast.Node, names []string) {
	switch n := node.(type) {
	case ast.Group:
		if n.Kind == ast.Capturing && int(n.ID) < len(names) {
			names[n.ID] = n.Name
		}
		collectCaptureNames(n.Inner, names)
	case ast.Concat:
		collectCaptureNames(n.Left, names)
		collectCaptureNames(n.Right, names)
	case ast.Alternation:
		collectCaptureNames(n.Left, names)
		collectCaptureNames(n.Right, names)
	case ast.Repetition:
		collectCaptureNames(n.Inner, names)
	}
}

// compiler holds the transient state of one Thompson construction pass.
type compiler struct {
	b     *Builder
	depth int
}

// compile returns (entry, exit) for node's fragment. exit has no outgoing
// transitions yet; the caller wires it to whatever follows.
func (c *compiler) compile(node ast.Node) (entry, exit StateID, err error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > maxRecursionDepth {
		return 0, 0, ErrTooComplex
	}

	switch n := node.(type) {
	case ast.Empty:
		q := c.b.NewState()
		return q, q, nil

	case ast.Literal:
		q0, q1 := c.b.NewState(), c.b.NewState()
		r := n.Char
		c.b.AddSymbol(q0, func(x rune) bool { return x == r }, string(r), q1)
		return q0, q1, nil

	case ast.Any:
		q0, q1 := c.b.NewState(), c.b.NewState()
		c.b.AddSymbol(q0, func(rune) bool { return true }, ".", q1)
		return q0, q1, nil

	case ast.Class:
		q0, q1 := c.b.NewState(), c.b.NewState()
		accept, label := classPredicate(n)
		c.b.AddSymbol(q0, accept, label, q1)
		return q0, q1, nil

	case ast.Concat:
		aEntry, aExit, err := c.compile(n.Left)
		if err != nil {
			return 0, 0, err
		}
		bEntry, bExit, err := c.compile(n.Right)
		if err != nil {
			return 0, 0, err
		}
		c.b.AddEpsilon(aExit, bEntry)
		return aEntry, bExit, nil

	case ast.Alternation:
		aEntry, aExit, err := c.compile(n.Left)
		if err != nil {
			return 0, 0, err
		}
		bEntry, bExit, err := c.compile(n.Right)
		if err != nil {
			return 0, 0, err
		}
		q0, q1 := c.b.NewState(), c.b.NewState()
		c.b.AddEpsilon(q0, aEntry)
		c.b.AddEpsilon(q0, bEntry)
		c.b.AddEpsilon(aExit, q1)
		c.b.AddEpsilon(bExit, q1)
		return q0, q1, nil

	case ast.Repetition:
		return c.compileRepetition(n)

	case ast.Group:
		if n.Kind == ast.NonCapturing {
			return c.compile(n.Inner)
		}
		innerEntry, innerExit, err := c.compile(n.Inner)
		if err != nil {
			return 0, 0, err
		}
		q0, q1 := c.b.NewState(), c.b.NewState()
		c.b.AddGroupEnter(q0, n.ID, innerEntry)
		c.b.AddGroupExit(innerExit, n.ID, q1)
		return q0, q1, nil
	}

	q := c.b.NewState()
	return q, q, nil
}

// compileRepetition lowers {min,max} per the spec's construction rules:
// min fresh copies in sequence, then either nothing (max==min), a Kleene
// loop (max==nil), or max-min chained optional copies.
func (c *compiler) compileRepetition(r ast.Repetition) (entry, exit StateID, err error) {
	if r.Max != nil && *r.Max == 0 {
		q := c.b.NewState()
		return q, q, nil
	}

	var headEntry, headExit StateID
	haveHead := false

	for i := uint32(0); i < r.Min; i++ {
		e, x, err := c.compile(r.Inner)
		if err != nil {
			return 0, 0, err
		}
		if !haveHead {
			headEntry, headExit = e, x
			haveHead = true
		} else {
			c.b.AddEpsilon(headExit, e)
			headExit = x
		}
	}

	var tailEntry, tailExit StateID
	switch {
	case r.Max == nil:
		tailEntry, tailExit, err = c.compileKleeneTail(r.Inner)
	case *r.Max > r.Min:
		tailEntry, tailExit, err = c.compileOptionalChain(r.Inner, *r.Max-r.Min)
	default:
		// max == min: nothing more to append.
		if !haveHead {
			q := c.b.NewState()
			return q, q, nil
		}
		return headEntry, headExit, nil
	}
	if err != nil {
		return 0, 0, err
	}

	if !haveHead {
		return tailEntry, tailExit, nil
	}
	c.b.AddEpsilon(headExit, tailEntry)
	return headEntry, tailExit, nil
}

// compileKleeneTail builds one fresh copy T of inner and the loop:
// q0 -> T.entry, q0 -> q1, T.exit -> q0, T.exit -> q1.
func (c *compiler) compileKleeneTail(inner ast.Node) (entry, exit StateID, err error) {
	tEntry, tExit, err := c.compile(inner)
	if err != nil {
		return 0, 0, err
	}
	q0, q1 := c.b.NewState(), c.b.NewState()
	c.b.AddEpsilon(q0, tEntry)
	c.b.AddEpsilon(q0, q1)
	c.b.AddEpsilon(tExit, q0)
	c.b.AddEpsilon(tExit, q1)
	return q0, q1, nil
}

// compileOptionalChain appends count fresh optional ("?") copies of inner
// in sequence: each is q0 -> T.entry, q0 -> q1, T.exit -> q1.
func (c *compiler) compileOptionalChain(inner ast.Node, count uint32) (entry, exit StateID, err error) {
	var chainEntry, chainExit StateID
	have := false

	for i := uint32(0); i < count; i++ {
		tEntry, tExit, err := c.compile(inner)
		if err != nil {
			return 0, 0, err
		}
		q0, q1 := c.b.NewState(), c.b.NewState()
		c.b.AddEpsilon(q0, tEntry)
		c.b.AddEpsilon(q0, q1)
		c.b.AddEpsilon(tExit, q1)

		if !have {
			chainEntry, chainExit = q0, q1
			have = true
		} else {
			c.b.AddEpsilon(chainExit, q0)
			chainExit = q1
		}
	}

	return chainEntry, chainExit, nil
}
