package nfa

import (
	"github.com/coregx/miniregex/ast"
	"github.com/coregx/miniregex/internal/conv"
)

// Builder constructs an NFA incrementally: states are allocated one at a
// time and their edges are added or replaced until the shape is final, then
// Build validates and freezes it. Compile is the only caller in this
// package, but the low-level API is exported so other packages could drive
// construction directly, mirroring the teacher's Builder/Compiler split.
type Builder struct {
	states []State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

// AddState allocates a new state with no edges and returns its ID. The
// length-to-StateID narrowing goes through conv.IntToUint32 so a runaway
// pattern that would overflow StateID's 32 bits panics here instead of
// silently wrapping into a colliding ID.
func (b *Builder) AddState() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id})
	return id
}

// AddEdge appends a single outbound edge from to target, labeled sym.
func (b *Builder) AddEdge(from, target StateID, sym ast.Symbol) {
	s := &b.states[from]
	s.edges = append(s.edges, Edge{Target: target, Symbol: sym})
}

// SetEdges replaces from's entire outbound edge list. Used by Concatenation
// and Alternation construction to retarget a fragment's former end state onto
// the next fragment's start (Concatenation) or the new join state
// (Alternation).
func (b *Builder) SetEdges(from StateID, edges []Edge) {
	b.states[from].edges = edges
}

// States returns the number of states allocated so far.
func (b *Builder) States() int {
	return len(b.states)
}

// Build freezes the builder's states into an NFA with the given start and
// accept states, marking accept as the sole accepting state.
func (b *Builder) Build(start, accept StateID) (*NFA, error) {
	if int(start) >= len(b.states) || int(accept) >= len(b.states) {
		return nil, &ConstructionError{Message: "start or accept state out of bounds"}
	}
	b.states[accept].accepting = true
	return &NFA{states: b.states, start: start, accept: accept}, nil
}
