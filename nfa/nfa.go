package nfa

import (
	"fmt"

	"github.com/coregx/miniregex/ast"
)

// StateID uniquely identifies a state within one NFA's arena.
type StateID uint32

// InvalidState is a sentinel for "no state"; State returns nil for it.
const InvalidState StateID = 0xFFFFFFFF

// Edge is a single outbound transition: follow it to Target if Symbol
// matches at the simulator's current input position. Symbol.Kind ==
// ast.SymbolEpsilon marks an ε-edge, which always matches and consumes
// nothing.
type Edge struct {
	Target StateID
	Symbol ast.Symbol
}

// State is one node of the NFA arena. Out-degree is at most 2 (Split
// states produced by Closure and Alternation); everything else has at most
// one outbound edge. Accepting is true for exactly one state per NFA, and
// that state has no outbound edges.
type State struct {
	id        StateID
	edges     []Edge
	accepting bool
}

// ID returns the state's arena index.
func (s *State) ID() StateID { return s.id }

// Edges returns the state's outbound edges. Do not mutate the returned
// slice; it aliases the NFA's internal storage.
func (s *State) Edges() []Edge { return s.edges }

// Accepting reports whether this is the NFA's sole accepting state.
func (s *State) Accepting() bool { return s.accepting }

func (s *State) String() string {
	if s.accepting {
		return fmt.Sprintf("State(%d, accepting)", s.id)
	}
	return fmt.Sprintf("State(%d, edges=%v)", s.id, s.edges)
}

// NFA is a compiled Thompson construction: an arena of states plus the
// distinguished start and accepting state IDs. Once returned from Build or
// Compile, an NFA is immutable and safe for concurrent use by multiple
// Matches calls.
type NFA struct {
	states []State
	start  StateID
	accept StateID
}

// State returns the state with the given ID, or nil if id is out of range.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// Start returns the NFA's single start state.
func (n *NFA) Start() StateID { return n.start }

// Accept returns the NFA's single accepting state.
func (n *NFA) Accept() StateID { return n.accept }

// NumStates returns the number of states in the arena.
func (n *NFA) NumStates() int { return len(n.states) }

func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, accept: %d}", len(n.states), n.start, n.accept)
}
