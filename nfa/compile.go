package nfa

import "github.com/coregx/miniregex/ast"

// fragment is an in-progress NFA piece on Compile's working stack: a
// subgraph with one entry state and one exit state, neither yet marked
// accepting.
type fragment struct {
	start, end StateID
}

// Compile performs post-order Thompson construction over root, producing an
// ε-NFA with a single start state with no inbound edges, a single accepting
// state with no outbound edges, and out-degree at most 2 per state (2 only
// for the ε-split states Closure and Alternation wire: the new start of
// either, and a Closure's inner end).
//
// Mirrors the teacher's recursive compileConcat/compileAlternate/compileStar
// structure in shape (allocate states, wire edges, return a start/end pair)
// but drives the walk from ast.PostOrder's explicit work-list rather than
// recursing over the tree, matching how this package's parser counterpart
// avoids native call-stack recursion.
func Compile(root *ast.Node) (*NFA, error) {
	b := NewBuilder()
	var stack []fragment

	pop := func() fragment {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]
		return f
	}

	for _, node := range ast.PostOrder(root) {
		switch node.Kind {
		case ast.NodeValue:
			end := b.AddState()
			start := b.AddState()
			b.AddEdge(start, end, node.Symbol)
			stack = append(stack, fragment{start: start, end: end})

		case ast.NodeClosure:
			inner := pop()
			end := b.AddState()
			start := b.AddState()
			b.AddEdge(start, end, ast.Epsilon)             // skip: zero repetitions
			b.AddEdge(start, inner.start, ast.Epsilon)     // enter: one more repetition
			b.AddEdge(inner.end, inner.start, ast.Epsilon) // loop back
			b.AddEdge(inner.end, end, ast.Epsilon)         // exit after a repetition
			stack = append(stack, fragment{start: start, end: end})

		case ast.NodeConcatenation:
			second := pop()
			first := pop()
			b.SetEdges(first.end, []Edge{{Target: second.start, Symbol: ast.Epsilon}})
			stack = append(stack, fragment{start: first.start, end: second.end})

		case ast.NodeAlternation:
			second := pop()
			first := pop()
			start := b.AddState()
			b.AddEdge(start, first.start, ast.Epsilon)
			b.AddEdge(start, second.start, ast.Epsilon)
			end := b.AddState()
			b.SetEdges(first.end, []Edge{{Target: end, Symbol: ast.Epsilon}})
			b.SetEdges(second.end, []Edge{{Target: end, Symbol: ast.Epsilon}})
			stack = append(stack, fragment{start: start, end: end})
		}
	}

	if len(stack) != 1 {
		return nil, &ConstructionError{Message: "working stack did not reduce to exactly one fragment"}
	}

	final := stack[0]
	return b.Build(final.start, final.end)
}
