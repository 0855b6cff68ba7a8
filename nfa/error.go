// Package nfa compiles an ast.Node into a Thompson construction NFA and
// simulates it over a full input string.
package nfa

import "fmt"

// ConstructionError reports that Thompson construction finished with
// something other than exactly one fragment on its working stack, or that
// Builder.Build was given a start or accept state outside the arena. This
// indicates a bug in Compile itself, not malformed user input — parser.Parse
// has already rejected anything that would make the AST ill-shaped — but it
// is returned as an error rather than panicked, since it reflects a Compile
// invariant violation rather than an assertion about caller behavior.
type ConstructionError struct {
	Message string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("nfa: construction invariant violated: %s", e.Message)
}
