// Package miniregex is a small regular-expression engine: it parses a
// pattern into an AST (package ast, built by package parser), compiles the
// AST into a Thompson construction NFA (package nfa), and simulates that
// NFA against an input string to answer "does this string fully match?"
//
// Syntax: literal characters, grouping with '(' ')', alternation '|',
// Kleene closure '*', and implicit concatenation between adjacent operands.
// There are no character classes, escape sequences, anchors, '+'/'?',
// capture groups, or partial/unanchored matching — every entry point
// answers a whole-string membership question, never a search.
//
// Basic usage:
//
//	re, err := miniregex.Compile("a(b|c)*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.Matches("abcbc") {
//	    fmt.Println("matched!")
//	}
package miniregex

import (
	"github.com/coregx/miniregex/ast"
	"github.com/coregx/miniregex/nfa"
	"github.com/coregx/miniregex/parser"
)

// Parse parses pattern into an AST. It is a direct re-export of
// parser.Parse; most callers should use Compile instead.
//
// Example:
//
//	root, err := miniregex.Parse("a|b")
func Parse(pattern string) (*ast.Node, error) {
	return parser.Parse(pattern)
}

// Build compiles an AST into an NFA via Thompson's construction. It is a
// direct re-export of nfa.Compile; most callers should use Compile instead.
func Build(root *ast.Node) (*nfa.NFA, error) {
	return nfa.Compile(root)
}

// Compile parses pattern and builds the resulting NFA in one step.
//
// Example:
//
//	re, err := miniregex.Compile(`a(b|c)*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*nfa.NFA, error) {
	root, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return nfa.Compile(root)
}

// MustCompile compiles a pattern and panics if it fails. Useful for
// patterns known to be valid at compile time, typically package-level vars.
//
// Example:
//
//	var identifier = miniregex.MustCompile("(a|b)*")
func MustCompile(pattern string) *nfa.NFA {
	re, err := Compile(pattern)
	if err != nil {
		panic("miniregex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// Matches reports whether input, taken as a whole, is in the language
// compiled NFA n accepts. It is a direct re-export of (*nfa.NFA).Matches.
func Matches(n *nfa.NFA, input string) bool {
	return n.Matches(input)
}
