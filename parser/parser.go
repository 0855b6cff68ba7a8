// Package parser turns a pattern string into an ast.Node tree using a
// shunting-yard driver that builds the tree directly (rather than emitting
// postfix notation and building afterwards).
package parser

import (
	"github.com/coregx/miniregex/ast"
)

// opKind identifies an operator on the parser's operator stack. Unlike the
// characters of the pattern, these are never ambiguous with a literal
// operand, since literals live only on the output stack.
type opKind int

const (
	opOpen opKind = iota
	opStar
	opConcat
	opAlt
)

// precedence returns the binding strength of op, highest first: '*' binds
// tighter than concatenation, which binds tighter than '|'. opOpen is never
// compared by precedence; callers special-case it.
func precedence(op opKind) int {
	switch op {
	case opStar:
		return 2
	case opConcat:
		return 1
	case opAlt:
		return 0
	default:
		return -1
	}
}

// parser holds the shunting-yard state for a single Parse call.
type parser struct {
	input []rune
	pos   int

	operators []opKind
	output    []*ast.Node

	justSawOperand    bool
	justSawCloseParen bool
}

// Parse parses pattern into an AST: literal characters, '(' ')' grouping,
// postfix '*', infix '|', and implicit concatenation wherever an operand or
// ')' is immediately followed by another operand or '('. It returns a
// *ParseError for unbalanced parentheses or a malformed expression
// (insufficient operands for an operator, including an empty pattern).
func Parse(pattern string) (*ast.Node, error) {
	input := []rune(pattern)
	if len(input) == 0 {
		return nil, &ParseError{Kind: ErrMalformedExpression, Message: "empty pattern", Pos: 0}
	}

	p := &parser{input: input}
	for p.pos < len(p.input) {
		if err := p.step(); err != nil {
			return nil, err
		}
	}

	if err := p.finish(); err != nil {
		return nil, err
	}

	if len(p.output) != 1 {
		return nil, &ParseError{
			Kind:    ErrMalformedExpression,
			Message: "malformed expression",
			Pos:     p.pos,
		}
	}

	return p.output[0], nil
}

// step consumes and processes exactly one rune of input.
func (p *parser) step() error {
	ch := p.input[p.pos]

	switch ch {
	case '(':
		if err := p.maybeEmitConcat(); err != nil {
			return err
		}
		p.operators = append(p.operators, opOpen)
		p.justSawOperand = false
		p.justSawCloseParen = false

	case ')':
		if err := p.closeParen(); err != nil {
			return err
		}
		p.justSawOperand = false
		p.justSawCloseParen = true

	case '*':
		if err := p.closure(); err != nil {
			return err
		}
		// The closure just built is itself a complete operand, so a
		// following literal or '(' must still trigger implicit
		// concatenation (required for a*a to parse at all, as the
		// counterpart of aa*); justSawOperand carries that forward rather than clearing
		// both flags.
		p.justSawOperand = true
		p.justSawCloseParen = false

	case '|':
		// '|' never triggers implicit concatenation; only a literal or '('
		// does.
		if err := p.pushWithPrecedence(opAlt); err != nil {
			return err
		}
		p.justSawOperand = false
		p.justSawCloseParen = false

	default:
		if err := p.maybeEmitConcat(); err != nil {
			return err
		}
		p.output = append(p.output, ast.NewValue(ast.Literal(ch)))
		p.justSawOperand = true
		p.justSawCloseParen = false
	}

	p.pos++
	return nil
}

// maybeEmitConcat inserts an implicit concatenation operator if the previous
// token was an operand or a ')'.
func (p *parser) maybeEmitConcat() error {
	if !p.justSawOperand && !p.justSawCloseParen {
		return nil
	}
	return p.pushWithPrecedence(opConcat)
}

// pushWithPrecedence drains higher-or-equal-precedence operators from the
// operator stack (applying each to the output stack), then pushes op.
func (p *parser) pushWithPrecedence(op opKind) error {
	for len(p.operators) > 0 {
		top := p.operators[len(p.operators)-1]
		if top == opOpen || precedence(top) < precedence(op) {
			break
		}
		p.operators = p.operators[:len(p.operators)-1]
		if err := p.apply(top); err != nil {
			return err
		}
	}
	p.operators = append(p.operators, op)
	return nil
}

// closure implements '*': drain higher-or-equal-precedence operators (in
// practice none — '*' is the highest precedence operator and is never
// itself left on the stack), then apply immediately.
func (p *parser) closure() error {
	for len(p.operators) > 0 {
		top := p.operators[len(p.operators)-1]
		if top == opOpen || precedence(top) < precedence(opStar) {
			break
		}
		p.operators = p.operators[:len(p.operators)-1]
		if err := p.apply(top); err != nil {
			return err
		}
	}
	return p.apply(opStar)
}

// closeParen pops and applies operators until '(' is popped. If the operator
// stack empties before an '(' is found, the parentheses are unbalanced.
func (p *parser) closeParen() error {
	for len(p.operators) > 0 {
		top := p.operators[len(p.operators)-1]
		p.operators = p.operators[:len(p.operators)-1]
		if top == opOpen {
			return nil
		}
		if err := p.apply(top); err != nil {
			return err
		}
	}
	return &ParseError{
		Kind:    ErrUnbalancedParenthesis,
		Message: "unmatched ')'",
		Pos:     p.pos,
	}
}

// finish pops and applies every remaining operator at end of input. A
// leftover '(' means a group was never closed.
func (p *parser) finish() error {
	for len(p.operators) > 0 {
		top := p.operators[len(p.operators)-1]
		p.operators = p.operators[:len(p.operators)-1]
		if top == opOpen {
			return &ParseError{
				Kind:    ErrUnbalancedParenthesis,
				Message: "unclosed '('",
				Pos:     p.pos,
			}
		}
		if err := p.apply(top); err != nil {
			return err
		}
	}
	return nil
}

// apply pops the operands an operator needs from the output stack and
// pushes the resulting node. Insufficient operands is a user-facing parse
// error; an attempt to apply opOpen indicates a bug in the parser itself
// (every opOpen is consumed directly by closeParen/finish, so it should
// never reach here) and panics as an internal, unrecoverable condition.
func (p *parser) apply(op opKind) error {
	switch op {
	case opStar:
		if len(p.output) < 1 {
			return &ParseError{Kind: ErrMalformedExpression, Message: "'*' has no operand", Pos: p.pos}
		}
		child := p.output[len(p.output)-1]
		p.output[len(p.output)-1] = ast.NewClosure(child)
		return nil

	case opConcat:
		if len(p.output) < 2 {
			return &ParseError{Kind: ErrMalformedExpression, Message: "concatenation has insufficient operands", Pos: p.pos}
		}
		right := p.output[len(p.output)-1]
		left := p.output[len(p.output)-2]
		p.output = p.output[:len(p.output)-2]
		p.output = append(p.output, ast.NewConcatenation(left, right))
		return nil

	case opAlt:
		if len(p.output) < 2 {
			return &ParseError{Kind: ErrMalformedExpression, Message: "'|' has insufficient operands", Pos: p.pos}
		}
		right := p.output[len(p.output)-1]
		left := p.output[len(p.output)-2]
		p.output = p.output[:len(p.output)-2]
		p.output = append(p.output, ast.NewAlternation(left, right))
		return nil

	default:
		panic("parser: internal error: unknown operator on stack")
	}
}
