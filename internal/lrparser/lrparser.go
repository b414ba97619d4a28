// Package lrparser implements the shift-reduce driver: Algorithm 4.44 from
// the dragon book, run against a *parsetable.Table built for any of the
// LR(0)/SLR(1)/LR(1) variants. The driver keeps three parallel stacks —
// parser states, buffered tokens, and completed subtree roots — indexed
// against the int-keyed parsetable.Table and syntaxtree.Node.
package lrparser

import (
	"github.com/dekarrin/pastac/internal/grammar"
	"github.com/dekarrin/pastac/internal/lex"
	"github.com/dekarrin/pastac/internal/parsetable"
	"github.com/dekarrin/pastac/internal/perrors"
	"github.com/dekarrin/pastac/internal/syntaxtree"
	"github.com/dekarrin/pastac/internal/util"
)

// synchronizing tokens panic-mode recovery skips forward to: a statement
// boundary or the end of input, the two places this grammar can plausibly
// resume parsing a fresh statement.
var syncKinds = map[lex.Kind]bool{
	lex.OpSemi:    true,
	lex.KwEnd:     true,
	lex.EndMarker: true,
}

// Parser drives shift/reduce parsing against a fixed grammar and table.
type Parser struct {
	Grammar *grammar.Grammar
	Table   *parsetable.Table
}

// New returns a Parser for g using table.
func New(g *grammar.Grammar, table *parsetable.Table) *Parser {
	return &Parser{Grammar: g, Table: table}
}

// Parse consumes stream and returns the completed syntax tree along with the
// production IDs in reduction order: post-order, left to right, the order
// in which each production's subtree is fully recognized. The
// recursive-descent driver in package rdparser records its trace the same
// way, so the two are directly comparable for equivalent parses of the same
// input — no reversal needed, since "post-order over the same tree" is a
// property of the tree, not of which direction it was built.
//
// On a syntax error, Parse makes a single panic-mode recovery attempt
// (skip forward to a synchronizing token, pop state until a state accepts
// it) so a second independent error can be reported, but the overall parse
// still fails: no partial tree is ever returned alongside a non-nil error.
func (p *Parser) Parse(stream lex.TokenStream) (*syntaxtree.Node, []int, error) {
	stateStack := util.Stack[int]{}
	stateStack.Push(p.Table.Initial())

	tokenBuffer := util.Stack[lex.Token]{}
	subtreeRoots := util.Stack[*syntaxtree.Node]{}

	var trace []int
	var firstErr error
	recoveredOnce := false

	a := stream.Next()

	for {
		s := stateStack.Peek()
		act := p.Table.Action(s, string(a.Kind))

		switch act.Type {
		case parsetable.Shift:
			tokenBuffer.Push(a)
			stateStack.Push(act.State)
			a = stream.Next()

		case parsetable.Reduce:
			prod := p.Grammar.Production(act.Production)
			node := syntaxtree.NonTerminal(prod.LHS, prod.ID)

			if prod.Len() == 0 {
				node.AddChild(syntaxtree.Epsilon())
			} else {
				children := make([]*syntaxtree.Node, prod.Len())
				for i := prod.Len() - 1; i >= 0; i-- {
					sym := prod.RHS[i]
					if p.Grammar.IsTerminal(sym) {
						children[i] = syntaxtree.Terminal(tokenBuffer.Pop())
					} else {
						children[i] = subtreeRoots.Pop()
					}
					stateStack.Pop()
				}
				for _, c := range children {
					node.AddChild(c)
				}
			}
			subtreeRoots.Push(node)
			trace = append(trace, prod.ID)

			t := stateStack.Peek()
			toPush := p.Table.Goto(t, prod.LHS)
			if toPush < 0 {
				return nil, nil, perrors.NewConstruction("no GOTO entry for state %d on %q", t, prod.LHS)
			}
			stateStack.Push(toPush)

		case parsetable.Accept:
			if firstErr != nil {
				return nil, nil, firstErr
			}
			return subtreeRoots.Pop(), trace, nil

		default: // Error
			err := p.syntaxError(s, a)
			if firstErr == nil {
				firstErr = err
			}
			if recoveredOnce || a.Kind == lex.EndMarker {
				return nil, nil, firstErr
			}
			recoveredOnce = true
			a = p.recover(&stateStack, stream, a)
		}
	}
}

// recover implements the single panic-mode attempt: discard input up to and
// including the next synchronizing token, then pop parser states until one
// remains that has some non-error action for the token immediately
// following it (or only the initial state is left).
func (p *Parser) recover(stateStack *util.Stack[int], stream lex.TokenStream, a lex.Token) lex.Token {
	for !syncKinds[a.Kind] {
		a = stream.Next()
	}
	if a.Kind != lex.EndMarker {
		a = stream.Next() // consume the synchronizing token itself
	}

	for stateStack.Len() > 1 {
		s := stateStack.Peek()
		if p.Table.Action(s, string(a.Kind)).Type != parsetable.Error {
			break
		}
		stateStack.Pop()
	}
	return a
}

func (p *Parser) syntaxError(state int, got lex.Token) error {
	var expected []string
	for _, term := range p.Grammar.Terminals() {
		if p.Table.Action(state, term).Type != parsetable.Error {
			expected = append(expected, lex.Kind(term).Human())
		}
	}
	msg := "unexpected " + got.Kind.Human()
	if len(expected) > 0 {
		msg += "; expected " + util.MakeTextList(expected)
	}
	return perrors.NewSyntax(msg, got.Line, got.Column, expected)
}
