// Package rdparser implements the recursive-descent alternative to the
// LR driver: one parsing procedure per non-terminal, predicting among a
// production's alternatives by one token of lookahead wherever the grammar
// allows it, and falling back to a single tentative-parse-then-backtrack
// attempt where it doesn't (the condition grammar's `(` ambiguity; see
// parseCond). Errors are reported in the same idiom used throughout this
// module (perrors, util.MakeTextList "expected ..." messages).
package rdparser

import (
	"github.com/dekarrin/pastac/internal/grammar"
	"github.com/dekarrin/pastac/internal/lex"
	"github.com/dekarrin/pastac/internal/perrors"
	"github.com/dekarrin/pastac/internal/syntaxtree"
	"github.com/dekarrin/pastac/internal/util"
)

// Parser drives top-down recursive-descent parsing over a token stream.
type Parser struct {
	Grammar *grammar.Grammar

	stream lex.TokenStream
	la     lex.Token
	trace  []int
}

// New returns a Parser for g. The grammar is stored but not consulted: the
// recursive-descent procedures encode the grammar directly, and each error
// lists its expected token kinds explicitly.
func New(g *grammar.Grammar) *Parser {
	return &Parser{Grammar: g}
}

// Parse consumes stream and returns the completed syntax tree along with
// the production IDs in the same post-order, left-to-right trace the LR
// driver records (each production appended once its subtree is fully
// parsed, not when prediction first commits to it), so the two drivers'
// traces are directly comparable for equivalent parses.
func (p *Parser) Parse(stream lex.TokenStream) (*syntaxtree.Node, []int, error) {
	p.stream = stream
	p.trace = nil
	p.la = stream.Next()

	node, err := p.parseProgram()
	if err != nil {
		return nil, nil, err
	}
	if p.la.Kind != lex.EndMarker {
		return nil, nil, p.errorf([]lex.Kind{lex.EndMarker})
	}
	return node, p.trace, nil
}

func (p *Parser) advance() lex.Token {
	tok := p.la
	p.la = p.stream.Next()
	return tok
}

func (p *Parser) match(kind lex.Kind) (lex.Token, error) {
	if p.la.Kind != kind {
		return lex.Token{}, p.errorf([]lex.Kind{kind})
	}
	return p.advance(), nil
}

func (p *Parser) record(prod int) {
	p.trace = append(p.trace, prod)
}

func (p *Parser) errorf(expectedKinds []lex.Kind) error {
	var expected []string
	for _, k := range expectedKinds {
		expected = append(expected, k.Human())
	}
	msg := "unexpected " + p.la.Kind.Human()
	if len(expected) > 0 {
		msg += "; expected " + util.MakeTextList(expected)
	}
	return perrors.NewSyntax(msg, p.la.Line, p.la.Column, expected)
}

// parseProgram: P -> L T
func (p *Parser) parseProgram() (*syntaxtree.Node, error) {
	l, err := p.parseLine()
	if err != nil {
		return nil, err
	}
	t, err := p.parseTail()
	if err != nil {
		return nil, err
	}
	p.record(grammar.ProdProgram)
	n := syntaxtree.NonTerminal(grammar.NTProgram, grammar.ProdProgram)
	n.AddChild(l)
	n.AddChild(t)
	return n, nil
}

// parseTail: T -> P T | ε. A statement-starting token predicts the
// recursive alternative; anything else (end, $) predicts ε.
func (p *Parser) parseTail() (*syntaxtree.Node, error) {
	if p.startsStmt() {
		prog, err := p.parseProgram()
		if err != nil {
			return nil, err
		}
		tail, err := p.parseTail()
		if err != nil {
			return nil, err
		}
		p.record(grammar.ProdTailRec)
		n := syntaxtree.NonTerminal(grammar.NTTail, grammar.ProdTailRec)
		n.AddChild(prog)
		n.AddChild(tail)
		return n, nil
	}
	p.record(grammar.ProdTailEps)
	n := syntaxtree.NonTerminal(grammar.NTTail, grammar.ProdTailEps)
	n.AddChild(syntaxtree.Epsilon())
	return n, nil
}

func (p *Parser) startsStmt() bool {
	switch p.la.Kind {
	case lex.Ident, lex.KwIf, lex.KwWhile, lex.KwBegin:
		return true
	}
	return false
}

// parseLine: L -> S ;
func (p *Parser) parseLine() (*syntaxtree.Node, error) {
	s, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	semi, err := p.match(lex.OpSemi)
	if err != nil {
		return nil, err
	}
	p.record(grammar.ProdLine)
	n := syntaxtree.NonTerminal(grammar.NTLine, grammar.ProdLine)
	n.AddChild(s)
	n.AddChild(syntaxtree.Terminal(semi))
	return n, nil
}

// parseStmt: S -> id=E | if C then S N | while C do S | begin L end
func (p *Parser) parseStmt() (*syntaxtree.Node, error) {
	switch p.la.Kind {
	case lex.Ident:
		id := p.advance()
		eq, err := p.match(lex.OpEq)
		if err != nil {
			return nil, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.record(grammar.ProdStmtAssign)
		n := syntaxtree.NonTerminal(grammar.NTStmt, grammar.ProdStmtAssign)
		n.AddChild(syntaxtree.Terminal(id))
		n.AddChild(syntaxtree.Terminal(eq))
		n.AddChild(e)
		return n, nil

	case lex.KwIf:
		kwIf := p.advance()
		c, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		kwThen, err := p.match(lex.KwThen)
		if err != nil {
			return nil, err
		}
		s1, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		nTail, err := p.parseElseTail()
		if err != nil {
			return nil, err
		}
		p.record(grammar.ProdStmtIf)
		n := syntaxtree.NonTerminal(grammar.NTStmt, grammar.ProdStmtIf)
		n.AddChild(syntaxtree.Terminal(kwIf))
		n.AddChild(c)
		n.AddChild(syntaxtree.Terminal(kwThen))
		n.AddChild(s1)
		n.AddChild(nTail)
		return n, nil

	case lex.KwWhile:
		kwWhile := p.advance()
		c, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		kwDo, err := p.match(lex.KwDo)
		if err != nil {
			return nil, err
		}
		s1, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		p.record(grammar.ProdStmtWhile)
		n := syntaxtree.NonTerminal(grammar.NTStmt, grammar.ProdStmtWhile)
		n.AddChild(syntaxtree.Terminal(kwWhile))
		n.AddChild(c)
		n.AddChild(syntaxtree.Terminal(kwDo))
		n.AddChild(s1)
		return n, nil

	case lex.KwBegin:
		kwBegin := p.advance()
		l, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		kwEnd, err := p.match(lex.KwEnd)
		if err != nil {
			return nil, err
		}
		p.record(grammar.ProdStmtBlock)
		n := syntaxtree.NonTerminal(grammar.NTStmt, grammar.ProdStmtBlock)
		n.AddChild(syntaxtree.Terminal(kwBegin))
		n.AddChild(l)
		n.AddChild(syntaxtree.Terminal(kwEnd))
		return n, nil
	}

	return nil, p.errorf([]lex.Kind{lex.Ident, lex.KwIf, lex.KwWhile, lex.KwBegin})
}

// parseElseTail: N -> else S | ε
func (p *Parser) parseElseTail() (*syntaxtree.Node, error) {
	if p.la.Kind == lex.KwElse {
		kwElse := p.advance()
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		p.record(grammar.ProdElseTailElse)
		n := syntaxtree.NonTerminal(grammar.NTElseTail, grammar.ProdElseTailElse)
		n.AddChild(syntaxtree.Terminal(kwElse))
		n.AddChild(s)
		return n, nil
	}
	p.record(grammar.ProdElseTailEps)
	n := syntaxtree.NonTerminal(grammar.NTElseTail, grammar.ProdElseTailEps)
	n.AddChild(syntaxtree.Epsilon())
	return n, nil
}

var relKinds = map[lex.Kind]int{
	lex.OpGt: grammar.ProdCondGt, lex.OpLt: grammar.ProdCondLt, lex.OpEq: grammar.ProdCondEq,
	lex.OpGe: grammar.ProdCondGe, lex.OpLe: grammar.ProdCondLe, lex.OpNe: grammar.ProdCondNe,
}

// parseCond: C -> E rel E | ( C ). A leading "(" doesn't determine which
// alternative applies on its own ("(" also starts a parenthesized factor
// inside the first E of "E rel E"), so on "(" we tentatively try the
// parenthesized-condition reading first and backtrack to the relational
// reading if it doesn't pan out (an inner E can never itself contain a
// relational operator, so the two readings can't both succeed).
func (p *Parser) parseCond() (*syntaxtree.Node, error) {
	if p.la.Kind == lex.OpLParen {
		mark := p.stream.Mark()
		savedLa := p.la
		savedTraceLen := len(p.trace)

		if n, ok := p.tryParenCond(); ok {
			return n, nil
		}

		p.stream.Reset(mark)
		p.la = savedLa
		p.trace = p.trace[:savedTraceLen]
	}
	return p.parseRelCond()
}

// tryParenCond attempts C -> ( C ); ok is false (with the stream left in an
// indeterminate position the caller must reset) if it couldn't be parsed
// that way.
func (p *Parser) tryParenCond() (node *syntaxtree.Node, ok bool) {
	lp, err := p.match(lex.OpLParen)
	if err != nil {
		return nil, false
	}
	inner, err := p.parseCond()
	if err != nil {
		return nil, false
	}
	rp, err := p.match(lex.OpRParen)
	if err != nil {
		return nil, false
	}
	p.record(grammar.ProdCondParen)
	n := syntaxtree.NonTerminal(grammar.NTCond, grammar.ProdCondParen)
	n.AddChild(syntaxtree.Terminal(lp))
	n.AddChild(inner)
	n.AddChild(syntaxtree.Terminal(rp))
	return n, true
}

// parseRelCond: C -> E rel E
func (p *Parser) parseRelCond() (*syntaxtree.Node, error) {
	e1, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	prod, ok := relKinds[p.la.Kind]
	if !ok {
		return nil, p.errorf([]lex.Kind{lex.OpGt, lex.OpLt, lex.OpEq, lex.OpGe, lex.OpLe, lex.OpNe})
	}
	relTok := p.advance()
	e2, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.record(prod)
	n := syntaxtree.NonTerminal(grammar.NTCond, prod)
	n.AddChild(e1)
	n.AddChild(syntaxtree.Terminal(relTok))
	n.AddChild(e2)
	return n, nil
}

// parseExpr: E -> R X
func (p *Parser) parseExpr() (*syntaxtree.Node, error) {
	r, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	x, err := p.parseExprTail()
	if err != nil {
		return nil, err
	}
	p.record(grammar.ProdExpr)
	n := syntaxtree.NonTerminal(grammar.NTExpr, grammar.ProdExpr)
	n.AddChild(r)
	n.AddChild(x)
	return n, nil
}

// parseExprTail: X -> + R X | - R X | ε
func (p *Parser) parseExprTail() (*syntaxtree.Node, error) {
	var prod int
	switch p.la.Kind {
	case lex.OpPlus:
		prod = grammar.ProdExprTailPlus
	case lex.OpMinus:
		prod = grammar.ProdExprTailMinus
	default:
		p.record(grammar.ProdExprTailEps)
		n := syntaxtree.NonTerminal(grammar.NTExprTail, grammar.ProdExprTailEps)
		n.AddChild(syntaxtree.Epsilon())
		return n, nil
	}
	opTok := p.advance()
	r, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	x, err := p.parseExprTail()
	if err != nil {
		return nil, err
	}
	p.record(prod)
	n := syntaxtree.NonTerminal(grammar.NTExprTail, prod)
	n.AddChild(syntaxtree.Terminal(opTok))
	n.AddChild(r)
	n.AddChild(x)
	return n, nil
}

// parseTerm: R -> F Y
func (p *Parser) parseTerm() (*syntaxtree.Node, error) {
	f, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	y, err := p.parseTermTail()
	if err != nil {
		return nil, err
	}
	p.record(grammar.ProdTerm)
	n := syntaxtree.NonTerminal(grammar.NTTerm, grammar.ProdTerm)
	n.AddChild(f)
	n.AddChild(y)
	return n, nil
}

// parseTermTail: Y -> * F Y | / F Y | ε
func (p *Parser) parseTermTail() (*syntaxtree.Node, error) {
	var prod int
	switch p.la.Kind {
	case lex.OpStar:
		prod = grammar.ProdTermTailStar
	case lex.OpSlash:
		prod = grammar.ProdTermTailSlash
	default:
		p.record(grammar.ProdTermTailEps)
		n := syntaxtree.NonTerminal(grammar.NTTermTail, grammar.ProdTermTailEps)
		n.AddChild(syntaxtree.Epsilon())
		return n, nil
	}
	opTok := p.advance()
	f, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	y, err := p.parseTermTail()
	if err != nil {
		return nil, err
	}
	p.record(prod)
	n := syntaxtree.NonTerminal(grammar.NTTermTail, prod)
	n.AddChild(syntaxtree.Terminal(opTok))
	n.AddChild(f)
	n.AddChild(y)
	return n, nil
}

// parseFactor: F -> ( E ) | id | int8 | int10 | int16
func (p *Parser) parseFactor() (*syntaxtree.Node, error) {
	switch p.la.Kind {
	case lex.OpLParen:
		lp := p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		rp, err := p.match(lex.OpRParen)
		if err != nil {
			return nil, err
		}
		p.record(grammar.ProdFactorParen)
		n := syntaxtree.NonTerminal(grammar.NTFactor, grammar.ProdFactorParen)
		n.AddChild(syntaxtree.Terminal(lp))
		n.AddChild(e)
		n.AddChild(syntaxtree.Terminal(rp))
		return n, nil
	case lex.Ident:
		tok := p.advance()
		p.record(grammar.ProdFactorId)
		n := syntaxtree.NonTerminal(grammar.NTFactor, grammar.ProdFactorId)
		n.AddChild(syntaxtree.Terminal(tok))
		return n, nil
	case lex.Int8:
		tok := p.advance()
		p.record(grammar.ProdFactorInt8)
		n := syntaxtree.NonTerminal(grammar.NTFactor, grammar.ProdFactorInt8)
		n.AddChild(syntaxtree.Terminal(tok))
		return n, nil
	case lex.Int10:
		tok := p.advance()
		p.record(grammar.ProdFactorInt10)
		n := syntaxtree.NonTerminal(grammar.NTFactor, grammar.ProdFactorInt10)
		n.AddChild(syntaxtree.Terminal(tok))
		return n, nil
	case lex.Int16:
		tok := p.advance()
		p.record(grammar.ProdFactorInt16)
		n := syntaxtree.NonTerminal(grammar.NTFactor, grammar.ProdFactorInt16)
		n.AddChild(syntaxtree.Terminal(tok))
		return n, nil
	}
	return nil, p.errorf([]lex.Kind{lex.OpLParen, lex.Ident, lex.Int8, lex.Int10, lex.Int16})
}
