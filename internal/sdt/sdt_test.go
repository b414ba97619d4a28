package sdt

import (
	"testing"

	"github.com/dekarrin/pastac/internal/grammar"
	"github.com/dekarrin/pastac/internal/lex"
	"github.com/dekarrin/pastac/internal/syntaxtree"
	"github.com/dekarrin/pastac/internal/tac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(kind lex.Kind, lexeme string) lex.Token {
	return lex.Token{Kind: kind, Lexeme: lexeme, Line: 1, Column: 1}
}

func termNode(kind lex.Kind, lexeme string) *syntaxtree.Node {
	return syntaxtree.Terminal(tok(kind, lexeme))
}

// factorId builds F -> id for the given identifier name.
func factorId(name string) *syntaxtree.Node {
	n := syntaxtree.NonTerminal(grammar.NTFactor, grammar.ProdFactorId)
	n.AddChild(termNode(lex.Ident, name))
	return n
}

// factorInt builds F -> int10 for the given literal.
func factorInt(lit string) *syntaxtree.Node {
	n := syntaxtree.NonTerminal(grammar.NTFactor, grammar.ProdFactorInt10)
	n.AddChild(termNode(lex.Int10, lit))
	return n
}

func tailEps(nt string, prod int) *syntaxtree.Node {
	n := syntaxtree.NonTerminal(nt, prod)
	n.AddChild(syntaxtree.Epsilon())
	return n
}

// exprOf wraps a factor node into a minimal E -> R X -> F Y tree with empty
// tails, i.e. an expression that's just that one factor.
func exprOf(f *syntaxtree.Node) *syntaxtree.Node {
	r := syntaxtree.NonTerminal(grammar.NTTerm, grammar.ProdTerm)
	r.AddChild(f)
	r.AddChild(tailEps(grammar.NTTermTail, grammar.ProdTermTailEps))

	e := syntaxtree.NonTerminal(grammar.NTExpr, grammar.ProdExpr)
	e.AddChild(r)
	e.AddChild(tailEps(grammar.NTExprTail, grammar.ProdExprTailEps))
	return e
}

// assignStmt builds S -> id = E for the given name and expression.
func assignStmt(name string, e *syntaxtree.Node) *syntaxtree.Node {
	s := syntaxtree.NonTerminal(grammar.NTStmt, grammar.ProdStmtAssign)
	s.AddChild(termNode(lex.Ident, name))
	s.AddChild(termNode(lex.OpEq, "="))
	s.AddChild(e)
	return s
}

func Test_Translate_SimpleAssign(t *testing.T) {
	// x = 1 + 2;
	x := syntaxtree.NonTerminal(grammar.NTTerm, grammar.ProdTerm)
	x.AddChild(factorInt("1"))
	plusTail := syntaxtree.NonTerminal(grammar.NTExprTail, grammar.ProdExprTailPlus)
	plusTail.AddChild(termNode(lex.OpPlus, "+"))
	r2 := syntaxtree.NonTerminal(grammar.NTTerm, grammar.ProdTerm)
	r2.AddChild(factorInt("2"))
	r2.AddChild(tailEps(grammar.NTTermTail, grammar.ProdTermTailEps))
	plusTail.AddChild(r2)
	plusTail.AddChild(tailEps(grammar.NTExprTail, grammar.ProdExprTailEps))
	x.AddChild(tailEps(grammar.NTTermTail, grammar.ProdTermTailEps))

	e := syntaxtree.NonTerminal(grammar.NTExpr, grammar.ProdExpr)
	e.AddChild(x)
	e.AddChild(plusTail)

	s := assignStmt("x", e)

	eng := New()
	_, err := eng.Translate(s)
	require.NoError(t, err)

	assert.Equal(t, "t0 := 1 + 2\nx := t0\n", eng.Program.String())
}

func Test_Translate_IfWithoutElse(t *testing.T) {
	// if x > 0 then y = 1;
	cond := syntaxtree.NonTerminal(grammar.NTCond, grammar.ProdCondGt)
	cond.AddChild(exprOf(factorId("x")))
	cond.AddChild(termNode(lex.OpGt, ">"))
	cond.AddChild(exprOf(factorInt("0")))

	s1 := assignStmt("y", exprOf(factorInt("1")))

	ifStmt := syntaxtree.NonTerminal(grammar.NTStmt, grammar.ProdStmtIf)
	ifStmt.AddChild(termNode(lex.KwIf, "if"))
	ifStmt.AddChild(cond)
	ifStmt.AddChild(termNode(lex.KwThen, "then"))
	ifStmt.AddChild(s1)
	ifStmt.AddChild(tailEps(grammar.NTElseTail, grammar.ProdElseTailEps))

	eng := New()
	_, err := eng.Translate(ifStmt)
	require.NoError(t, err)

	want := "if x > 0 goto L0\ngoto L1\nL0:\n    y := 1\nL1:\n"
	assert.Equal(t, want, eng.Program.String())
}

func Test_Translate_While(t *testing.T) {
	// while i < 10 do i = i + 1;
	cond := syntaxtree.NonTerminal(grammar.NTCond, grammar.ProdCondLt)
	cond.AddChild(exprOf(factorId("i")))
	cond.AddChild(termNode(lex.OpLt, "<"))
	cond.AddChild(exprOf(factorInt("10")))

	rTerm := syntaxtree.NonTerminal(grammar.NTTerm, grammar.ProdTerm)
	rTerm.AddChild(factorId("i"))
	rTerm.AddChild(tailEps(grammar.NTTermTail, grammar.ProdTermTailEps))
	plusTail := syntaxtree.NonTerminal(grammar.NTExprTail, grammar.ProdExprTailPlus)
	plusTail.AddChild(termNode(lex.OpPlus, "+"))
	r2 := syntaxtree.NonTerminal(grammar.NTTerm, grammar.ProdTerm)
	r2.AddChild(factorInt("1"))
	r2.AddChild(tailEps(grammar.NTTermTail, grammar.ProdTermTailEps))
	plusTail.AddChild(r2)
	plusTail.AddChild(tailEps(grammar.NTExprTail, grammar.ProdExprTailEps))
	bodyExpr := syntaxtree.NonTerminal(grammar.NTExpr, grammar.ProdExpr)
	bodyExpr.AddChild(rTerm)
	bodyExpr.AddChild(plusTail)

	body := assignStmt("i", bodyExpr)

	whileStmt := syntaxtree.NonTerminal(grammar.NTStmt, grammar.ProdStmtWhile)
	whileStmt.AddChild(termNode(lex.KwWhile, "while"))
	whileStmt.AddChild(cond)
	whileStmt.AddChild(termNode(lex.KwDo, "do"))
	whileStmt.AddChild(body)

	eng := New()
	_, err := eng.Translate(whileStmt)
	require.NoError(t, err)

	want := "L0:\n    if i < 10 goto L1\ngoto L2\nL1:\n    t0 := i + 1\n" +
		"i := t0\ngoto L0\nL2:\n"
	assert.Equal(t, want, eng.Program.String())
}

func Test_Translate_NoOrphanLabels(t *testing.T) {
	cond := syntaxtree.NonTerminal(grammar.NTCond, grammar.ProdCondGt)
	cond.AddChild(exprOf(factorId("x")))
	cond.AddChild(termNode(lex.OpGt, ">"))
	cond.AddChild(exprOf(factorInt("0")))
	s1 := assignStmt("y", exprOf(factorInt("1")))
	ifStmt := syntaxtree.NonTerminal(grammar.NTStmt, grammar.ProdStmtIf)
	ifStmt.AddChild(termNode(lex.KwIf, "if"))
	ifStmt.AddChild(cond)
	ifStmt.AddChild(termNode(lex.KwThen, "then"))
	ifStmt.AddChild(s1)
	ifStmt.AddChild(tailEps(grammar.NTElseTail, grammar.ProdElseTailEps))

	eng := New()
	_, err := eng.Translate(ifStmt)
	require.NoError(t, err)

	defined := eng.Program.Labels()
	jumpOps := map[tac.Op]bool{
		tac.GOTO: true, tac.GT: true, tac.LT: true, tac.EQ: true,
		tac.NE: true, tac.LE: true, tac.GE: true,
	}
	for _, instr := range eng.Program.Instructions {
		if jumpOps[instr.Op] {
			assert.True(t, defined[instr.Result], "jump target %q must be a defined label", instr.Result)
		}
	}
}
