package sdt

import (
	"github.com/dekarrin/pastac/internal/grammar"
	"github.com/dekarrin/pastac/internal/syntaxtree"
	"github.com/dekarrin/pastac/internal/tac"
)

// visitIf implements S -> if C then S N (production 6). N is either empty
// (N -> ε) or an else-tail (N -> else S); the two-label and three-label
// jump patterns below are the standard translation for each case.
func (e *Engine) visitIf(n *syntaxtree.Node) error {
	cNode := child(n, 1)
	s1 := child(n, 3)
	nNode := child(n, 4)

	hasElse := nNode.Production == grammar.ProdElseTailElse

	trueLabel := e.Labels.New()
	falseLabel := e.Labels.New()
	if err := e.emitCondJumps(cNode, trueLabel, falseLabel); err != nil {
		return err
	}
	n.Attrs().TrueLabel = trueLabel
	n.Attrs().FalseLabel = falseLabel

	e.Program.Emit(tac.LABEL, trueLabel, "", "", 0)
	if err := e.visit(s1); err != nil {
		return err
	}

	if !hasElse {
		e.Program.Emit(tac.LABEL, falseLabel, "", "", 0)
		return nil
	}

	nextLabel := e.Labels.New()
	n.Attrs().NextLabel = nextLabel
	e.Program.Emit(tac.GOTO, nextLabel, "", "", 0)
	e.Program.Emit(tac.LABEL, falseLabel, "", "", 0)
	if err := e.visit(child(nNode, 1)); err != nil { // N -> else S
		return err
	}
	e.Program.Emit(tac.LABEL, nextLabel, "", "", 0)
	return nil
}

// visitWhile implements S -> while C do S (production 7).
func (e *Engine) visitWhile(n *syntaxtree.Node) error {
	cNode := child(n, 1)
	s1 := child(n, 3)

	beginLabel := e.Labels.New()
	trueLabel := e.Labels.New()
	falseLabel := e.Labels.New()
	n.Attrs().BeginLabel = beginLabel
	n.Attrs().TrueLabel = trueLabel
	n.Attrs().FalseLabel = falseLabel

	e.Program.Emit(tac.LABEL, beginLabel, "", "", 0)
	if err := e.emitCondJumps(cNode, trueLabel, falseLabel); err != nil {
		return err
	}
	e.Program.Emit(tac.LABEL, trueLabel, "", "", 0)
	if err := e.visit(s1); err != nil {
		return err
	}
	e.Program.Emit(tac.GOTO, beginLabel, "", "", 0)
	e.Program.Emit(tac.LABEL, falseLabel, "", "", 0)
	return nil
}

// emitCondJumps translates a condition node against the given jump targets:
// "if E1 rel E2 goto trueLabel; goto falseLabel". C -> ( C ) recurses
// using the same pair of labels — parentheses carry no translation meaning
// of their own.
func (e *Engine) emitCondJumps(cNode *syntaxtree.Node, trueLabel, falseLabel string) error {
	cNode.Attrs().TrueLabel = trueLabel
	cNode.Attrs().FalseLabel = falseLabel

	if cNode.Production == grammar.ProdCondParen {
		return e.emitCondJumps(child(cNode, 1), trueLabel, falseLabel)
	}

	e1 := child(cNode, 0)
	e2 := child(cNode, 2)
	if err := e.visit(e1); err != nil {
		return err
	}
	if err := e.visit(e2); err != nil {
		return err
	}
	p1, err := placeOf(e1)
	if err != nil {
		return err
	}
	p2, err := placeOf(e2)
	if err != nil {
		return err
	}

	relOp, err := relOpFor(cNode.Production)
	if err != nil {
		return err
	}
	line := child(cNode, 1).Token.Line
	e.Program.Emit(relOp, trueLabel, p1, p2, line)
	e.Program.Emit(tac.GOTO, falseLabel, "", "", line)
	return nil
}

func relOpFor(prod int) (tac.Op, error) {
	switch prod {
	case grammar.ProdCondGt:
		return tac.GT, nil
	case grammar.ProdCondLt:
		return tac.LT, nil
	case grammar.ProdCondEq:
		return tac.EQ, nil
	case grammar.ProdCondGe:
		return tac.GE, nil
	case grammar.ProdCondLe:
		return tac.LE, nil
	case grammar.ProdCondNe:
		return tac.NE, nil
	}
	return 0, unsupportedCondProduction(prod)
}

// foldExprTail walks an X node (X -> + R X | - R X | ε), folding each
// operand into base left-to-right and emitting one ADD/SUB instruction per
// operator, exactly as E -> E1 + T would if the grammar were left-recursive.
func (e *Engine) foldExprTail(base string, x *syntaxtree.Node) (string, error) {
	place := base
	for x != nil {
		switch x.Production {
		case grammar.ProdExprTailEps:
			return place, nil
		case grammar.ProdExprTailPlus, grammar.ProdExprTailMinus:
			opToken := child(x, 0)
			rNode := child(x, 1)
			if err := e.visit(rNode); err != nil {
				return "", err
			}
			rPlace, err := placeOf(rNode)
			if err != nil {
				return "", err
			}
			op := tac.ADD
			if x.Production == grammar.ProdExprTailMinus {
				op = tac.SUB
			}
			t := e.Temps.New()
			e.Program.Emit(op, t, place, rPlace, opToken.Token.Line)
			place = t
			x = child(x, 2)
		default:
			return "", unsupportedCondProduction(x.Production)
		}
	}
	return place, nil
}

// foldTermTail is foldExprTail's analog for Y -> * F Y | / F Y | ε.
func (e *Engine) foldTermTail(base string, y *syntaxtree.Node) (string, error) {
	place := base
	for y != nil {
		switch y.Production {
		case grammar.ProdTermTailEps:
			return place, nil
		case grammar.ProdTermTailStar, grammar.ProdTermTailSlash:
			opToken := child(y, 0)
			fNode := child(y, 1)
			if err := e.visit(fNode); err != nil {
				return "", err
			}
			fPlace, err := placeOf(fNode)
			if err != nil {
				return "", err
			}
			op := tac.MUL
			if y.Production == grammar.ProdTermTailSlash {
				op = tac.DIV
			}
			t := e.Temps.New()
			e.Program.Emit(op, t, place, fPlace, opToken.Token.Line)
			place = t
			y = child(y, 2)
		default:
			return "", unsupportedCondProduction(y.Production)
		}
	}
	return place, nil
}
