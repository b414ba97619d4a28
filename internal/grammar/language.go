package grammar

import (
	"strconv"

	"github.com/dekarrin/pastac/internal/lex"
)

// Canonical non-terminal names for the teaching language grammar. Exported
// so the LR driver, recursive-descent driver, and SDT engine can all
// reference the same symbol names instead of redefining string literals
// independently.
const (
	NTProgram   = "P" // P  -> L T
	NTTail      = "T" // T  -> P T | ε
	NTLine      = "L" // L  -> S ;
	NTStmt      = "S" // S  -> id=E | if C then S N | while C do S | begin L end
	NTElseTail  = "N" // N  -> else S | ε
	NTCond      = "C" // C  -> E rel E | ( C )
	NTExpr      = "E" // E  -> R X
	NTExprTail  = "X" // X  -> + R X | - R X | ε
	NTTerm      = "R" // R  -> F Y
	NTTermTail  = "Y" // Y  -> * F Y | / F Y | ε
	NTFactor    = "F" // F  -> ( E ) | id | int8 | int10 | int16
)

// Production IDs for the canonical grammar, in the single numbering shared
// by every driver and by the SDT engine.
const (
	ProdAugmentedStart = 0 // P' -> P

	ProdProgram = 1 // P -> L T
	ProdTailRec = 2 // T -> P T
	ProdTailEps = 3 // T -> ε

	ProdLine = 4 // L -> S ;

	ProdStmtAssign = 5  // S -> id = E
	ProdStmtIf     = 6  // S -> if C then S N
	ProdStmtWhile  = 7  // S -> while C do S
	ProdStmtBlock  = 8  // S -> begin L end

	ProdElseTailElse = 9  // N -> else S
	ProdElseTailEps  = 10 // N -> ε

	ProdCondGt    = 11 // C -> E > E
	ProdCondLt    = 12 // C -> E < E
	ProdCondEq    = 13 // C -> E = E
	ProdCondGe    = 14 // C -> E >= E
	ProdCondLe    = 15 // C -> E <= E
	ProdCondNe    = 16 // C -> E <> E
	ProdCondParen = 17 // C -> ( C )

	ProdExpr = 18 // E -> R X

	ProdExprTailPlus  = 19 // X -> + R X
	ProdExprTailMinus = 20 // X -> - R X
	ProdExprTailEps   = 21 // X -> ε

	ProdTerm = 22 // R -> F Y

	ProdTermTailStar  = 23 // Y -> * F Y
	ProdTermTailSlash = 24 // Y -> / F Y
	ProdTermTailEps   = 25 // Y -> ε

	ProdFactorParen = 26 // F -> ( E )
	ProdFactorId    = 27 // F -> id
	ProdFactorInt8  = 28 // F -> int8
	ProdFactorInt10 = 29 // F -> int10
	ProdFactorInt16 = 30 // F -> int16
)

// Language builds the canonical grammar for the teaching language, with
// FIRST/FOLLOW already computed. This is the single
// source of truth for production numbering: the LR table builder, the
// recursive-descent driver, and the SDT engine all operate against the
// *Grammar this function returns (or an equivalent one built the same way),
// so there is exactly one numbering, never two that could drift.
func Language() *Grammar {
	g := New(NTProgram)

	for _, nt := range []string{NTTail, NTLine, NTStmt, NTElseTail, NTCond, NTExpr, NTExprTail, NTTerm, NTTermTail, NTFactor} {
		g.AddNonTerminal(nt)
	}

	for _, term := range []lex.Kind{
		lex.KwIf, lex.KwThen, lex.KwElse, lex.KwWhile, lex.KwDo, lex.KwBegin, lex.KwEnd,
		lex.OpPlus, lex.OpMinus, lex.OpStar, lex.OpSlash,
		lex.OpEq, lex.OpNe, lex.OpLt, lex.OpLe, lex.OpGt, lex.OpGe,
		lex.OpLParen, lex.OpRParen, lex.OpSemi,
		lex.Ident, lex.Int8, lex.Int10, lex.Int16,
	} {
		g.AddTerminal(string(term))
	}

	must := func(want int, got int) {
		if want != got {
			panic("canonical production numbering drifted: expected " + strconv.Itoa(want) + ", got " + strconv.Itoa(got))
		}
	}

	must(ProdProgram, g.AddProduction(NTProgram, NTLine, NTTail))
	must(ProdTailRec, g.AddProduction(NTTail, NTProgram, NTTail))
	must(ProdTailEps, g.AddProduction(NTTail))

	must(ProdLine, g.AddProduction(NTLine, NTStmt, string(lex.OpSemi)))

	must(ProdStmtAssign, g.AddProduction(NTStmt, string(lex.Ident), string(lex.OpEq), NTExpr))
	must(ProdStmtIf, g.AddProduction(NTStmt, string(lex.KwIf), NTCond, string(lex.KwThen), NTStmt, NTElseTail))
	must(ProdStmtWhile, g.AddProduction(NTStmt, string(lex.KwWhile), NTCond, string(lex.KwDo), NTStmt))
	must(ProdStmtBlock, g.AddProduction(NTStmt, string(lex.KwBegin), NTLine, string(lex.KwEnd)))

	must(ProdElseTailElse, g.AddProduction(NTElseTail, string(lex.KwElse), NTStmt))
	must(ProdElseTailEps, g.AddProduction(NTElseTail))

	must(ProdCondGt, g.AddProduction(NTCond, NTExpr, string(lex.OpGt), NTExpr))
	must(ProdCondLt, g.AddProduction(NTCond, NTExpr, string(lex.OpLt), NTExpr))
	must(ProdCondEq, g.AddProduction(NTCond, NTExpr, string(lex.OpEq), NTExpr))
	must(ProdCondGe, g.AddProduction(NTCond, NTExpr, string(lex.OpGe), NTExpr))
	must(ProdCondLe, g.AddProduction(NTCond, NTExpr, string(lex.OpLe), NTExpr))
	must(ProdCondNe, g.AddProduction(NTCond, NTExpr, string(lex.OpNe), NTExpr))
	must(ProdCondParen, g.AddProduction(NTCond, string(lex.OpLParen), NTCond, string(lex.OpRParen)))

	must(ProdExpr, g.AddProduction(NTExpr, NTTerm, NTExprTail))

	must(ProdExprTailPlus, g.AddProduction(NTExprTail, string(lex.OpPlus), NTTerm, NTExprTail))
	must(ProdExprTailMinus, g.AddProduction(NTExprTail, string(lex.OpMinus), NTTerm, NTExprTail))
	must(ProdExprTailEps, g.AddProduction(NTExprTail))

	must(ProdTerm, g.AddProduction(NTTerm, NTFactor, NTTermTail))

	must(ProdTermTailStar, g.AddProduction(NTTermTail, string(lex.OpStar), NTFactor, NTTermTail))
	must(ProdTermTailSlash, g.AddProduction(NTTermTail, string(lex.OpSlash), NTFactor, NTTermTail))
	must(ProdTermTailEps, g.AddProduction(NTTermTail))

	must(ProdFactorParen, g.AddProduction(NTFactor, string(lex.OpLParen), NTExpr, string(lex.OpRParen)))
	must(ProdFactorId, g.AddProduction(NTFactor, string(lex.Ident)))
	must(ProdFactorInt8, g.AddProduction(NTFactor, string(lex.Int8)))
	must(ProdFactorInt10, g.AddProduction(NTFactor, string(lex.Int10)))
	must(ProdFactorInt16, g.AddProduction(NTFactor, string(lex.Int16)))

	g.ComputeSets()
	return g
}
