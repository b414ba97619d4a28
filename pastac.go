// Package pastac is the compiler frontend for the teaching language: it
// tokenizes, parses (via an LR(0)/SLR(1)/LR(1) table or a recursive-descent
// driver, caller's choice), and translates a program into three-address
// code. A single facade type is constructed once via New and then driven
// per input via Compile, bundling together the grammar and parse table so
// neither is rebuilt per call.
package pastac

import (
	"github.com/dekarrin/pastac/internal/automaton"
	"github.com/dekarrin/pastac/internal/grammar"
	"github.com/dekarrin/pastac/internal/lex"
	"github.com/dekarrin/pastac/internal/lrparser"
	"github.com/dekarrin/pastac/internal/parsetable"
	"github.com/dekarrin/pastac/internal/rdparser"
	"github.com/dekarrin/pastac/internal/sdt"
	"github.com/dekarrin/pastac/internal/syntaxtree"
	"github.com/dekarrin/pastac/internal/tac"
)

// Frontend bundles the grammar and (for LR variants) the parse table built
// from Config at construction time, ready to Compile any number of inputs.
type Frontend struct {
	Config  Config
	Grammar *grammar.Grammar
	Table   *parsetable.Table // nil when Config.Variant == RecursiveDescent
}

// New builds a Frontend for cfg. LR table construction (when applicable)
// happens once here, not per Compile call.
func New(cfg Config) *Frontend {
	g := grammar.Language()
	f := &Frontend{Config: cfg, Grammar: g}
	if cfg.Variant != RecursiveDescent {
		f.Table = parsetable.Build(g, automatonVariant(cfg.Variant), cfg.Policy)
	}
	return f
}

func automatonVariant(v ParserVariant) automaton.Variant {
	switch v {
	case LR0:
		return automaton.LR0
	case LR1:
		return automaton.LR1
	default:
		return automaton.SLR1
	}
}

// Result is everything Compile produces for one input.
type Result struct {
	Tree    *syntaxtree.Node
	Trace   []int // production IDs in the order each was fully recognized
	Program *tac.Program
}

// Compile tokenizes, parses, and translates src, in that order. A lexical
// or syntax error stops the pipeline before any TAC is generated; a
// semantic error during translation means the tree was fine but some
// node's attributes couldn't be completed.
func (f *Frontend) Compile(src string) (*Result, error) {
	stream, err := lex.Lex(src)
	if err != nil {
		return nil, err
	}

	var tree *syntaxtree.Node
	var trace []int
	if f.Config.Variant == RecursiveDescent {
		tree, trace, err = rdparser.New(f.Grammar).Parse(stream)
	} else {
		tree, trace, err = lrparser.New(f.Grammar, f.Table).Parse(stream)
	}
	if err != nil {
		return nil, err
	}

	engine := sdt.New()
	program, err := engine.Translate(tree)
	if err != nil {
		return nil, err
	}

	return &Result{Tree: tree, Trace: trace, Program: program}, nil
}

// Parse runs only the tokenize+parse stages, without translation — used by
// pasparse, which reports the syntax tree and production trace but never
// emits TAC.
func (f *Frontend) Parse(src string) (*syntaxtree.Node, []int, error) {
	stream, err := lex.Lex(src)
	if err != nil {
		return nil, nil, err
	}
	if f.Config.Variant == RecursiveDescent {
		return rdparser.New(f.Grammar).Parse(stream)
	}
	return lrparser.New(f.Grammar, f.Table).Parse(stream)
}
