// Package syntaxtree implements the concrete parse tree both drivers
// build: terminal, non-terminal, and epsilon nodes, each optionally
// decorated with lazily-created SDT attributes, with an ASCII-art
// String(), a recursive Copy(), and a duck-typed Equal().
package syntaxtree

import (
	"fmt"
	"strings"

	"github.com/dekarrin/pastac/internal/lex"
)

// Kind tags which of the three node variants a Node is.
type Kind int

const (
	TerminalNode Kind = iota
	NonTerminalNode
	EpsilonNode
)

// Attributes holds the SDT attributes a node may carry: a value "place",
// and the label names used for control-flow translation. All are owned
// strings, created lazily (see Node.Attrs).
type Attributes struct {
	Place      string
	TrueLabel  string
	FalseLabel string
	NextLabel  string
	BeginLabel string
}

// Node is one syntax tree node. Terminal nodes own the token they were
// shifted from; non-terminal nodes carry the production ID they were
// reduced under and their children in left-to-right order; Epsilon nodes
// are the single child attached when an epsilon production is reduced.
type Node struct {
	Kind       Kind
	Symbol     string // terminal or non-terminal name
	Token      lex.Token
	Production int // valid when Kind == NonTerminalNode
	Children   []*Node

	attrs *Attributes
}

// Terminal creates a leaf node wrapping a shifted token.
func Terminal(tok lex.Token) *Node {
	return &Node{Kind: TerminalNode, Symbol: string(tok.Kind), Token: tok}
}

// NonTerminal creates an interior node for a reduced production.
func NonTerminal(symbol string, production int) *Node {
	return &Node{Kind: NonTerminalNode, Symbol: symbol, Production: production}
}

// Epsilon creates the placeholder child attached when an epsilon
// production is reduced.
func Epsilon() *Node {
	return &Node{Kind: EpsilonNode, Symbol: "ε"}
}

// AddChild appends c to n's children in left-to-right order.
func (n *Node) AddChild(c *Node) {
	n.Children = append(n.Children, c)
}

// Attrs returns n's SDT attribute record, allocating it on first use.
func (n *Node) Attrs() *Attributes {
	if n.attrs == nil {
		n.attrs = &Attributes{}
	}
	return n.attrs
}

// HasAttrs reports whether Attrs has ever been called on n (i.e. whether
// attributes were ever written), without allocating.
func (n *Node) HasAttrs() bool {
	return n.attrs != nil
}

// Copy returns a deep recursive copy of the subtree rooted at n.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{Kind: n.Kind, Symbol: n.Symbol, Token: n.Token, Production: n.Production}
	if n.attrs != nil {
		a := *n.attrs
		cp.attrs = &a
	}
	for _, c := range n.Children {
		cp.Children = append(cp.Children, c.Copy())
	}
	return cp
}

// Equal reports whether o is a *Node or Node with the same shape (kind,
// symbol, production, token, and children) as n. Attributes are not
// compared; they are incidental annotation, not part of the tree's shape.
func (n *Node) Equal(o any) bool {
	var other *Node
	switch v := o.(type) {
	case *Node:
		other = v
	case Node:
		other = &v
	default:
		return false
	}
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Symbol != other.Symbol || n.Production != other.Production {
		return false
	}
	if n.Kind == TerminalNode && n.Token.Lexeme != other.Token.Lexeme {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// PreorderTerminals returns the lexemes of every terminal leaf in n's
// subtree, in pre-order (left to right) — used to test parse equivalence
// between the LR and recursive-descent drivers.
func (n *Node) PreorderTerminals() []string {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case TerminalNode:
		return []string{n.Token.Lexeme}
	case EpsilonNode:
		return nil
	default:
		var out []string
		for _, c := range n.Children {
			out = append(out, c.PreorderTerminals()...)
		}
		return out
	}
}

const (
	treeLevelPrefix  = "├── "
	treeLevelOngoing = "│   "
	treeLevelLast    = "└── "
	treeLevelEmpty   = "    "
)

// String renders n as an ASCII tree with branch connectors.
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb, "", true, true)
	return strings.TrimRight(sb.String(), "\n")
}

func (n *Node) render(sb *strings.Builder, prefix string, isRoot, isLast bool) {
	if !isRoot {
		if isLast {
			sb.WriteString(prefix + treeLevelLast)
		} else {
			sb.WriteString(prefix + treeLevelPrefix)
		}
	}

	switch n.Kind {
	case TerminalNode:
		sb.WriteString(fmt.Sprintf("%s %q\n", n.Symbol, n.Token.Lexeme))
	case EpsilonNode:
		sb.WriteString("ε\n")
	default:
		sb.WriteString(fmt.Sprintf("%s (production %d)\n", n.Symbol, n.Production))
	}

	childPrefix := prefix
	if !isRoot {
		if isLast {
			childPrefix += treeLevelEmpty
		} else {
			childPrefix += treeLevelOngoing
		}
	}
	for i, c := range n.Children {
		c.render(sb, childPrefix, false, i == len(n.Children)-1)
	}
}
