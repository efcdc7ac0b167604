// Package cst defines the concrete syntax tree produced by internal/parse:
// every node owns an ordered "form" of trivia leaves and child nodes in
// source order (spec.md §3), so serializing a node (pkg/printer) reproduces
// exactly the source slice that produced it.
//
// Sum types are realized as Go interfaces implemented by a closed set of
// concrete structs (Expr, Stmt, TypeNode, Pattern), each with an
// ExprKind()/StmtKind()/TypeKind()/PatternKind() method for exhaustive
// switch dispatch — see DESIGN.md "Sum types over
// inheritance".
package cst

import "github.com/cwbudde/gdcst/pkg/token"

// Node is implemented by every leaf and composite in the tree.
type Node interface {
	// Form returns this node's ordered children (trivia leaves and/or
	// composite nodes) in source order. Leaves return nil.
	Form() []Node
}

// Leaf wraps a single terminal token — trivia, a keyword, a literal, an
// operator, or an invalid token — as a Node with no children of its own.
type Leaf struct {
	Tok token.Token
}

// NewLeaf wraps tok as a Node.
func NewLeaf(tok token.Token) *Leaf { return &Leaf{Tok: tok} }

func (l *Leaf) Form() []Node { return nil }

// Invalid reports whether this leaf is an invalid-token leaf.
func (l *Leaf) Invalid() bool { return l.Tok.Invalid() }

// base is embedded by every composite node type; it stores the node's form
// once assembled by the reader that produced it, and every composite's
// Form() method is simply "return b.form" (the shared-fields-in-a-record
// half of the "sum type" design: common plumbing lives here, variant
// fields live on the concrete struct that embeds base).
type base struct {
	form []Node
}

func (b *base) Form() []Node { return b.form }

// SetForm installs the node's ordered form. Called by the node's
// constructor, and again by readers in internal/parse that splice leading
// or trailing trivia into an already-built node; once parsing returns, the
// node is not modified further (spec.md "Lifecycles").
func (b *base) SetForm(form []Node) { b.form = form }
