// Package visitor implements generic traversal over the CST. Because every
// node exposes its ordered Form() (spec.md §3), a single depth-first walk
// works uniformly across every node kind — no per-kind visitor methods are
// needed, unlike the teacher's generated AST walk functions (see
// DESIGN.md's note on cmd/gen-visitor).
package visitor

import (
	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/token"
)

// Walk calls fn for n and then, depth-first and in source order, for every
// node in its form (recursively). Passing a nil Node is a no-op.
func Walk(n cst.Node, fn func(cst.Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Form() {
		Walk(child, fn)
	}
}

// InvalidTokens returns every invalid-token leaf under n, in source order
// — the tree's `all_invalid_tokens` surface (spec.md §6).
func InvalidTokens(n cst.Node) []token.Token {
	var out []token.Token
	Walk(n, func(node cst.Node) {
		if leaf, ok := node.(*cst.Leaf); ok && leaf.Invalid() {
			out = append(out, leaf.Tok)
		}
	})
	return out
}

// Leaves returns every terminal leaf under n, in source order, including
// invalid tokens — the full coverage set that P2 (leaf coverage) checks.
func Leaves(n cst.Node) []token.Token {
	var out []token.Token
	Walk(n, func(node cst.Node) {
		if leaf, ok := node.(*cst.Leaf); ok {
			out = append(out, leaf.Tok)
		}
	})
	return out
}

// Find returns the first node (in depth-first source order) for which pred
// returns true, or nil.
func Find(n cst.Node, pred func(cst.Node) bool) cst.Node {
	var found cst.Node
	Walk(n, func(node cst.Node) {
		if found == nil && pred(node) {
			found = node
		}
	})
	return found
}
