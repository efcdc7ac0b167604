// Package printer serializes a CST back to source text. Because every node
// owns an ordered form of trivia leaves and child nodes (spec.md §3),
// serialization is a single recursive concatenation — no pretty-printing
// decisions, no reformatting: Serialize(Parse(s)) == s (modulo the \r
// normalization the round-trip contract allows).
//
// This supersedes the teacher's pkg/printer, which is a reformatting
// pretty-printer (DWScript has no round-trip requirement); this package's
// name and placement are kept, its job is not.
package printer

import (
	"strings"

	"github.com/cwbudde/gdcst/pkg/cst"
)

// Serialize reproduces the exact source text a node was parsed from.
func Serialize(n cst.Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func write(sb *strings.Builder, n cst.Node) {
	if n == nil {
		return
	}
	if leaf, ok := n.(*cst.Leaf); ok {
		sb.WriteString(leaf.Tok.Text)
		return
	}
	for _, child := range n.Form() {
		write(sb, child)
	}
}
