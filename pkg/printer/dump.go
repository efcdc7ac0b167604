package printer

import (
	"fmt"
	"strings"

	"github.com/cwbudde/gdcst/pkg/cst"
)

// Dump renders an indented debug tree of n: one line per composite node
// naming its Go type, and one line per leaf showing its token kind and
// verbatim text. Used by the `gdcst parse --dump-tree` CLI flag, mirroring
// the teacher's own `--dump-ast` option (cmd/dwscript/cmd/parse.go).
func Dump(n cst.Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n cst.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		fmt.Fprintf(sb, "%s<nil>\n", indent)
		return
	}
	if leaf, ok := n.(*cst.Leaf); ok {
		fmt.Fprintf(sb, "%s%s %q\n", indent, leaf.Tok.Kind, leaf.Tok.Text)
		return
	}
	fmt.Fprintf(sb, "%s%T\n", indent, n)
	for _, child := range n.Form() {
		dump(sb, child, depth+1)
	}
}
