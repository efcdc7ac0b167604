package gdparse_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/gdparse"
	"github.com/cwbudde/gdcst/pkg/settings"
	"github.com/cwbudde/gdcst/pkg/token"
)

// S1: var x = 1\n — one variable x with initializer number 1; zero
// invalid tokens; round-trip exact.
func TestScenarioS1SimpleVarDecl(t *testing.T) {
	src := "var x = 1\n"
	tree, err := gdparse.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got := tree.Serialize(); got != src {
		t.Fatalf("round-trip: got %q, want %q", got, src)
	}
	if toks := tree.InvalidTokens(); len(toks) != 0 {
		t.Fatalf("InvalidTokens = %v, want none", toks)
	}

	file := tree.Root.(*cst.FileNode)
	if len(file.Members) != 1 {
		t.Fatalf("len(Members) = %d, want 1", len(file.Members))
	}
	decl, ok := file.Members[0].(*cst.VarDeclStmt)
	if !ok {
		t.Fatalf("Members[0] = %T, want *cst.VarDeclStmt", file.Members[0])
	}
	if decl.Name.Text != "x" {
		t.Fatalf("Name = %q, want x", decl.Name.Text)
	}
	if !decl.HasValue {
		t.Fatalf("HasValue = false, want true")
	}
	lit, ok := decl.Value.(*cst.LiteralExpr)
	if !ok {
		t.Fatalf("Value = %T, want *cst.LiteralExpr", decl.Value)
	}
	if lit.Tok.Text != "1" {
		t.Fatalf("Value text = %q, want 1", lit.Tok.Text)
	}
}

// S2: for x in [5,7,11]:\n    print(x)\n — for-statement with loop var x,
// array collection of three numbers, one expression statement in body.
func TestScenarioS2ForLoop(t *testing.T) {
	src := "for x in [5,7,11]:\n    print(x)\n"
	tree, err := gdparse.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got := tree.Serialize(); got != src {
		t.Fatalf("round-trip: got %q, want %q", got, src)
	}

	file := tree.Root.(*cst.FileNode)
	if len(file.Members) != 1 {
		t.Fatalf("len(Members) = %d, want 1", len(file.Members))
	}
	forStmt, ok := file.Members[0].(*cst.ForStmt)
	if !ok {
		t.Fatalf("Members[0] = %T, want *cst.ForStmt", file.Members[0])
	}
	if forStmt.Name.Text != "x" {
		t.Fatalf("loop var = %q, want x", forStmt.Name.Text)
	}
	arr, ok := forStmt.Collection.(*cst.ArrayExpr)
	if !ok {
		t.Fatalf("Collection = %T, want *cst.ArrayExpr", forStmt.Collection)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("len(Elements) = %d, want 3", len(arr.Elements))
	}
	if forStmt.Body == nil || len(forStmt.Body.Stmts) != 1 {
		t.Fatalf("body = %v, want one statement", forStmt.Body)
	}
	if _, ok := forStmt.Body.Stmts[0].(*cst.ExprStmt); !ok {
		t.Fatalf("body stmt = %T, want *cst.ExprStmt", forStmt.Body.Stmts[0])
	}
}

// S3: var d = {"a"=1, "b":2}\n — dictionary with two entries; first uses
// `=` separator, second uses `:`; both preserved.
func TestScenarioS3DictMixedSeparators(t *testing.T) {
	src := `var d = {"a"=1, "b":2}` + "\n"
	tree, err := gdparse.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got := tree.Serialize(); got != src {
		t.Fatalf("round-trip: got %q, want %q", got, src)
	}

	file := tree.Root.(*cst.FileNode)
	decl := file.Members[0].(*cst.VarDeclStmt)
	dict, ok := decl.Value.(*cst.DictExpr)
	if !ok {
		t.Fatalf("Value = %T, want *cst.DictExpr", decl.Value)
	}
	if len(dict.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(dict.Entries))
	}
	if dict.Entries[0].Sep.Kind != token.Eq {
		t.Fatalf("Entries[0].Sep = %s, want Eq", dict.Entries[0].Sep.Kind)
	}
	if dict.Entries[1].Sep.Kind != token.Colon {
		t.Fatalf("Entries[1].Sep = %s, want Colon", dict.Entries[1].Sep.Kind)
	}
}

// S4: a not in arr — dual-operator expression, kind In, is_not_in = true,
// left a, right arr.
func TestScenarioS4NotIn(t *testing.T) {
	expr, err := gdparse.ParseExpression("a not in arr")
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	bin, ok := expr.(*cst.BinaryExpr)
	if !ok {
		t.Fatalf("expr = %T, want *cst.BinaryExpr", expr)
	}
	if !bin.IsNotIn {
		t.Fatalf("IsNotIn = false, want true")
	}
	if bin.Op.Kind != token.KwIn {
		t.Fatalf("Op.Kind = %s, want KwIn", bin.Op.Kind)
	}
	left, ok := bin.Left.(*cst.LiteralExpr)
	if !ok || left.Tok.Text != "a" {
		t.Fatalf("Left = %#v, want identifier a", bin.Left)
	}
	right, ok := bin.Right.(*cst.LiteralExpr)
	if !ok || right.Tok.Text != "arr" {
		t.Fatalf("Right = %#v, want identifier arr", bin.Right)
	}
}

// S5: 68 nested parens with default settings — typed overflow:
// max_depth = 64, current_depth >= 64; no tree.
func TestScenarioS5DeepNestingOverflows(t *testing.T) {
	const depth = 68
	src := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)

	expr, err := gdparse.ParseExpression(src)
	if err == nil {
		t.Fatalf("ParseExpression(68-deep parens) = nil error, want OverflowError")
	}
	if expr != nil {
		t.Fatalf("expr = %#v, want nil on overflow", expr)
	}
	overflow, ok := err.(*gdparse.OverflowError)
	if !ok {
		t.Fatalf("err = %T, want *gdparse.OverflowError", err)
	}
	if overflow.MaxDepth != 64 {
		t.Fatalf("MaxDepth = %d, want 64", overflow.MaxDepth)
	}
	if overflow.CurrentDepth < 64 {
		t.Fatalf("CurrentDepth = %d, want >= 64", overflow.CurrentDepth)
	}
}

// S6: var s = "((([[{"\n — one variable, initializer is a string
// expression; zero invalid tokens; brackets inside the string literal are
// not interpreted.
func TestScenarioS6BracketsInsideString(t *testing.T) {
	src := `var s = "((([[{"` + "\n"
	tree, err := gdparse.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if toks := tree.InvalidTokens(); len(toks) != 0 {
		t.Fatalf("InvalidTokens = %v, want none", toks)
	}
	if got := tree.Serialize(); got != src {
		t.Fatalf("round-trip: got %q, want %q", got, src)
	}

	file := tree.Root.(*cst.FileNode)
	decl := file.Members[0].(*cst.VarDeclStmt)
	lit, ok := decl.Value.(*cst.LiteralExpr)
	if !ok {
		t.Fatalf("Value = %T, want *cst.LiteralExpr", decl.Value)
	}
	if lit.Tok.Kind != token.String {
		t.Fatalf("Value kind = %s, want String", lit.Tok.Kind)
	}
}

// S7: func test():\n\tvar x = 1\n# zero-indent comment\n\tvar y = 2\n —
// one method containing two variable statements; the comment is preserved
// as trivia of the block; round-trip exact.
func TestScenarioS7CommentInsideIndentedBlock(t *testing.T) {
	src := "func test():\n\tvar x = 1\n# zero-indent comment\n\tvar y = 2\n"
	tree, err := gdparse.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got := tree.Serialize(); got != src {
		t.Fatalf("round-trip: got %q, want %q", got, src)
	}

	file := tree.Root.(*cst.FileNode)
	if len(file.Members) != 1 {
		t.Fatalf("len(Members) = %d, want 1", len(file.Members))
	}
	fn, ok := file.Members[0].(*cst.FuncStmt)
	if !ok {
		t.Fatalf("Members[0] = %T, want *cst.FuncStmt", file.Members[0])
	}
	if fn.Body == nil || len(fn.Body.Stmts) != 2 {
		t.Fatalf("body stmts = %v, want 2", fn.Body)
	}
	for i, want := range []string{"x", "y"} {
		v, ok := fn.Body.Stmts[i].(*cst.VarDeclStmt)
		if !ok || v.Name.Text != want {
			t.Fatalf("Stmts[%d] = %#v, want var %s", i, fn.Body.Stmts[i], want)
		}
	}

	// The comment survives somewhere in the serialized form even though it
	// sits at column zero inside an indented block.
	if !strings.Contains(tree.Serialize(), "# zero-indent comment") {
		t.Fatalf("serialized form lost the comment")
	}
}

// S5 variant: a shallower nesting that stays under the cap should parse
// cleanly, confirming the overflow is genuinely about depth and not about
// parens in general.
func TestScenarioS5SiblingShallowNestingParses(t *testing.T) {
	const depth = 10
	src := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	expr, err := gdparse.ParseExpression(src)
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	if expr == nil {
		t.Fatalf("expr = nil, want a tree")
	}
}

// A custom MaxReadingStack setting changes where the overflow triggers.
func TestScenarioS5HonorsCustomMaxReadingStack(t *testing.T) {
	const depth = 12
	src := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	_, err := gdparse.ParseExpression(src, settings.WithMaxReadingStack(8))
	if err == nil {
		t.Fatalf("expected overflow with MaxReadingStack=8")
	}
	overflow, ok := err.(*gdparse.OverflowError)
	if !ok {
		t.Fatalf("err = %T, want *gdparse.OverflowError", err)
	}
	if overflow.MaxDepth != 8 {
		t.Fatalf("MaxDepth = %d, want 8", overflow.MaxDepth)
	}
}
