package printer_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/gdcst/pkg/gdparse"
	"github.com/cwbudde/gdcst/pkg/printer"
	"github.com/cwbudde/gdcst/pkg/visitor"
)

// P1 (round-trip): serialize(parse_file(s)) == s for inputs without \r.
func TestSerializeRoundTrips(t *testing.T) {
	inputs := []string{
		"var x = 1\n",
		"for x in [5,7,11]:\n    print(x)\n",
		`var d = {"a"=1, "b":2}` + "\n",
		"func test():\n\tvar x = 1\n# zero-indent comment\n\tvar y = 2\n",
		"",
		"\n\n\n",
		"# just a comment\n",
		"class_name Foo\nextends Node\n\nfunc ready():\n\tpass\n",
	}
	for _, src := range inputs {
		tree, err := gdparse.ParseFile(src)
		if err != nil {
			t.Fatalf("ParseFile(%q): %v", src, err)
		}
		if got := printer.Serialize(tree.Root); got != src {
			t.Errorf("Serialize mismatch\n got:  %q\n want: %q", got, src)
		}
	}
}

// P2 (leaf coverage): concatenating every leaf's text reproduces the input.
func TestLeafCoverageReconstructsInput(t *testing.T) {
	src := "var x = 1\nfor y in [1,2]:\n    print(y + x)\n"
	tree, err := gdparse.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	var sb strings.Builder
	for _, tok := range visitor.Leaves(tree.Root) {
		sb.WriteString(tok.Text)
	}
	if sb.String() != src {
		t.Fatalf("leaf concatenation = %q, want %q", sb.String(), src)
	}
}

// P3 (idempotence): re-parsing the serialized output yields the same
// serialized form again.
func TestParseSerializeIsIdempotent(t *testing.T) {
	src := "var d = {\"a\"=1, \"b\":2}\nfor x in arr:\n    if x not in seen:\n        pass\n"
	tree1, err := gdparse.ParseFile(src)
	if err != nil {
		t.Fatalf("first ParseFile: %v", err)
	}
	out1 := printer.Serialize(tree1.Root)

	tree2, err := gdparse.ParseFile(out1)
	if err != nil {
		t.Fatalf("second ParseFile: %v", err)
	}
	out2 := printer.Serialize(tree2.Root)

	if out1 != out2 {
		t.Fatalf("idempotence failed:\n out1: %q\n out2: %q", out1, out2)
	}
}

func TestDumpShowsTypesAndLeaves(t *testing.T) {
	tree, err := gdparse.ParseFile("var x = 1\n")
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	dump := printer.Dump(tree.Root)
	if !strings.Contains(dump, "cst.FileNode") {
		t.Errorf("dump missing FileNode type:\n%s", dump)
	}
	if !strings.Contains(dump, "cst.VarDeclStmt") {
		t.Errorf("dump missing VarDeclStmt type:\n%s", dump)
	}
	if !strings.Contains(dump, `"x"`) {
		t.Errorf("dump missing leaf text for x:\n%s", dump)
	}
}
