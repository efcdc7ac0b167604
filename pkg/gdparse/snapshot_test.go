package gdparse_test

import (
	"testing"

	"github.com/cwbudde/gdcst/pkg/gdparse"
	"github.com/cwbudde/gdcst/pkg/printer"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestGDScriptFixturesSnapshot mirrors the teacher's fixture-driven
// go-snaps approach (internal/interp/fixture_test.go): each representative
// source sample is parsed and its dumped tree shape is pinned as a
// snapshot, so an unintended grammar regression shows up as a diff instead
// of a silent behavior change.
func TestGDScriptFixturesSnapshot(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{"var_decl", "var x = 1\n"},
		{"for_loop", "for x in [5,7,11]:\n    print(x)\n"},
		{"dict_mixed_separators", `var d = {"a"=1, "b":2}` + "\n"},
		{"not_in_expression", "var ok = a not in arr\n"},
		{"class_with_method", "class_name Foo\nextends Node\n\nfunc ready():\n\tvar x = 1\n\treturn x\n"},
		{"match_statement", "match value:\n\t1:\n\t\tprint(\"one\")\n\t_:\n\t\tprint(\"other\")\n"},
		{"lambda_in_call", "var f = sort(arr, func(a, b): return a < b)\n"},
		{"unterminated_string_recovers", "var s = \"abc\n"},
	}

	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			tree, err := gdparse.ParseFile(fx.src)
			if err != nil {
				t.Fatalf("ParseFile(%q): %v", fx.src, err)
			}
			snaps.MatchSnapshot(t, printer.Dump(tree.Root))
		})
	}
}
