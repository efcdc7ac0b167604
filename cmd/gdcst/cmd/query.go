package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/gdcst/internal/jsonexport"
	"github.com/cwbudde/gdcst/pkg/gdparse"
)

var queryCmd = &cobra.Command{
	Use:   "query <path> [file]",
	Short: "Parse a file and look up a field in its JSON export by gjson path",
	Long: `query parses a file, exports it as JSON (the same document 'gdcst dump'
prints), and evaluates a gjson path expression against it — e.g.
'form.0.type' or 'form.#(type=="*cst.ClassNameDecl")'.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	opts, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	input, label, err := readInput("", args[1:])
	if err != nil {
		return err
	}

	tree, err := gdparse.ParseFile(input, opts...)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", label, err)
	}
	doc, err := jsonexport.Export(tree.Root)
	if err != nil {
		return fmt.Errorf("exporting JSON: %w", err)
	}

	result := jsonexport.Query(doc, path)
	if !result.Exists() {
		return fmt.Errorf("path %q matched nothing", path)
	}
	fmt.Println(result.String())
	return nil
}
