package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/gdcst/internal/jsonexport"
	"github.com/cwbudde/gdcst/pkg/gdparse"
)

var dumpExpression bool

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Export a parsed tree as JSON",
	Long: `Parse GDScript source and print its concrete syntax tree as JSON —
one object per node (type + ordered form) and per leaf (kind, text,
position). Pair with 'gdcst query' to pull a single field out of the
result with a gjson path expression.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().BoolVarP(&dumpExpression, "expression", "e", false, "dump a single expression instead of a file")
}

func runDump(cmd *cobra.Command, args []string) error {
	opts, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if dumpExpression {
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		expr, err := gdparse.ParseExpression(args[0], opts...)
		if err != nil {
			return fmt.Errorf("parsing <expr>: %w", err)
		}
		doc, err := jsonexport.Export(expr)
		if err != nil {
			return fmt.Errorf("exporting JSON: %w", err)
		}
		fmt.Println(doc)
		return nil
	}

	input, label, err := readInput("", args)
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
	fmt.Println(doc)
	return nil
}
