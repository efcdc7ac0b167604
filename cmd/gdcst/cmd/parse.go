package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/gdparse"
	"github.com/cwbudde/gdcst/pkg/printer"
)

var (
	parseExpression bool
	parseDumpTree   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse GDScript source and display its concrete syntax tree",
	Long: `Parse GDScript source code into its concrete syntax tree.

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line. Use --dump-tree to show the full node
structure instead of the reserialized source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse a single expression instead of a file")
	parseCmd.Flags().BoolVar(&parseDumpTree, "dump-tree", false, "dump the full node structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	opts, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var root cst.Node
	var label string

	if parseExpression {
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		expr, err := gdparse.ParseExpression(args[0], opts...)
		if err != nil {
			return fmt.Errorf("parsing <expr>: %w", err)
		}
		root, label = expr, "<expr>"
	} else {
		input, fileLabel, err := readInput("", args)
		if err != nil {
			return err
		}
		tree, err := gdparse.ParseFile(input, opts...)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", fileLabel, err)
		}
		root, label = tree.Root, fileLabel
	}

	if parseDumpTree {
		fmt.Print(printer.Dump(root))
		return nil
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Parsed %s\n", label)
	}
	fmt.Print(printer.Serialize(root))
	return nil
}
