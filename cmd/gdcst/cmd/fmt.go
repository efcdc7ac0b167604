package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/gdcst/pkg/gdparse"
	"github.com/cwbudde/gdcst/pkg/settings"
)

var (
	fmtWrite bool
	fmtList  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Check (and optionally normalize) a file's round-trip",
	Long: `gdcst fmt parses a file and reserializes the resulting tree, verifying
the round-trip contract: serialize(parse(s)) == s, except that isolated
'\r' bytes are dropped and mixed '\r\n' line endings are normalized to '\n'
(spec.md §6).

Unlike a conventional source formatter, gdcst never reorders or reindents
anything the parser accepted — a mismatch here means either the input used
'\r' line endings (expected, and corrected by -w) or indicates a reader
defect.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the normalized result back to the file")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose round-trip output differs from their contents")
}

func runFmt(cmd *cobra.Command, args []string) error {
	opts, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		input, _, err := readInput("", nil)
		if err != nil {
			return err
		}
		_, changed, err := fmtOne("<stdin>", input, opts)
		if err != nil {
			return err
		}
		_ = changed
		return nil
	}

	mismatch := false
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", path, err)
		}
		normalized, changed, err := fmtOne(path, string(data), opts)
		if err != nil {
			return err
		}
		switch {
		case fmtList:
			if changed {
				fmt.Println(path)
			}
		case fmtWrite:
			if changed {
				if err := os.WriteFile(path, []byte(normalized), 0o644); err != nil {
					return fmt.Errorf("error writing %s: %w", path, err)
				}
			}
		default:
			fmt.Print(normalized)
		}
		if changed {
			mismatch = true
		}
	}
	if mismatch && !fmtWrite {
		return fmt.Errorf("round-trip mismatch in one or more files (use -w to normalize)")
	}
	return nil
}

// fmtOne parses input, reserializes it, and reports whether the result
// differs from the original (a mismatch indicates \r-normalization took
// effect, or — with no \r present — a reader defect).
func fmtOne(label, input string, opts []settings.Option) (normalized string, changed bool, err error) {
	tree, err := gdparse.ParseFile(input, opts...)
	if err != nil {
		return "", false, fmt.Errorf("parsing %s: %w", label, err)
	}
	normalized = tree.Serialize()
	return normalized, normalized != input, nil
}
