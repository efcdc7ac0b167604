package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/gdcst/internal/lex"
	"github.com/cwbudde/gdcst/pkg/settings"
	"github.com/cwbudde/gdcst/pkg/token"
)

var (
	lexEval       string
	lexShowPos    bool
	lexShowKind   bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize GDScript source and print the resulting tokens",
	Long: `Tokenize a GDScript program and print the resulting token stream,
including trivia (whitespace, comments, line continuations). Useful for
debugging the lexer and understanding how indentation is measured.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowKind, "show-kind", false, "show token kind names")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, label, err := readInput(lexEval, args)
	if err != nil {
		return err
	}

	s := settings.Default()
	l := lex.New(input, s.TabVisualWidth)

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", label)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	tokenCount, errorCount := 0, 0
	for {
		tok := l.Next()
		if lexOnlyErrors && tok.Kind != token.Illegal {
			if tok.Kind == token.EOF {
				break
			}
			continue
		}

		tokenCount++
		if tok.Kind == token.Illegal {
			errorCount++
		}
		printToken(tok)

		if tok.Kind == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		if errorCount > 0 {
			fmt.Printf("Errors: %d\n", errorCount)
		}
	}

	if lexOnlyErrors && errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if lexShowKind {
		out = fmt.Sprintf("[%-16s]", tok.Kind)
	}
	switch {
	case tok.Kind == token.EOF:
		out += " EOF"
	case tok.Kind == token.Illegal:
		out += fmt.Sprintf(" ILLEGAL: %q", tok.Text)
	default:
		out += fmt.Sprintf(" %q", tok.Text)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}
