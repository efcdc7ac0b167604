package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/gdcst/internal/config"
	"github.com/cwbudde/gdcst/pkg/settings"
)

// readInput resolves a command's source text from either a literal
// expression flag, a file argument, or stdin, in that priority order.
func readInput(exprFlag string, args []string) (text, label string, err error) {
	if exprFlag != "" {
		return exprFlag, "<expr>", nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}

// loadSettings builds the settings.Option slice for a parse call: a
// --config YAML file's overrides, if given; no subcommand adds further
// settings of its own.
func loadSettings(cmd *cobra.Command) ([]settings.Option, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return nil, nil
	}
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return f.Options(), nil
}
