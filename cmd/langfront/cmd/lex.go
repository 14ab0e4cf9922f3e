package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ngreenwood/langfront/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexEval     string
	lexShowType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize source and print the resulting tokens",
	Long: `Tokenize source and print the resulting token stream, one per line.

If no file is given and -e is not used, source is read from stdin.

Examples:
  langfront lex script.lf
  langfront lex -e "int32 x = 1;"
  langfront lex --show-type script.lf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show each token's type name alongside its text")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return fmt.Errorf("lex error: %w", err)
	}

	for _, tok := range tokens {
		if lexShowType {
			fmt.Printf("%-24s %q\n", tok.Kind, tok.Text)
		} else {
			fmt.Printf("%q\n", tok.Text)
		}
	}

	return nil
}

// readSource resolves the -e flag, a file argument, or stdin, in that order.
func readSource(eval string, args []string) (string, error) {
	if eval != "" {
		return eval, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), nil
}
