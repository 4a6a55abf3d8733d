package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rata-lang/rata/parser"
	ratastringx "github.com/rata-lang/rata/utils/stringx"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a file and print the token table",
	Long: `Tokenizes a Rata source file and prints one token per line with
its position, type, and value. Useful for debugging the lexer.

Examples:
  rata tokens pipeline.rata
  echo "x = 1" | rata tokens`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	RunE:          runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	tokens, err := parser.TokenizeInput(source)
	if err != nil {
		printDiagnostic(name, err)
		return wrapParseFailure(err, "cli.tokens")
	}

	var b strings.Builder
	for _, tok := range tokens {
		pos := fmt.Sprintf("%d:%d", tok.Line, tok.Column)
		b.WriteString(ratastringx.PadRight(pos, 8, ' '))
		b.WriteString(ratastringx.PadRight(tok.Type.String(), 14, ' '))
		b.WriteString(tok.Value)
		b.WriteString("\n")
	}
	fmt.Print(b.String())
	return nil
}
