package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rata-lang/rata/ast"
	rataerror "github.com/rata-lang/rata/core/error"
	"github.com/rata-lang/rata/parser"
	"github.com/spf13/cobra"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a module file and print the syntax tree",
	Long: `Parses a Rata module file and prints the syntax tree.

Without a file argument the source is read from stdin. On failure the
position-tagged error is printed as file:line:column and the exit code
is non-zero.

Examples:
  rata parse pipeline.rata
  rata parse --json pipeline.rata
  cat pipeline.rata | rata parse`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	RunE:          runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the syntax tree as JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	p, err := parser.New(parserOptions())
	if err != nil {
		return err
	}

	mod, err := p.ParseModule(source)
	if err != nil {
		printDiagnostic(name, err)
		return wrapParseFailure(err, "cli.parse")
	}

	if parseJSON {
		data, err := ast.MarshalIndent(mod)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	tv := ast.NewTreeVisitor()
	mod.Accept(tv)
	fmt.Print(tv.String())
	return nil
}

// readSource resolves the input for parse and tokens: the named file, or
// stdin when no argument is given and input is piped in.
func readSource(args []string) (name, source string, err error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return args[0], string(data), nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", "", fmt.Errorf("no input: pass a file or pipe source on stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return "<stdin>", string(data), nil
}

// printDiagnostic reports a lexer or parser fault in file:line:column form.
func printDiagnostic(name string, err error) {
	var lexErr *parser.LexError
	if errors.As(err, &lexErr) {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", name, lexErr.Line, lexErr.Column, lexErr.Message)
		return
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", name, parseErr.Line, parseErr.Column, parseErr.Message)
		return
	}

	fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
}

// wrapParseFailure carries the parser fault across the command boundary in
// the structured error frame.
func wrapParseFailure(err error, operation string) error {
	code := rataerror.CodeParseError
	var lexErr *parser.LexError
	if errors.As(err, &lexErr) {
		code = rataerror.CodeLexError
	}
	return rataerror.Wrap(err, "parse failed").
		WithCode(code).
		WithOperation(operation)
}
