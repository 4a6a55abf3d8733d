package cmd

import (
	"fmt"
	"os"

	"github.com/rata-lang/rata/parser"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse-only validation of many files",
	Long: `Parses each file and reports OK or the first fault per file.
The exit code is non-zero when any file fails.

Examples:
  rata check pipeline.rata
  rata check modules/*.rata`,
	Args:          cobra.MinimumNArgs(1),
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := parser.New(parserOptions())
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}

		if _, err := p.ParseModule(string(data)); err != nil {
			printDiagnostic(path, err)
			failed++
			continue
		}

		fmt.Printf("%s: OK\n", path)
	}

	if failed > 0 {
		err := fmt.Errorf("%d of %d files failed", failed, len(args))
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
