package cmd

import (
	"github.com/rata-lang/rata/internal/repl"
	"github.com/spf13/cobra"
)

var replNoColor bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	Long: `Starts the interactive read-parse-print loop.

Lines that fail at the end of the input continue on a continuation
prompt, so multi-line modules can be typed directly. History is kept
under the home directory.

Commands inside the REPL:
  :help          Show the command list
  :tokens EXPR   Show the token stream for EXPR
  :ast EXPR      Show the syntax tree for EXPR
  :clear         Clear the screen
  :quit          Exit`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVar(&replNoColor, "no-color", false, "Disable ANSI colors in output")
}

func runRepl(cmd *cobra.Command, args []string) error {
	opts := parserOptions()

	r, err := repl.New(repl.Options{
		Logger:         logger,
		HistoryFile:    appConfig.GetString("repl.history_file"),
		NoColor:        replNoColor,
		MaxInputLength: opts.MaxInputLength,
		MaxDepth:       opts.MaxDepth,
	})
	if err != nil {
		return err
	}

	return r.Run()
}
