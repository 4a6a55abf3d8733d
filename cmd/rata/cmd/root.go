package cmd

import (
	"os"

	"github.com/rata-lang/rata/core/config"
	ratalog "github.com/rata-lang/rata/core/log"
	"github.com/rata-lang/rata/parser"
	ratastringx "github.com/rata-lang/rata/utils/stringx"
	"github.com/spf13/cobra"
)

const envPrefix = "RATA"

var (
	cfgFile   string
	logLevel  string
	logFormat string
	verbose   bool

	appConfig *config.Config
	logger    *ratalog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rata",
	Short: "Rata - a data engineering language front end",
	Long: `Rata is a data engineering language. This tool is its front end:
the tokenizer, the grammar-driven parser, and the surfaces built on them.

Commands:
  parse    - Parse a module file and print the syntax tree
  tokens   - Tokenize a file and print the token table
  check    - Parse-only validation of many files
  repl     - Interactive read-parse-print loop
  serve    - Websocket playground server
  tui      - Terminal syntax tree explorer`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./rata.toml or ./rata.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (json, text, console, logfmt)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (log level debug)")
}

// initApp loads the configuration and installs the default logger before
// any subcommand runs.
func initApp(cmd *cobra.Command, args []string) error {
	var err error
	appConfig, err = loadConfig()
	if err != nil {
		return err
	}

	logger, err = buildLogger(appConfig)
	if err != nil {
		return err
	}
	ratalog.SetDefault(logger)

	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
		})
	}

	for _, path := range []string{"rata.toml", "rata.yaml"} {
		if _, err := os.Stat(path); err == nil {
			return config.LoadWithOptions(path, config.LoadOptions{
				Format:    config.FormatAuto,
				EnvPrefix: envPrefix,
			})
		}
	}

	return config.NewWithDefaults(nil, envPrefix), nil
}

// buildLogger resolves level and format from config, then flags. Logs go
// to stderr so stdout stays clean for tree and JSON output.
func buildLogger(cfg *config.Config) (*ratalog.Logger, error) {
	levelName := ratastringx.FirstNonBlank(logLevel, cfg.GetString("log.level"), "info")
	if verbose {
		levelName = "debug"
	}
	level, err := ratalog.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	formatName := ratastringx.FirstNonBlank(logFormat, cfg.GetString("log.format"), "console")
	format, err := ratalog.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	return ratalog.New().
		WithName("rata").
		WithLevel(level).
		WithFormat(format).
		WithOutput(os.Stderr), nil
}

// parserOptions maps config keys to parser limits. Zero values keep the
// parser defaults.
func parserOptions() parser.Options {
	return parser.Options{
		Logger:         logger,
		MaxInputLength: appConfig.GetInt("parser.max_input_length", 0),
		MaxDepth:       appConfig.GetInt("parser.max_depth", 0),
	}
}
