package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	ratalog "github.com/rata-lang/rata/core/log"
	"github.com/rata-lang/rata/parser"
	ratastringx "github.com/rata-lang/rata/utils/stringx"
)

const (
	historyFile = ".rata_history"
	promptMain  = "rata> "
	promptCont  = "....> "
)

const banner = "Rata REPL\nCtrl+C cancels the current input, Ctrl+D exits. Type :help for commands."

const helpText = `REPL commands:
  :help          Show this help
  :tokens EXPR   Show the token stream for EXPR
  :ast EXPR      Show the syntax tree for EXPR
  :clear         Clear the screen
  :quit          Exit the REPL
`

// Options configures an interactive session.
type Options struct {
	// Logger receives diagnostic events. Defaults to the package default
	// logger.
	Logger *ratalog.Logger

	// HistoryFile overrides where input history is persisted. Defaults to
	// .rata_history in the user's home directory.
	HistoryFile string

	// Output receives rendered results and diagnostics. Defaults to
	// os.Stdout.
	Output io.Writer

	// NoColor disables ANSI escape sequences in rendered output.
	NoColor bool

	// MaxInputLength and MaxDepth bound the parser. Zero values keep the
	// parser defaults.
	MaxInputLength int
	MaxDepth       int
}

// REPL reads Rata source interactively, parses it, and prints the canonical
// form of the result. Input that fails at the end of the line continues on
// a continuation prompt instead of reporting an error.
type REPL struct {
	parser  *parser.Parser
	logger  *ratalog.Logger
	out     io.Writer
	history string
	color   bool
}

// New creates a REPL with the given options.
func New(opts Options) (*REPL, error) {
	if opts.Logger == nil {
		opts.Logger = ratalog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HistoryFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		opts.HistoryFile = filepath.Join(home, historyFile)
	}

	p, err := parser.New(parser.Options{
		Logger:         opts.Logger,
		MaxInputLength: opts.MaxInputLength,
		MaxDepth:       opts.MaxDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("creating parser: %w", err)
	}

	return &REPL{
		parser:  p,
		logger:  opts.Logger.WithField("component", "rata-repl"),
		out:     opts.Output,
		history: opts.HistoryFile,
		color:   !opts.NoColor,
	}, nil
}

// Run drives the interactive loop until the user exits. The returned error
// reports terminal failures only; parse errors are printed and the loop
// continues.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(r.history); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(r.history); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	r.logger.Debug("repl session started", ratalog.Fields{"history": r.history})

	for {
		src, ok := r.readSource(ln)
		if !ok {
			fmt.Fprintln(r.out)
			return nil
		}

		code := strings.TrimSpace(src)
		if code == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(code, ":") {
			if r.execute(code) {
				return nil
			}
			continue
		}

		node, err := r.parser.ParseLine(src)
		if err != nil {
			fmt.Fprintln(r.out, r.renderError(src, err))
			continue
		}
		fmt.Fprintln(r.out, r.paint(node.String(), ansiBlue))
	}
}

// readSource accumulates prompt lines until the buffer parses, fails with a
// definite error, or the user gives up. The second result is false when the
// session should end.
func (r *REPL) readSource(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(promptMain)
		} else {
			line, err = ln.Prompt(promptCont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C lands here and discards the buffer.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			return src, true
		}

		_, perr := r.parser.ParseLine(src)
		if perr == nil {
			return src, true
		}
		if parser.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}

// execute runs a colon command. It reports whether the session should end.
func (r *REPL) execute(code string) bool {
	cmd, arg := splitCommand(code)

	switch cmd {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprint(r.out, helpText)
	case ":tokens":
		if ratastringx.IsBlank(arg) {
			fmt.Fprintln(r.out, "usage: :tokens EXPR")
			break
		}
		fmt.Fprint(r.out, r.renderTokens(arg))
	case ":ast":
		if ratastringx.IsBlank(arg) {
			fmt.Fprintln(r.out, "usage: :ast EXPR")
			break
		}
		node, err := r.parser.ParseLine(arg)
		if err != nil {
			fmt.Fprintln(r.out, r.renderError(arg, err))
			break
		}
		fmt.Fprint(r.out, renderTree(node))
	case ":clear":
		fmt.Fprint(r.out, "\x1b[2J\x1b[H")
	default:
		fmt.Fprintf(r.out, "unknown command %q. Type :help for a list.\n", cmd)
	}
	return false
}

// splitCommand separates the command word from its argument text.
func splitCommand(code string) (string, string) {
	i := strings.IndexAny(code, " \t")
	if i < 0 {
		return strings.ToLower(code), ""
	}
	return strings.ToLower(code[:i]), strings.TrimSpace(code[i+1:])
}
