package frontend

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterh/liner"

	"Plox/internal/config"
	"Plox/internal/logger"
	"Plox/internal/printer"
	"Plox/internal/token"
)

var replCommands = []string{":tokens", ":help", ":q", ":quit", "exit"}

const replHelp = `Commands:
  :tokens   toggle the token dump before each tree
  :help     show this message
  :q, exit  leave the REPL`

type Repl struct {
	cfg        *config.Config
	out        io.Writer
	opts       []printer.Option
	showTokens bool
	log        *logger.Logger
}

func NewRepl(cfg *config.Config, out io.Writer) *Repl {
	r := &Repl{
		cfg: cfg,
		out: out,
		log: logger.Get("repl").WithSession(uuid.NewString()),
	}
	if cfg.Render.Color {
		r.opts = append(r.opts, printer.WithStyles(printer.DefaultStyles()))
	}
	return r
}

// Handle processes one input line and returns the text to print. quit is
// true when the line asks to leave the REPL.
func (r *Repl) Handle(input string) (output string, quit bool) {
	line := strings.TrimSpace(input)

	switch strings.ToLower(line) {
	case "":
		return "", false
	case "exit", ":q", ":quit":
		r.log.Info("User requested exit")
		return "", true
	case ":help":
		return replHelp, false
	case ":tokens":
		r.showTokens = !r.showTokens
		if r.showTokens {
			return "token dump on", false
		}
		return "token dump off", false
	}

	r.log.Debug("Processing input: %s", line)

	res, err := Run(input, r.opts...)
	if err != nil {
		r.log.Error("Lexing failed: %v", err)
		return fmt.Sprintf("Error: %v", err), false
	}

	return FormatResult(res, r.showTokens), false
}

// Start runs the interactive loop until exit or end of input.
func (r *Repl) Start() error {
	r.log.Info("Starting REPL session")
	defer r.log.Info("REPL session ended")

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completions)

	if f, err := os.Open(r.cfg.Repl.HistoryFile); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			r.log.Warn("Failed to read history: %v", err)
		}
		f.Close()
	}

	defer func() {
		if f, err := os.Create(r.cfg.Repl.HistoryFile); err == nil {
			if _, err := line.WriteHistory(f); err != nil {
				r.log.Warn("Failed to write history: %v", err)
			}
			f.Close()
		}
	}()

	fmt.Fprintln(r.out, "Welcome to Plox")
	fmt.Fprintln(r.out, "Enter an expression, ':help' for commands, or 'exit' to quit")

	for {
		input, err := line.Prompt(r.cfg.Repl.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(r.out, "^C")
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			r.log.Error("Error reading input: %v", err)
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		output, quit := r.Handle(input)
		if quit {
			return nil
		}
		if output != "" {
			fmt.Fprintln(r.out, output)
		}
	}
}

func completions(line string) []string {
	if line == "" || line[len(line)-1] == ' ' || line[len(line)-1] == '\t' {
		return nil
	}

	words := strings.Fields(line)
	last := words[len(words)-1]
	head := line[:len(line)-len(last)]

	candidates := append(token.Keywords(), replCommands...)
	sort.Strings(candidates)

	var matches []string
	for _, word := range candidates {
		if strings.HasPrefix(word, last) {
			matches = append(matches, head+word)
		}
	}
	return matches
}
