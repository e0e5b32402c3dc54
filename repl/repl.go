/*
File : kodi-script-go/repl/repl.go

Package repl implements the interactive shell for the KodiScript
runtime. The shell keeps one evaluator alive for the whole session, so
variables and functions defined on earlier lines stay visible, and uses
the readline library for history and line editing.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/issadicko/kodi-script-go/eval"
	"github.com/issadicko/kodi-script-go/objects"
	"github.com/issadicko/kodi-script-go/parser"
)

// Color scheme for shell feedback: results in yellow, errors in red,
// informational messages in cyan.
var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
)

// Repl represents one interactive session.
type Repl struct {
	Banner  string // Banner displayed at startup
	Version string // Version string of the runtime
	Prompt  string // Prompt shown to the user (e.g., "kodi> ")
}

// NewRepl creates a shell with the given banner, version, and prompt.
func NewRepl(banner, version, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Prompt:  prompt,
	}
}

// Start runs the read-eval-print loop until the user exits with `exit`,
// `quit`, Ctrl-D, or Ctrl-C.
func (r *Repl) Start() error {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	greenColor.Println(r.Banner)
	cyanColor.Printf("KodiScript %s — type `exit` to leave\n", r.Version)

	ev := eval.NewEvaluator()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		par := parser.NewParser(line)
		root := par.Parse()
		if par.HasErrors() {
			for _, msg := range par.GetErrors() {
				redColor.Println(msg)
			}
			continue
		}

		// Flush only the output this line produced.
		seen := len(ev.Output.Lines())
		result := ev.Eval(root)
		for _, entry := range ev.Output.Lines()[seen:] {
			fmt.Println(entry)
		}

		if objects.IsError(result) {
			redColor.Println(result.ToString())
			continue
		}
		if result.GetType() != objects.NullType {
			yellowColor.Println(result.ToString())
		}
	}

	cyanColor.Println("bye")
	return nil
}
