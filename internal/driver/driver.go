// Package driver wires the scan/parse/translate/interpret pipeline into
// the two shapes the CLI exposes: a single line executed once (-c), and
// an interactive REPL, the way the teacher's internal/shell.Shell wires
// its own command chain into a readline loop.
package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/xv6sh/shell/internal/interp"
	"github.com/xv6sh/shell/internal/shell"
	"github.com/xv6sh/shell/internal/ui"
)

// Stage names accepted by --stage.
const (
	StageScan  = "scan"
	StageParse = "parse"
	StagePlan  = "plan"
	StageRun   = "run"
)

// Driver owns the reaper and interpreter that persist across REPL
// lines, and the verbosity/prompt settings threaded down from the CLI.
// The stop stage is passed to each RunLine/RunREPL call instead.
type Driver struct {
	Interp *interp.Interpreter
	Reaper *interp.Reaper

	Verbose bool
	Prompt  string

	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Driver with a fresh reaper and interpreter.
func New(verbose bool, prompt string) *Driver {
	reaper := interp.NewReaper()
	in := interp.New(reaper)
	in.Verbose = verbose
	return &Driver{
		Interp:  in,
		Reaper:  reaper,
		Verbose: verbose,
		Prompt:  prompt,
		Stdout:  in.Stdout,
		Stderr:  in.Stderr,
	}
}

// RunLine runs one input line through the pipeline, stopping early and
// pretty-printing the intermediate artifact if stage names an earlier
// stop point than "run". A failure at or before the requested stage,
// including an interpreter error, is reported to Stderr and also
// returned; the REPL ignores the returned error and continues.
func (d *Driver) RunLine(line string, stage string) error {
	tokens := shell.Scan(line)
	if stage == StageScan {
		d.printTokens(tokens)
		return nil
	}

	cc, err := shell.Parse(tokens)
	if err != nil {
		d.reportError(err)
		return err
	}
	if stage == StageParse {
		fmt.Fprintln(d.Stdout, shell.Serialize(*cc))
		return nil
	}

	plan, err := shell.Translate(cc, d.Verbose)
	if err != nil {
		d.reportError(err)
		return err
	}
	if stage == StagePlan {
		d.printPlan(plan)
		return nil
	}

	if err := d.Interp.Run(plan); err != nil {
		d.reportError(err)
		return err
	}
	return nil
}

func (d *Driver) reportError(err error) {
	fmt.Fprintln(d.Stderr, ui.ErrorStyle.Render("xv6sh: error: "+err.Error()))
}

func (d *Driver) printTokens(tokens []shell.Token) {
	for _, t := range tokens {
		if t.Type == shell.TokenWord {
			fmt.Fprintf(d.Stdout, "%s %q\n", t.Type, t.Value)
		} else {
			fmt.Fprintf(d.Stdout, "%s\n", t.Type)
		}
	}
}

func (d *Driver) printPlan(plan *shell.ListOfCommands) {
	for _, csc := range plan.Commands {
		switch c := csc.(type) {
		case *shell.SingleCommand:
			fmt.Fprintf(d.Stdout, "single sync=%v argv=%v", c.Sync, c.Argv)
			if c.Input != nil {
				fmt.Fprintf(d.Stdout, " <%s", c.Input.Filename)
			}
			if c.Output != nil {
				fmt.Fprintf(d.Stdout, " >%s overwrite=%v", c.Output.Filename, c.Output.Overwrite)
			}
			fmt.Fprintln(d.Stdout)
		case *shell.PipelinedCommands:
			fmt.Fprintf(d.Stdout, "pipeline sync=%v source=%v", c.Sync, c.Source.Argv)
			if c.Source.Input != nil {
				fmt.Fprintf(d.Stdout, " <%s", c.Source.Input.Filename)
			}
			for _, f := range c.Filters {
				fmt.Fprintf(d.Stdout, " | %v", f.Argv)
			}
			fmt.Fprintf(d.Stdout, " | %v", c.Sink.Argv)
			if c.Sink.Output != nil {
				fmt.Fprintf(d.Stdout, " >%s overwrite=%v", c.Sink.Output.Filename, c.Sink.Output.Overwrite)
			}
			fmt.Fprintln(d.Stdout)
		}
	}
}

// RunREPL reads lines from an interactive readline prompt until
// end-of-input, interpreting each one in turn. Per-line failures are
// reported and the loop continues; the only error returned is a failure
// to set up the readline prompt.
func (d *Driver) RunREPL(stage string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ui.PromptStyle.Render(d.Prompt),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		d.Reaper.Reap()

		line, err := rl.Readline()
		if err != nil { // io.EOF or Ctrl+D
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		d.RunLine(line, stage)
	}
}
