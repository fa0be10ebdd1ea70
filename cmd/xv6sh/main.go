package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/xv6sh/shell/internal/config"
	"github.com/xv6sh/shell/internal/driver"
)

func main() {
	fs := pflag.NewFlagSet("xv6sh", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	commands := fs.StringP("command", "c", "", "interpret COMMANDS as a single input line, then exit")
	verbose := fs.BoolP("verbose", "x", false, "enable verbose tracing")
	stage := fs.String("stage", driver.StageRun, "stop after the named stage: scan, parse, plan, run")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: xv6sh [-c COMMANDS] [-x] [--stage scan|parse|plan|run]")
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		fs.Usage()
		os.Exit(1)
	}

	switch *stage {
	case driver.StageScan, driver.StageParse, driver.StagePlan, driver.StageRun:
	default:
		fmt.Fprintf(os.Stderr, "xv6sh: unknown stage %q\n", *stage)
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "xv6sh: error: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		cfg.Verbose = true
	}

	d := driver.New(cfg.Verbose, cfg.Prompt)

	if fs.Changed("command") {
		d.RunLine(*commands, *stage)
		return
	}

	if err := d.RunREPL(*stage); err != nil {
		fmt.Fprintf(os.Stderr, "xv6sh: error: %v\n", err)
		os.Exit(1)
	}
}
