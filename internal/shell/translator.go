package shell

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// TranslateError is returned by Translate on any validation failure.
type TranslateError struct {
	Reason string
}

func (e *TranslateError) Error() string { return e.Reason }

func translateErr(format string, args ...any) error {
	return &TranslateError{Reason: fmt.Sprintf(format, args...)}
}

// CurrentExe resolves the path to the running executable. It is a
// variable so tests can substitute a fixed value instead of depending on
// the test binary's own path.
var CurrentExe = os.Executable

// Translate validates and flattens a parsed CompleteCommand into an
// execution plan. verbose is threaded explicitly rather than read off a
// package global, so it reaches any subshell argv generated along the
// way without hidden state.
func Translate(cc *CompleteCommand, verbose bool) (*ListOfCommands, error) {
	t := &translator{verbose: verbose}
	return t.completeCommand(cc)
}

type translator struct {
	verbose bool
}

func (t *translator) completeCommand(cc *CompleteCommand) (*ListOfCommands, error) {
	out := &ListOfCommands{}
	for _, p := range cc.Pipelines {
		if len(p.Commands) < 1 {
			continue // an empty pipeline is dropped, not an error
		}
		csc, err := t.pipeline(p)
		if err != nil {
			return nil, err
		}
		out.Commands = append(out.Commands, csc)
	}
	return out, nil
}

func (t *translator) pipeline(p *Pipeline) (CompoundSerialCommand, error) {
	simples := make([]*SimpleCommand, 0, len(p.Commands))
	for _, cmd := range p.Commands {
		sc, err := t.command(cmd)
		if err != nil {
			return nil, err
		}
		simples = append(simples, sc)
	}
	if len(simples) == 1 {
		return t.singleCommand(simples[0], p.Sync)
	}
	return t.pipelinedCommands(simples, p.Sync)
}

// command resolves a Command to a SimpleCommand, replacing a subshell
// with a synthetic `current_exe -c <serialized> [-x]` invocation.
func (t *translator) command(cmd Command) (*SimpleCommand, error) {
	switch c := cmd.(type) {
	case *SimpleCommand:
		return c, nil
	case *Subshell:
		return t.subshell(c)
	default:
		return nil, translateErr("translate error: unknown command kind")
	}
}

func (t *translator) subshell(ss *Subshell) (*SimpleCommand, error) {
	exe, err := CurrentExe()
	if err != nil {
		return nil, translateErr("translate error: cannot resolve current executable: %v", err)
	}
	if !utf8.ValidString(exe) {
		return nil, translateErr("translate error: current executable path is not valid UTF-8")
	}
	argv := []string{exe, "-c", Serialize(ss.Inner)}
	if t.verbose {
		argv = append(argv, "-x")
	}
	return &SimpleCommand{Arguments: argv, Redirs: ss.Redirs}, nil
}

func (t *translator) singleCommand(sc *SimpleCommand, sync bool) (CompoundSerialCommand, error) {
	out := &SingleCommand{Argv: sc.Arguments, Sync: sync}
	if len(sc.Redirs.Input) > 1 {
		return nil, translateErr("translate error: more than one input redirection")
	}
	if len(sc.Redirs.Input) == 1 {
		r := sc.Redirs.Input[0]
		out.Input = &r
	}
	if len(sc.Redirs.Output) > 1 {
		return nil, translateErr("translate error: more than one output redirection")
	}
	if len(sc.Redirs.Output) == 1 {
		r := sc.Redirs.Output[0]
		out.Output = &r
	}
	return out, nil
}

func (t *translator) pipelinedCommands(simples []*SimpleCommand, sync bool) (CompoundSerialCommand, error) {
	out := &PipelinedCommands{Sync: sync}

	first := simples[0]
	if len(first.Redirs.Input) > 1 {
		return nil, translateErr("translate error: more than one input redirection")
	}
	if len(first.Redirs.Output) > 0 {
		return nil, translateErr("translate error: output redirection for pipeline source")
	}
	out.Source = SourceCommand{Argv: first.Arguments}
	if len(first.Redirs.Input) == 1 {
		r := first.Redirs.Input[0]
		out.Source.Input = &r
	}

	for _, mid := range simples[1 : len(simples)-1] {
		if len(mid.Redirs.Input) > 0 {
			return nil, translateErr("translate error: input redirection for pipeline filter")
		}
		if len(mid.Redirs.Output) > 0 {
			return nil, translateErr("translate error: output redirection for pipeline filter")
		}
		out.Filters = append(out.Filters, FilterCommand{Argv: mid.Arguments})
	}

	last := simples[len(simples)-1]
	if len(last.Redirs.Input) > 0 {
		return nil, translateErr("translate error: input redirection for pipeline sink")
	}
	if len(last.Redirs.Output) > 1 {
		return nil, translateErr("translate error: more than one output redirection")
	}
	out.Sink = SinkCommand{Argv: last.Arguments}
	if len(last.Redirs.Output) == 1 {
		r := last.Redirs.Output[0]
		out.Sink.Output = &r
	}

	return out, nil
}
