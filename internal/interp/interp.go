package interp

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/xv6sh/shell/internal/shell"
	"github.com/xv6sh/shell/internal/shellerr"
	"github.com/xv6sh/shell/internal/ui"
)

// Interpreter materialises a shell.ListOfCommands by spawning child
// processes and wiring their standard streams. Stdin/Stdout/Stderr
// default to the process's own standard streams (inherited stdio);
// tests may substitute other readers/writers.
type Interpreter struct {
	Reaper  *Reaper
	Verbose bool
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// New creates an Interpreter wired to the process's own stdio and the
// given reaper.
func New(reaper *Reaper) *Interpreter {
	return &Interpreter{
		Reaper: reaper,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run interprets a plan sequentially, one CompoundSerialCommand at a
// time. It stops and returns the first error encountered — no stage has
// a recovery path; the driver is what resumes the REPL after Run
// returns an error.
func (in *Interpreter) Run(plan *shell.ListOfCommands) error {
	for _, csc := range plan.Commands {
		switch c := csc.(type) {
		case *shell.SingleCommand:
			if err := in.runSingle(c); err != nil {
				return err
			}
		case *shell.PipelinedCommands:
			if err := in.runPipeline(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// trace prints "+ argv0 arg1 arg2 …" to stderr before a spawn, when
// verbose tracing is enabled.
func (in *Interpreter) trace(argv []string) {
	if !in.Verbose {
		return
	}
	fmt.Fprintln(in.Stderr, ui.TraceStyle.Render("+ "+joinArgv(argv)))
}

func joinArgv(argv []string) string {
	out := ""
	for i, a := range argv {
		if i > 0 {
			out += " "
		}
		out += a
	}
	return out
}

// runSingle executes one standalone command: the cd builtin, or an
// external program with its own redirections.
func (in *Interpreter) runSingle(sc *shell.SingleCommand) error {
	if len(sc.Argv) == 0 {
		return nil
	}
	if sc.Argv[0] == "cd" {
		return runCd(sc.Argv[1:])
	}

	group := NewGroup(in.Reaper)
	defer group.Close()

	cmd := exec.Command(sc.Argv[0], sc.Argv[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = in.Stdin, in.Stdout, in.Stderr

	var toClose []io.Closer
	if sc.Input != nil {
		f, err := os.Open(sc.Input.Filename)
		if err != nil {
			return shellerr.New(shellerr.KindRedirect, "%s: %v", sc.Input.Filename, err)
		}
		toClose = append(toClose, f)
		cmd.Stdin = f
	}
	if sc.Output != nil {
		f, err := openOutput(sc.Output)
		if err != nil {
			return shellerr.New(shellerr.KindRedirect, "%s: %v", sc.Output.Filename, err)
		}
		toClose = append(toClose, f)
		cmd.Stdout = f
	}

	in.trace(sc.Argv)
	err := cmd.Start()
	closeAll(toClose)
	if err != nil {
		return shellerr.New(shellerr.KindSpawn, "%s: %v", sc.Argv[0], err)
	}

	child := NewChild(cmd)
	group.Add(child)
	if sc.Sync {
		group.Wait()
	}
	return nil
}

// runPipeline executes a source | filter... | sink pipeline, wiring an
// anonymous pipe between each adjacent pair of commands.
func (in *Interpreter) runPipeline(pc *shell.PipelinedCommands) error {
	group := NewGroup(in.Reaper)
	defer group.Close()

	argvs := [][]string{pc.Source.Argv}
	for _, f := range pc.Filters {
		argvs = append(argvs, f.Argv)
	}
	argvs = append(argvs, pc.Sink.Argv)
	n := len(argvs)

	cmds := make([]*exec.Cmd, n)
	for i, argv := range argvs {
		cmds[i] = exec.Command(argv[0], argv[1:]...)
		cmds[i].Stdin, cmds[i].Stdout, cmds[i].Stderr = in.Stdin, in.Stdout, in.Stderr
	}

	var toClose []io.Closer
	for i := 0; i < n-1; i++ {
		pr, pw, err := os.Pipe()
		if err != nil {
			closeAll(toClose)
			return shellerr.New(shellerr.KindSpawn, "failed to create pipe: %v", err)
		}
		toClose = append(toClose, pr, pw)
		cmds[i].Stdout = pw
		cmds[i+1].Stdin = pr
	}

	if pc.Source.Input != nil {
		f, err := os.Open(pc.Source.Input.Filename)
		if err != nil {
			closeAll(toClose)
			return shellerr.New(shellerr.KindRedirect, "%s: %v", pc.Source.Input.Filename, err)
		}
		toClose = append(toClose, f)
		cmds[0].Stdin = f
	}
	if pc.Sink.Output != nil {
		f, err := openOutput(pc.Sink.Output)
		if err != nil {
			closeAll(toClose)
			return shellerr.New(shellerr.KindRedirect, "%s: %v", pc.Sink.Output.Filename, err)
		}
		toClose = append(toClose, f)
		cmds[n-1].Stdout = f
	}

	for i, argv := range argvs {
		in.trace(argv)
		if err := cmds[i].Start(); err != nil {
			closeAll(toClose)
			group.KillAndWait()
			return shellerr.New(shellerr.KindSpawn, "%s: %v", argv[0], err)
		}
		group.Add(NewChild(cmds[i]))
	}

	// Every child has its own duplicated copy of each pipe/file fd by
	// now; the parent must not retain either end, or a reader
	// downstream would never see EOF once its real producers exit.
	closeAll(toClose)

	if pc.Sync {
		group.Wait()
	}
	return nil
}

func openOutput(o *shell.OutputRedir) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if o.Overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	return os.OpenFile(o.Filename, flags, 0644)
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}

// runCd implements the cd builtin. Builtins are recognised only outside
// pipelines: cd inside a pipeline runs as an external command instead,
// and typically fails. Zero-argument cd is rejected — no
// home-directory fallback is implemented.
func runCd(args []string) error {
	if len(args) != 1 {
		return shellerr.New(shellerr.KindBuiltin, "cd: usage: cd DIR")
	}
	if err := os.Chdir(args[0]); err != nil {
		return shellerr.New(shellerr.KindBuiltin, "cd: %v", err)
	}
	return nil
}
