// Package shell implements the scan/parse/serialize/translate front end of
// the xv6sh command interpreter.
package shell

// CompleteCommand is a sequence of pipelines separated by ';' or '&',
// terminated by end-of-line.
type CompleteCommand struct {
	Pipelines []*Pipeline
}

// Pipeline is a sequence of commands joined by '|'. Sync records whether
// the shell waits for the pipeline's children before moving on: true for
// ';' and implicit end-of-line separators, false for '&'.
type Pipeline struct {
	Commands []Command
	Sync     bool
}

// Command is either a SimpleCommand or a Subshell.
type Command interface {
	isCommand()
}

// SimpleCommand is a single program invocation with its arguments and
// redirections.
type SimpleCommand struct {
	Arguments []string
	Redirs    RedirectList
}

// Subshell is a parenthesised command group executed as a child instance
// of the shell.
type Subshell struct {
	Inner  CompleteCommand
	Redirs RedirectList
}

func (*SimpleCommand) isCommand() {}
func (*Subshell) isCommand()      {}

// RedirectList collects the input and output redirections parsed for one
// command. The translator enforces the at-most-one-of-each rule; the
// parser only collects them in order.
type RedirectList struct {
	Input  []InputRedir
	Output []OutputRedir
}

// InputRedir rebinds a command's stdin to read from Filename.
type InputRedir struct {
	Filename string
}

// OutputRedir rebinds a command's stdout to write to Filename. Overwrite
// is true for '>' (create+truncate) and false for '>>' (create+append).
type OutputRedir struct {
	Filename  string
	Overwrite bool
}
