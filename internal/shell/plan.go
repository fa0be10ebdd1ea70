package shell

// ListOfCommands is the flat, validated plan the interpreter consumes.
type ListOfCommands struct {
	Commands []CompoundSerialCommand
}

// CompoundSerialCommand is either a SingleCommand or PipelinedCommands.
type CompoundSerialCommand interface {
	isCompoundSerialCommand()
}

// SingleCommand is one standalone program invocation, with at most one
// input and one output redirection.
type SingleCommand struct {
	Argv   []string
	Input  *InputRedir
	Output *OutputRedir
	Sync   bool
}

// PipelinedCommands is a source command, zero or more filter commands,
// and a sink command, connected by anonymous pipes. It always has at
// least two commands total.
type PipelinedCommands struct {
	Source  SourceCommand
	Filters []FilterCommand
	Sink    SinkCommand
	Sync    bool
}

// SourceCommand is the first command of a pipeline: input redirection is
// allowed, output redirection is not (its stdout feeds the next pipe).
type SourceCommand struct {
	Argv  []string
	Input *InputRedir
}

// FilterCommand is a middle command of a pipeline: no redirections are
// allowed.
type FilterCommand struct {
	Argv []string
}

// SinkCommand is the last command of a pipeline: output redirection is
// allowed, input redirection is not (its stdin comes from the previous
// pipe).
type SinkCommand struct {
	Argv   []string
	Output *OutputRedir
}

func (*SingleCommand) isCompoundSerialCommand()     {}
func (*PipelinedCommands) isCompoundSerialCommand() {}
