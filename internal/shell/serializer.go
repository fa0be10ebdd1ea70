package shell

import "strings"

// Serialize converts a CompleteCommand back into a single-line canonical
// shell string, used to hand a subshell's inner command list to a
// recursive `-c` invocation. Pipelines are joined by ';' — the '&' form
// is not regenerated, so backgrounding inside a serialised subshell is
// not supported at this level.
//
// Arguments are written verbatim with no quoting or escaping: a word
// containing whitespace or an operator character produces a string that
// will not parse back to the same tree. This is a known limitation,
// inherited unchanged from the reference shell.
func Serialize(cc CompleteCommand) string {
	var b strings.Builder
	serializeCompleteCommand(&b, cc)
	return b.String()
}

func serializeCompleteCommand(b *strings.Builder, cc CompleteCommand) {
	for i, p := range cc.Pipelines {
		if i > 0 {
			b.WriteByte(';')
		}
		serializePipeline(b, p)
	}
}

func serializePipeline(b *strings.Builder, p *Pipeline) {
	for i, cmd := range p.Commands {
		if i > 0 {
			b.WriteByte('|')
		}
		serializeCommand(b, cmd)
	}
}

func serializeCommand(b *strings.Builder, cmd Command) {
	switch c := cmd.(type) {
	case *SimpleCommand:
		for i, arg := range c.Arguments {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(arg)
		}
		serializeRedirs(b, c.Redirs)
	case *Subshell:
		b.WriteByte('(')
		serializeCompleteCommand(b, c.Inner)
		b.WriteByte(')')
		serializeRedirs(b, c.Redirs)
	}
}

func serializeRedirs(b *strings.Builder, redirs RedirectList) {
	if len(redirs.Input) > 0 {
		b.WriteByte('<')
		b.WriteString(redirs.Input[0].Filename)
	}
	if len(redirs.Output) > 0 {
		out := redirs.Output[0]
		if out.Overwrite {
			b.WriteByte('>')
		} else {
			b.WriteString(">>")
		}
		b.WriteString(out.Filename)
	}
}
