// Package shellerr gives every interpreter-stage failure a uniform shape:
// a Kind and a single human-readable reason string. No stage attempts
// recovery mid-stream; errors propagate upward via the stage return and
// are caught once, at the top of the driver loop.
package shellerr

import "fmt"

// Kind identifies which category of interpreter failure an Error
// belongs to.
type Kind int

const (
	KindSpawn Kind = iota
	KindRedirect
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindSpawn:
		return "spawn error"
	case KindRedirect:
		return "redirection error"
	case KindBuiltin:
		return "builtin error"
	default:
		return "error"
	}
}

// Error is the uniform error value produced by the interpreter stage.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string { return e.Reason }

// New builds an Error of the given Kind with a formatted reason.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
