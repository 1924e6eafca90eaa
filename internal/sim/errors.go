package sim

import "errors"

// Sentinel errors for broad classification of faults.
var (
	ErrInput     = errors.New("invalid input")
	ErrPlacement = errors.New("invalid placement")
	ErrExecution = errors.New("execution failed")
)

// FaultKind says which stage of a simulation produced a fault.
type FaultKind string

const (
	KindInput     FaultKind = "input"
	KindPlacement FaultKind = "placement"
	KindExecution FaultKind = "execution"
)

// Fault is the sticky diagnostic recorded on a wall or spider.
// Error returns the message exactly as it is shown to the user.
type Fault struct {
	Kind FaultKind
	Msg  string
}

func (f *Fault) Error() string {
	if f == nil {
		return "<nil>"
	}
	return f.Msg
}

func (f *Fault) Is(target error) bool {
	if f == nil {
		return false
	}
	switch target {
	case ErrInput:
		return f.Kind == KindInput
	case ErrPlacement:
		return f.Kind == KindPlacement
	case ErrExecution:
		return f.Kind == KindExecution
	}
	return false
}

func fault(kind FaultKind, msg string) *Fault {
	return &Fault{Kind: kind, Msg: msg}
}
