package slidepath

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedGrid  = errors.New("malformed grid")
	ErrNoPath         = errors.New("no path found")
	ErrBudgetExceeded = errors.New("expansion budget exceeded")
)

// GridError describes why a grid or a pair of endpoints was rejected.
type GridError struct {
	Kind error
	Msg  string
}

func (e *GridError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *GridError) Unwrap() error { return e.Kind }

func malformedf(format string, args ...any) error {
	return &GridError{Kind: ErrMalformedGrid, Msg: fmt.Sprintf(format, args...)}
}
