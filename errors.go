package scancontext

import (
	"fmt"
)

// ErrIndexOutOfRange indicates a node index outside [0, N) was passed to
// Descriptor.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
	cause error
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (have %d records)", e.Index, e.Len)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return e.cause }
