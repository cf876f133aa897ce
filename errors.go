package mdlgraph

import "fmt"

// SyntaxError is the single error kind the parser raises. It carries the byte
// offset into the source at which the problem was detected, so callers can
// point an editor or diagnostic at the exact location. There is no recovery:
// the first SyntaxError aborts the parse and no partial Scene is returned.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("mdlgraph: syntax error at offset %d: %s", e.Offset, e.Message)
}

func newSyntaxError(offset int, format string, args ...interface{}) error {
	return &SyntaxError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}
