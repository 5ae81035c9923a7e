package po

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMsgID is wrapped by ValidationError.
var ErrUnknownMsgID = errors.New("unknown msgid")

// ValidationError is returned when a bulk operation names a msgid that is
// not among the entries of the file. The file is left unchanged.
type ValidationError struct {
	Op      string
	Unknown []string
}

func (e *ValidationError) Error() string {
	quoted := make([]string, len(e.Unknown))
	for i, id := range e.Unknown {
		quoted[i] = fmt.Sprintf("%q", id)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrUnknownMsgID, strings.Join(quoted, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrUnknownMsgID
}
