package att

import (
	"errors"
	"fmt"
)

// Errors returned to ATT servers. Their names follow the ATT error codes
// they are usually mapped onto.
var (
	ErrInvalidHandle        = errors.New("invalid handle")
	ErrInvalidRange         = errors.New("invalid handle range")
	ErrAttributeNotFound    = errors.New("attribute not found")
	ErrUnsupportedGroupType = errors.New("unsupported group type")
)

// LayoutError reports an attribute table that breaks the handle layout
// invariant: contiguous, ascending handles starting at a non-zero base.
type LayoutError struct {
	Handle Handle
	Reason string
}

func (e *LayoutError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("attribute layout: handle %s: %s", e.Handle, e.Reason)
}
