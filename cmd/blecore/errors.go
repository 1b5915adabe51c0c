package main

import (
	"errors"
	"fmt"

	"github.com/srg/blecore/pkg/att"
)

// Command-level errors
var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrUnknownTable    = errors.New("unknown attribute table")
	ErrHandleSyntax    = errors.New("malformed handle")
)

// FormatUserError turns library errors into messages for the terminal.
func FormatUserError(err error) string {
	var layout *att.LayoutError
	switch {
	case errors.As(err, &layout):
		return fmt.Sprintf("attribute table is malformed at %s: %s", layout.Handle, layout.Reason)
	case errors.Is(err, att.ErrAttributeNotFound):
		return "no attribute in the requested handle range"
	case errors.Is(err, att.ErrUnsupportedGroupType):
		return "the table does not group attributes by that type"
	}
	return err.Error()
}
