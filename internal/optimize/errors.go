package optimize

import (
	"errors"
	"fmt"

	"content-optimizer/internal/optimize/textparse"
)

// ErrEmptyContent fails an analysis whose input is empty or whitespace-only.
// The alias keeps callers off the textparse package.
var ErrEmptyContent = textparse.ErrEmptyContent

// ErrInvalidTargetParameter rejects malformed target parameters before
// analysis begins; wrap with a field-specific message.
var ErrInvalidTargetParameter = errors.New("invalid target parameter")

// Stable machine error codes exposed in HTTP error envelopes.
const (
	ErrorCodeEmptyContent = "EMPTY_CONTENT"
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeInternal     = "INTERNAL_ERROR"
)

func invalidParam(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidTargetParameter, field, reason)
}
