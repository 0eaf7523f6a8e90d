package metrics

import (
	"errors"

	"github.com/Asutorufa/dlist/pkg/utils/list"
)

// failure reasons, the reason label of OperationFailedTotal
const (
	ReasonInvalidArgument = "invalid_argument"
	ReasonAnchorNotFound  = "anchor_not_found"
	ReasonUnknown         = "unknown"
)

// Reason maps a list error to its failure reason, nil maps to "".
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, list.ErrInvalidArgument):
		return ReasonInvalidArgument
	case errors.Is(err, list.ErrAnchorNotFound):
		return ReasonAnchorNotFound
	}
	return ReasonUnknown
}
