package errs

import (
	"errors"
)

// Domain outcomes of the request state machine and inventory accounting.
// They are terminal, caller-visible results: never retried automatically
// and never escalated. Anything else bubbling out of the repository is a
// persistence fault and stays eligible for caller-side retry.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInsufficientStock = errors.New("insufficient equipment quantity available")
	ErrForbidden         = errors.New("forbidden")
	ErrDuplicatePending  = errors.New("pending request for this equipment already exists")
	ErrInvalidRange      = errors.New("invalid quantity range")
	ErrDuplicateName     = errors.New("equipment with this name already exists")
	ErrDuplicateUser     = errors.New("username or email already taken")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
