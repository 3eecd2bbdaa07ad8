package services

import "errors"

// Failure classes surfaced to callers. Services wrap these with context via
// fmt.Errorf so handlers can branch with errors.Is.
var (
	// ErrNotFound: a referenced request, review, applicant or reviewer id
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState: the data is in a state the operation cannot act on,
	// e.g. an applicant with no department, or an approval by a role outside
	// the approval chain.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidArgument: the input itself is malformed, e.g. an unknown
	// decision or status value.
	ErrInvalidArgument = errors.New("invalid argument")
)
