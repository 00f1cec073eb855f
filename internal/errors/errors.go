package errors

import "errors"

var (
	// ErrInvalidCredential is returned when a bearer token is missing,
	// malformed, or fails signature/expiry verification.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrUnknownUser is returned when a token verifies but matches no user.
	ErrUnknownUser = errors.New("unknown user")
	// ErrNoInterviews is returned when the selector finds no attempt for
	// the requested role.
	ErrNoInterviews = errors.New("no interviews found")
	// ErrPending is returned when an attempt exists but the requested
	// derived data has not been produced yet. It drives the client
	// polling loop and is not a failure.
	ErrPending = errors.New("still processing")
	// ErrIndexOutOfRange is returned when an answer targets a question
	// index past the end of the question list.
	ErrIndexOutOfRange = errors.New("question index out of range")
	// ErrAlreadyFinalized is returned on writes to an attempt whose
	// feedback has been generated.
	ErrAlreadyFinalized = errors.New("interview already finalized")
	// ErrStoreUnavailable is returned when the record store cannot be
	// reached; fatal to the in-flight request.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrInvalidResume is returned when an uploaded resume is not a
	// readable PDF.
	ErrInvalidResume = errors.New("invalid resume")
)

// Is re-exports errors.Is so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
