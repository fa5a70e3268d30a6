package workspace

import "errors"

// Error classes surfaced by the workspace core. Specific failures wrap one of
// these so callers can classify with [errors.Is] without inspecting messages.
var (
	// ErrValidation marks failures detected locally before any gateway call
	// (e.g. an empty title on save).
	ErrValidation = errors.New("validation error")

	// ErrPersistence marks gateway calls that failed or returned an error
	// status. The workspace state is left as it was before the call.
	ErrPersistence = errors.New("persistence error")

	// ErrInvalidState marks operations invoked in a state that forbids them
	// (e.g. delete with no bound note, save while one is in flight).
	ErrInvalidState = errors.New("invalid state")
)

var (
	// ErrEmptyTitle is returned by Save when the draft title is blank.
	// No gateway call is made.
	ErrEmptyTitle = errors.New("title is required")

	// ErrNoBoundNote is returned by Delete when the buffer is in create mode.
	ErrNoBoundNote = errors.New("no note is bound to the editor")

	// ErrSaveInFlight is returned by Save when a previous save for the same
	// buffer has not settled yet.
	ErrSaveInFlight = errors.New("save already in progress")
)
