package store

import "errors"

var (
	// ErrDuplicateStudent is returned when registering an index that is already on the roster.
	ErrDuplicateStudent = errors.New("student with this index already exists")
	// ErrNoStudents is returned when a session is created before anyone is registered.
	ErrNoStudents = errors.New("no students registered")
	// ErrInvalidSelection is returned for a session number outside 1..len(sessions).
	ErrInvalidSelection = errors.New("invalid session selection")
	// ErrNoSessions is returned by session lookups while no session exists yet.
	ErrNoSessions = errors.New("no sessions available")
)
