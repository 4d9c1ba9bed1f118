package store

import "errors"

// Sentinel errors returned by repository methods. Callers should match them
// with [errors.Is].
var (
	// ErrLoginTaken is returned when a user with the same login already exists.
	ErrLoginTaken = errors.New("login already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when the user has not created a profile yet.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrNoEntries is returned when a save is attempted with an empty batch.
	ErrNoEntries = errors.New("no conversation entries provided")

	// ErrLocalSessionNotFound is returned by the client session store when
	// nobody is logged in.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrTransient marks driver errors that may succeed on a later attempt
	// (lost connection, serialization failure, deadlock).
	ErrTransient = errors.New("transient database error")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrPreparingStatement   = errors.New("failed to prepare statement")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
