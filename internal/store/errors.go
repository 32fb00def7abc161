package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNameTaken is returned when an insert or replace fails because
	// another account already holds the requested display name.
	ErrAccountNameTaken = errors.New("account name already exists")

	// ErrAccountNotFound is returned when a query expected to match an
	// account record produces an empty result set.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrPostTitleTaken is returned when an insert or replace fails because
	// another post already holds the requested title.
	ErrPostTitleTaken = errors.New("post title already exists")

	// ErrPostNotFound is returned when a query expected to match a post
	// record produces an empty result set.
	ErrPostNotFound = errors.New("post was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
