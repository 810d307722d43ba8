package repository

import "github.com/lib/pq"

// Postgres error codes we translate into domain sentinels. Constraint
// violations surfaced here are the authority for relation uniqueness; the
// application-level pre-checks exist only for friendlier fast paths.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isUniqueViolation reports whether err is a Postgres unique violation,
// optionally on a specific constraint.
func isUniqueViolation(err error, constraint string) bool {
	pqErr, ok := err.(*pq.Error)
	if !ok || pqErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || string(pqErr.Constraint) == constraint
}

// isForeignKeyViolation reports whether err is a Postgres foreign key
// violation, optionally on a specific constraint.
func isForeignKeyViolation(err error, constraint string) bool {
	pqErr, ok := err.(*pq.Error)
	if !ok || pqErr.Code != pgForeignKeyViolation {
		return false
	}
	return constraint == "" || string(pqErr.Constraint) == constraint
}
