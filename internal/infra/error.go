package infra

import (
	"errors"
	"log/slog"

	"studio-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	// KindConflict covers range-exclusion violations: the storage layer is
	// the final arbiter for overlapping confirmed bookings.
	KindConflict RepositoryErrorKind = "CONFLICT"
	// KindCheckViolation covers check-constraint failures, notably the
	// non-negative credit balance invariant.
	KindCheckViolation RepositoryErrorKind = "CHECK_VIOLATION"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeForeignKeyViolated = "23503"
	pgErrCodeExclusionViolation = "23P01"
	pgErrCodeCheckViolation     = "23514"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	} else if pgKind, ok := classifyPgError(err); ok {
		kind = pgKind
	}

	slog.Error("Repository error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classifyPgError(err error) (RepositoryErrorKind, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}

	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return KindDuplicateKey, true
	case pgErrCodeForeignKeyViolated:
		return KindForeignKeyViolated, true
	case pgErrCodeExclusionViolation:
		return KindConflict, true
	case pgErrCodeCheckViolation:
		return KindCheckViolation, true
	default:
		return "", false
	}
}

// constraintLaneExclusion is the per-lane exclusion constraint on
// confirmed bookings.
const constraintLaneExclusion = "bookings_no_overlap"

// IsLaneRace reports whether err is an exclusion violation on the
// stacking-lane constraint. Losing a lane race is transient: under read
// committed, two inserts can select the same lowest free lane before
// either commits, and a rerun against a fresh snapshot sees the winner's
// row and can select the next lane. Violations of any other constraint
// are not lane races and must not be rerun.
func IsLaneRace(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeExclusionViolation && pgErr.ConstraintName == constraintLaneExclusion
}
