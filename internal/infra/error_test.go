//go:build unit

package infra

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErrClassifiesPgCodes(t *testing.T) {
	tests := []struct {
		name string
		code string
		want RepositoryErrorKind
	}{
		{name: "unique violation", code: "23505", want: KindDuplicateKey},
		{name: "foreign key violation", code: "23503", want: KindForeignKeyViolated},
		{name: "exclusion violation", code: "23P01", want: KindConflict},
		{name: "check violation", code: "23514", want: KindCheckViolation},
		{name: "unknown code falls back to db failure", code: "57014", want: KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("insert failed", &pgconn.PgError{Code: tt.code})
			assert.True(t, IsKind(err, tt.want))
		})
	}
}

func TestIsLaneRace(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "exclusion violation on the lane constraint",
			err:  &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"},
			want: true,
		},
		{
			name: "still detected through repository wrapping",
			err:  WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}),
			want: true,
		},
		{
			name: "self-overlap violations are not lane races",
			err:  &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_self_overlap"},
			want: false,
		},
		{
			name: "other codes are not lane races",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "bookings_no_overlap"},
			want: false,
		},
		{
			name: "plain errors are not lane races",
			err:  assert.AnError,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLaneRace(tt.err))
		})
	}
}
