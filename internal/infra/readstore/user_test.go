//go:build unit

package readstore

import (
	"context"
	"testing"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.User), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.User, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.User), args.Error(1)
}

func sampleUserRow() sqlc.User {
	return sqlc.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         "member",
		AccessCode:   "a1b2c3d4",
		IsActive:     true,
	}
}

func TestUserReadStoreFindByEmail(t *testing.T) {
	row := sampleUserRow()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.User
		mockError  error
		wantHash   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "found",
			email:      row.Email,
			mockReturn: row,
			wantHash:   row.PasswordHash,
		},
		{
			name:      "not found maps to KindNotFound",
			email:     "missing@example.com",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "other errors map to KindDBFailure",
			email:     row.Email,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, tt.email).
				Return(tt.mockReturn, tt.mockError)

			store := &UserReadStore{queries: mockQueries}
			view, hash, err := store.FindByEmail(context.Background(), tt.email)

			if tt.mockError != nil {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, view)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantHash, hash)
			assert.Equal(t, tt.mockReturn.ID, view.ID)
			assert.Equal(t, tt.mockReturn.Email, view.Email)
			assert.Equal(t, tt.mockReturn.Role, view.Role)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserReadStoreFindByID(t *testing.T) {
	row := sampleUserRow()

	t.Run("found", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).
			Return(row, nil)

		store := &UserReadStore{queries: mockQueries}
		view, err := store.FindByID(context.Background(), row.ID)

		assert.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.True(t, view.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.User{}, pgx.ErrNoRows)

		store := &UserReadStore{queries: mockQueries}
		_, err := store.FindByID(context.Background(), uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
