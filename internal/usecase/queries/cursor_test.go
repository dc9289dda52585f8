//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 10, 12, 34, 56, 789000000, time.UTC)
	id := uuid.New()

	encoded := queries.EncodeAfterCursor(at, id)
	gotAt, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	// Micros is the storage precision; finer fractions do not survive.
	assert.True(t, gotAt.Equal(at))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursorRejects(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{
			name:   "wrong version",
			cursor: base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.New().String())),
		},
		{
			name:   "missing separator",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:123456")),
		},
		{
			name:   "bad timestamp",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.New().String())),
		},
		{
			name:   "bad uuid",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, 200, queries.ValidateLimit(200))
	assert.Equal(t, 200, queries.ValidateLimit(10000))
}
