//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"studio-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Accounts inserted by SeedReferenceData. All share SeedPassword.
const (
	SeedAdminEmail  = "admin@example.com"
	SeedStaffEmail  = "staff@example.com"
	SeedMemberEmail = "member@example.com"
	SeedPassword    = "password123"
)

var (
	seedHashOnce sync.Once
	seedHash     string
	seedHashErr  error
)

// No bcrypt CLI is assumed on the test machine, so the fixture hash is
// produced once per process through the same code path production uses.
func seedPasswordHash() (string, error) {
	seedHashOnce.Do(func() {
		seedHash, seedHashErr = password.HashPassword(SeedPassword)
	})
	return seedHash, seedHashErr
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	hash, err := seedPasswordHash()
	require.NoError(t, err)

	accessCode := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, role, access_code, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (email) WHERE is_active DO NOTHING`,
		userID, email, hash, role, accessCode)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestUnit(t *testing.T, db DBLike, name string, capacity int32) uuid.UUID {
	t.Helper()

	unitID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO units (id, name, capacity) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
		unitID, name, capacity)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM units WHERE name = $1", name).Scan(&unitID)
	}

	return unitID
}

// GrantCredits appends a purchase transaction; the balance trigger keeps
// credit_balances in sync.
func GrantCredits(t *testing.T, db DBLike, userID uuid.UUID, amountCents int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO credit_transactions (user_id, amount_cents, kind, note) VALUES ($1, $2, 'purchase', 'test top-up')",
		userID, amountCents)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	hash, err := seedPasswordHash()
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO units (name, capacity) VALUES
		    ('Studio A', 2),
		    ('Studio B', 1)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (email, password_hash, role, access_code) VALUES
		    ($1, $4, 'admin',  'adm00001'),
		    ($2, $4, 'staff',  'stf00001'),
		    ($3, $4, 'member', 'mem00001')
		ON CONFLICT (email) WHERE is_active DO NOTHING;
	`, SeedAdminEmail, SeedStaffEmail, SeedMemberEmail, hash)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
