//go:build e2e

package usage_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"studio-booking/internal/handler/dto/request"
	"studio-booking/internal/handler/dto/response"
	"studio-booking/tests/common/authtest"
	"studio-booking/tests/common/dbtest"
	"studio-booking/tests/common/httptest"
	"studio-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reportsURL = "/api/usage/reports"
	batchURL   = "/api/usage/reports/batch"
	balanceURL = "/api/credits/balance"
	historyURL = "/api/credits/history"
	creditsURL = "/api/credits"
)

type UsageSuite struct {
	e2e.SharedSuite
}

func (s *UsageSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestUsageSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(UsageSuite))
}

func (s *UsageSuite) memberID(t *testing.T) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := s.DB.QueryRow(context.Background(),
		"SELECT id FROM users WHERE email = $1", dbtest.SeedMemberEmail).Scan(&id)
	require.NoError(t, err)
	return id
}

func report(userID uuid.UUID, copies, stencils int64, at time.Time) request.UsageReportRequest {
	return request.UsageReportRequest{
		UserID:     userID,
		Copies:     copies,
		Stencils:   stencils,
		ReportedAt: at,
	}
}

func (s *UsageSuite) ingest(t *testing.T, token string, body request.UsageReportRequest) (*response.UsageIngestResponse, int) {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reportsURL, body, token)
	if w.Code != http.StatusOK {
		return nil, w.Code
	}
	var res response.UsageIngestResponse
	err := httptest.DecodeResponseBody(t, w.Body, &res)
	require.NoError(t, err)
	return &res, w.Code
}

func (s *UsageSuite) balanceOf(t *testing.T, token string) int64 {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, balanceURL, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res response.BalanceResponse
	err := httptest.DecodeResponseBody(t, w.Body, &res)
	require.NoError(t, err)
	return res.BalanceCents
}

// =============================================================================
// TestIngestReport - Cumulative counter reconciliation through the API
// =============================================================================

func (s *UsageSuite) TestIngestReport() {
	// Test config rates: 10 cents per copy, 150 cents per stencil.
	s.Run("Normal case: deltas are billed against the member balance", func() {
		t := s.T()

		memberID := s.memberID(t)
		dbtest.GrantCredits(t, s.DB, memberID, 10_000)

		staffToken := authtest.LoginUser(t, s.Router, dbtest.SeedStaffEmail, dbtest.SeedPassword)
		memberToken := authtest.LoginUser(t, s.Router, dbtest.SeedMemberEmail, dbtest.SeedPassword)

		base := time.Now().UTC().Add(-time.Hour)

		// First report bills everything read so far.
		res, code := s.ingest(t, staffToken, report(memberID, 100, 2, base))
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(100), res.BilledCopies)
		require.Equal(t, int64(2), res.BilledStencils)
		require.Equal(t, int64(100*10+2*150), res.ChargedCents)
		require.Empty(t, res.Resets)
		require.Equal(t, int64(10_000-1300), s.balanceOf(t, memberToken))

		// Later report bills only the delta.
		res, code = s.ingest(t, staffToken, report(memberID, 130, 2, base.Add(10*time.Minute)))
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(30), res.BilledCopies)
		require.Equal(t, int64(0), res.BilledStencils)
		require.Equal(t, int64(300), res.ChargedCents)

		// Identical redelivery bills nothing and appends no ledger row.
		res, code = s.ingest(t, staffToken, report(memberID, 130, 2, base.Add(10*time.Minute)))
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(0), res.ChargedCents)
		require.Equal(t, int64(10_000-1300-300), s.balanceOf(t, memberToken))

		hw := httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, memberToken)
		require.Equal(t, http.StatusOK, hw.Code)
		var history response.CreditHistoryResponse
		err := httptest.DecodeResponseBody(t, hw.Body, &history)
		require.NoError(t, err)
		require.Len(t, history.Entries, 3, "one purchase and two usage charges")
	})

	s.Run("Normal case: counter reset bills remainder plus new reading", func() {
		t := s.T()

		memberID := s.memberID(t)
		dbtest.GrantCredits(t, s.DB, memberID, 10_000)
		staffToken := authtest.LoginUser(t, s.Router, dbtest.SeedStaffEmail, dbtest.SeedPassword)

		base := time.Now().UTC().Add(-time.Hour)
		_, code := s.ingest(t, staffToken, report(memberID, 50, 0, base))
		require.Equal(t, http.StatusOK, code)

		// Device was swapped: the counter dropped from 50 to 40.
		res, code := s.ingest(t, staffToken, report(memberID, 40, 0, base.Add(time.Minute)))
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(40), res.BilledCopies, "reset bills the fresh reading")
		require.Contains(t, res.Resets, "copies")

		// The watermark moved to the reported value.
		res, code = s.ingest(t, staffToken, report(memberID, 90, 0, base.Add(2*time.Minute)))
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(50), res.BilledCopies)
	})

	s.Run("Error case: reports older than the watermark conflict", func() {
		t := s.T()

		memberID := s.memberID(t)
		dbtest.GrantCredits(t, s.DB, memberID, 10_000)
		staffToken := authtest.LoginUser(t, s.Router, dbtest.SeedStaffEmail, dbtest.SeedPassword)

		base := time.Now().UTC().Add(-time.Hour)
		_, code := s.ingest(t, staffToken, report(memberID, 50, 0, base))
		require.Equal(t, http.StatusOK, code)

		_, code = s.ingest(t, staffToken, report(memberID, 60, 0, base.Add(-time.Minute)))
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("Error case: charge beyond the balance is rejected atomically", func() {
		t := s.T()

		memberID := s.memberID(t)
		dbtest.GrantCredits(t, s.DB, memberID, 100) // covers 10 copies
		staffToken := authtest.LoginUser(t, s.Router, dbtest.SeedStaffEmail, dbtest.SeedPassword)
		memberToken := authtest.LoginUser(t, s.Router, dbtest.SeedMemberEmail, dbtest.SeedPassword)

		base := time.Now().UTC().Add(-time.Hour)
		_, code := s.ingest(t, staffToken, report(memberID, 50, 0, base))
		require.Equal(t, http.StatusPaymentRequired, code)

		// The whole ingestion rolled back: nothing billed, watermark intact.
		require.Equal(t, int64(100), s.balanceOf(t, memberToken))
		res, code := s.ingest(t, staffToken, report(memberID, 10, 0, base.Add(time.Minute)))
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(10), res.BilledCopies, "earlier failed report must leave no totals behind")
	})

	s.Run("Auth test - members cannot ingest usage", func() {
		t := s.T()

		memberToken := authtest.LoginUser(t, s.Router, dbtest.SeedMemberEmail, dbtest.SeedPassword)
		body := report(s.memberID(t), 1, 0, time.Now().UTC())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reportsURL, body, memberToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestIngestBatch - Per-record failure isolation
// =============================================================================

func (s *UsageSuite) TestIngestBatch() {
	s.Run("Normal case: one bad record does not poison the batch", func() {
		t := s.T()

		memberID := s.memberID(t)
		dbtest.GrantCredits(t, s.DB, memberID, 10_000)
		staffToken := authtest.LoginUser(t, s.Router, dbtest.SeedStaffEmail, dbtest.SeedPassword)

		now := time.Now().UTC()
		body := request.UsageBatchRequest{
			Reports: []request.UsageReportRequest{
				report(memberID, 10, 0, now.Add(-time.Hour)),
				report(uuid.New(), 5, 0, now.Add(-time.Hour)), // unknown user, FK failure
				report(memberID, 20, 0, now.Add(-30*time.Minute)),
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, batchURL, body, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.UsageBatchResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.Len(t, res.Results, 3)

		require.NotNil(t, res.Results[0].Result)
		require.Equal(t, int64(100), res.Results[0].Result.ChargedCents)
		require.NotEmpty(t, res.Results[1].Error, "unknown user must fail its own record")
		require.NotNil(t, res.Results[2].Result)
		require.Equal(t, int64(100), res.Results[2].Result.ChargedCents, "10 additional copies")
	})
}

// =============================================================================
// TestAppendCredit - Admin ledger writes
// =============================================================================

func (s *UsageSuite) TestAppendCredit() {
	s.Run("Normal case: admin tops up a member", func() {
		t := s.T()

		memberID := s.memberID(t)
		adminToken := authtest.LoginUser(t, s.Router, dbtest.SeedAdminEmail, dbtest.SeedPassword)
		memberToken := authtest.LoginUser(t, s.Router, dbtest.SeedMemberEmail, dbtest.SeedPassword)

		body := request.AppendCreditRequest{
			UserID:      memberID,
			AmountCents: 5_000,
			Kind:        "purchase",
			Note:        "counter top-up",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, creditsURL, body, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		require.Equal(t, int64(5_000), s.balanceOf(t, memberToken))
	})

	s.Run("Error case: adjustment below the balance is rejected", func() {
		t := s.T()

		memberID := s.memberID(t)
		dbtest.GrantCredits(t, s.DB, memberID, 1_000)
		adminToken := authtest.LoginUser(t, s.Router, dbtest.SeedAdminEmail, dbtest.SeedPassword)

		body := request.AppendCreditRequest{
			UserID:      memberID,
			AmountCents: -2_000,
			Kind:        "adjustment",
			Note:        "correction",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, creditsURL, body, adminToken)
		require.Equal(t, http.StatusPaymentRequired, w.Code, w.Body.String())
	})

	s.Run("Concurrency: the balance converges to the sum of accepted writes", func() {
		t := s.T()

		memberID := s.memberID(t)
		adminToken := authtest.LoginUser(t, s.Router, dbtest.SeedAdminEmail, dbtest.SeedPassword)
		memberToken := authtest.LoginUser(t, s.Router, dbtest.SeedMemberEmail, dbtest.SeedPassword)

		// Mixed top-ups and debits starting from zero: some debits must
		// lose to the non-negative balance rule, depending on ordering.
		amounts := []int64{100, 100, 100, 100, 100, 100, -80, -80, -80, -80, -80, -80}
		payloads := make([][]byte, len(amounts))
		for i, amount := range amounts {
			kind := "purchase"
			if amount < 0 {
				kind = "adjustment"
			}
			payload, err := json.Marshal(request.AppendCreditRequest{
				UserID:      memberID,
				AmountCents: amount,
				Kind:        kind,
				Note:        "concurrent write",
			})
			require.NoError(t, err)
			payloads[i] = payload
		}

		type outcome struct {
			amount int64
			code   int
		}

		// Requests run on plain goroutines; assertions stay on the test
		// goroutine.
		outcomes := make(chan outcome, len(amounts))
		var wg sync.WaitGroup
		for i := range amounts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				req := nethttptest.NewRequest(http.MethodPost, creditsURL, bytes.NewReader(payloads[i]))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+adminToken)
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)
				outcomes <- outcome{amount: amounts[i], code: w.Code}
			}(i)
		}
		wg.Wait()
		close(outcomes)

		var accepted int64
		var acceptedCount int
		for out := range outcomes {
			switch out.code {
			case http.StatusCreated:
				accepted += out.amount
				acceptedCount++
			case http.StatusPaymentRequired:
				require.Negative(t, out.amount, "only debits may be rejected")
			default:
				t.Fatalf("unexpected status %d", out.code)
			}
		}
		require.GreaterOrEqual(t, accepted, int64(0))
		require.Equal(t, accepted, s.balanceOf(t, memberToken))

		// Every accepted write left exactly one ledger row.
		var rows int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM credit_transactions WHERE user_id = $1", memberID).Scan(&rows)
		require.NoError(t, err)
		require.Equal(t, acceptedCount, rows)
	})

	s.Run("Auth test - staff cannot write the ledger", func() {
		t := s.T()

		staffToken := authtest.LoginUser(t, s.Router, dbtest.SeedStaffEmail, dbtest.SeedPassword)
		body := request.AppendCreditRequest{
			UserID:      s.memberID(t),
			AmountCents: 1_000,
			Kind:        "purchase",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, creditsURL, body, staffToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
