package readstore

import (
	"context"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreditViewQueries interface {
	GetCreditBalance(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	GetCreditHistoryFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCreditHistoryFirstPageParams) ([]sqlc.CreditTransaction, error)
	GetCreditHistoryKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCreditHistoryKeysetParams) ([]sqlc.CreditTransaction, error)
}

type CreditReadStore struct {
	queries CreditViewQueries
	db      sqlc.DBTX
}

func NewCreditReadStore(q *sqlc.Queries, db sqlc.DBTX) *CreditReadStore {
	return &CreditReadStore{
		queries: q,
		db:      db,
	}
}

// Balance reads the trigger-maintained cache; no ledger rows means zero.
func (r *CreditReadStore) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	balance, err := r.queries.GetCreditBalance(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read credit balance", err)
	}
	return balance, nil
}

func (r *CreditReadStore) HistoryFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.CreditEntryView, error) {
	rows, err := r.queries.GetCreditHistoryFirstPage(ctx, r.db, sqlc.GetCreditHistoryFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read credit history first page", err)
	}
	return toCreditEntryViews(rows), nil
}

func (r *CreditReadStore) HistoryKeyset(ctx context.Context, userID uuid.UUID, after queries.KeysetPosition, limit int32) ([]*queries.CreditEntryView, error) {
	rows, err := r.queries.GetCreditHistoryKeyset(ctx, r.db, sqlc.GetCreditHistoryKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(after.At),
		ID:        after.ID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read credit history keyset", err)
	}
	return toCreditEntryViews(rows), nil
}

func toCreditEntryViews(rows []sqlc.CreditTransaction) []*queries.CreditEntryView {
	result := make([]*queries.CreditEntryView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CreditEntryView{
			ID:          row.ID,
			AmountCents: row.AmountCents,
			Currency:    row.Currency,
			Kind:        row.Kind,
			BookingID:   pgconv.UUIDPtrFromPgtype(row.BookingID),
			PaymentID:   pgconv.StringPtrFromPgtype(row.PaymentID),
			Note:        row.Note,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
