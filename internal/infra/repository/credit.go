package repository

import (
	"context"

	"studio-booking/internal/domain/credit"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CreditWriteQueries interface {
	InsertCreditTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCreditTransactionParams) (uuid.UUID, error)
}

type CreditRepository struct {
	queries CreditWriteQueries
}

func NewCreditRepository(queries *sqlc.Queries) *CreditRepository {
	return &CreditRepository{queries: queries}
}

// Append writes one ledger row. The balance upkeep happens in a database
// trigger atomically with the insert; a resulting negative balance raises
// a check violation that fails the whole transaction.
func (r *CreditRepository) Append(ctx context.Context, tx sqlc.DBTX, t *credit.Transaction) (uuid.UUID, error) {
	params := sqlc.InsertCreditTransactionParams{
		UserID:      t.UserID(),
		AmountCents: t.AmountCents(),
		Currency:    t.Currency(),
		Kind:        t.Kind().String(),
		BookingID:   pgconv.UUIDPtrToPgtype(t.BookingID()),
		PaymentID:   pgconv.StringPtrToPgtype(t.PaymentID()),
		Note:        t.Note(),
	}

	id, err := r.queries.InsertCreditTransaction(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to append credit transaction", err)
	}

	return id, nil
}
