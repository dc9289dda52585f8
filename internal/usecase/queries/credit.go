package queries

import (
	"context"

	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreditQueries interface {
	// Balance reads the trigger-maintained cache; users with no ledger
	// activity report zero.
	Balance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
	History(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*CreditEntryView, *Cursor, error)
}

type CreditReadStore interface {
	Balance(ctx context.Context, userID uuid.UUID) (int64, error)
	HistoryFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*CreditEntryView, error)
	HistoryKeyset(ctx context.Context, userID uuid.UUID, after KeysetPosition, limit int32) ([]*CreditEntryView, error)
}

type creditQueriesImpl struct {
	readStore CreditReadStore
}

func NewCreditQueries(readStore CreditReadStore) CreditQueries {
	return &creditQueriesImpl{readStore: readStore}
}

func (q *creditQueriesImpl) Balance(ctx context.Context, userID uuid.UUID) (*BalanceView, error) {
	balance, err := q.readStore.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &BalanceView{UserID: userID, BalanceCents: balance}, nil
}

func (q *creditQueriesImpl) History(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*CreditEntryView, *Cursor, error) {
	validLimit := int32(ValidateLimit(limit))

	var (
		items []*CreditEntryView
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.readStore.HistoryFirstPage(ctx, userID, validLimit)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.readStore.HistoryKeyset(ctx, userID, KeysetPosition{At: lastCreatedAt, ID: lastID}, validLimit)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if int32(len(items)) == validLimit {
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}

	return items, next, nil
}
