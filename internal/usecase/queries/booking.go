package queries

import (
	"context"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingAccessDenied = errs.New("booking access denied")
	ErrInvalidCursor       = errs.New("invalid cursor")
)

// Viewer carries the caller identity plus the one read-side privilege
// that matters here.
type Viewer struct {
	UserID     uuid.UUID
	CanViewAny bool
}

type BookingQueries interface {
	GetByID(ctx context.Context, viewer Viewer, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, after KeysetPosition, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, viewer Viewer, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if view.UserID != viewer.UserID && !viewer.CanViewAny {
		// Indistinguishable from absent to non-owners.
		return nil, ErrBookingNotFound
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	validLimit := int32(ValidateLimit(limit))

	var (
		items []*BookingListItem
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.readStore.FindByUserFirstPage(ctx, userID, validLimit)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.readStore.FindByUserKeyset(ctx, userID, KeysetPosition{At: lastCreatedAt, ID: lastID}, validLimit)
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
