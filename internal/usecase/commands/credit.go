package commands

import (
	"context"

	"studio-booking/internal/domain/credit"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransaction = errs.New("invalid credit transaction")
	ErrLedgerFailed       = errs.New("credit ledger operation failed")
)

type AppendCreditInput struct {
	UserID      uuid.UUID
	AmountCents int64
	Kind        credit.Kind
	BookingID   *uuid.UUID
	PaymentID   *string
	Note        string
}

type CreditCommands interface {
	// Append writes one ledger entry. Purchases and charges share the
	// path; a charge that would drive the balance negative is rejected
	// atomically by the storage trigger.
	Append(ctx context.Context, input AppendCreditInput) (uuid.UUID, error)
}

type creditCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCreditCommands(uow shared.UnitOfWork) CreditCommands {
	return &creditCommandsImpl{uow: uow}
}

func (c *creditCommandsImpl) Append(ctx context.Context, input AppendCreditInput) (uuid.UUID, error) {
	entity, err := credit.NewTransaction(
		input.UserID,
		input.AmountCents,
		input.Kind,
		input.BookingID,
		input.PaymentID,
		input.Note,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidTransaction)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Credits().Append(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindCheckViolation) {
			return uuid.Nil, errs.Mark(err, ErrInsufficientBalance)
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, ErrInvalidTransaction)
		}
		return uuid.Nil, errs.Mark(err, ErrLedgerFailed)
	}

	return id, nil
}
