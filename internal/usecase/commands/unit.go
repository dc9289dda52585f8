package commands

import (
	"context"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/unit"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidUnitData  = errs.New("invalid unit data")
	ErrDuplicateUnit    = errs.New("unit name already taken")
	ErrUnitUpdateFailed = errs.New("unit update failed")
)

type CreateUnitInput struct {
	Name     string
	Capacity int32
}

type CreateBlackoutInput struct {
	UnitID    uuid.UUID
	SlotStart time.Time
	SlotEnd   time.Time
	Reason    string
}

type UnitCommands interface {
	Create(ctx context.Context, input CreateUnitInput) (uuid.UUID, error)
	// SetActive reports false when the unit does not exist.
	SetActive(ctx context.Context, unitID uuid.UUID, active bool) (bool, error)
	CreateBlackout(ctx context.Context, input CreateBlackoutInput) (uuid.UUID, error)
	DeleteBlackout(ctx context.Context, blackoutID uuid.UUID) (bool, error)
}

type unitCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUnitCommands(uow shared.UnitOfWork) UnitCommands {
	return &unitCommandsImpl{uow: uow}
}

func (u *unitCommandsImpl) Create(ctx context.Context, input CreateUnitInput) (uuid.UUID, error) {
	entity, err := unit.NewUnit(uuid.New(), input.Name, input.Capacity, true)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUnitData)
	}

	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Units().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateUnit)
		}
		return uuid.Nil, errs.Mark(err, ErrUnitUpdateFailed)
	}

	return id, nil
}

func (u *unitCommandsImpl) SetActive(ctx context.Context, unitID uuid.UUID, active bool) (bool, error) {
	var found bool
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		found, err = tx.Units().SetActive(ctx, tx.DB(), unitID, active)
		return err
	})
	if err != nil {
		return false, errs.Mark(err, ErrUnitUpdateFailed)
	}
	return found, nil
}

func (u *unitCommandsImpl) CreateBlackout(ctx context.Context, input CreateBlackoutInput) (uuid.UUID, error) {
	slot, err := booking.NewTimeSlot(input.SlotStart, input.SlotEnd)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUnitData)
	}

	entity, err := unit.NewBlackout(input.UnitID, slot, input.Reason)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUnitData)
	}

	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Units().CreateBlackout(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, ErrUnitNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrUnitUpdateFailed)
	}

	return id, nil
}

func (u *unitCommandsImpl) DeleteBlackout(ctx context.Context, blackoutID uuid.UUID) (bool, error) {
	var found bool
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		found, err = tx.Units().DeleteBlackout(ctx, tx.DB(), blackoutID)
		return err
	})
	if err != nil {
		return false, errs.Mark(err, ErrUnitUpdateFailed)
	}
	return found, nil
}
