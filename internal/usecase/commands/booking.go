package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/notifier"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/offertoken"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnitNotFound        = errs.New("unit not found")
	ErrUnitInactive        = errs.New("unit is not active")
	ErrInvalidSlot         = errs.New("invalid slot")
	ErrSlotUnavailable     = errs.New("slot is no longer available")
	ErrInsufficientBalance = errs.New("insufficient credit balance")
	ErrOfferInvalid        = errs.New("offer is invalid")
	ErrOfferExpired        = errs.New("offer has expired")
	ErrBookingFailed       = errs.New("booking failed")
)

// RedeemOfferInput carries the offer fields back verbatim. Verification
// compares them byte-for-byte against what was signed.
type RedeemOfferInput struct {
	UnitID     uuid.UUID
	SlotStart  time.Time
	SlotEnd    time.Time
	PriceCents int64
	Signature  string
}

type BookingCommands interface {
	RedeemOffer(ctx context.Context, userID uuid.UUID, input RedeemOfferInput) (*queries.BookingView, error)
	BookCustomRange(ctx context.Context, userID, unitID uuid.UUID, slotStart, slotEnd time.Time) (*queries.BookingView, error)
	// Cancel reports false, without error, when the booking is missing,
	// foreign or already canceled.
	Cancel(ctx context.Context, userID, bookingID uuid.UUID) (bool, error)
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	signer    *offertoken.Signer
	pricer    booking.PriceCalculator
	readStore queries.BookingReadStore
	notifier  notifier.AccessNotifier
	clock     clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	signer *offertoken.Signer,
	pricer booking.PriceCalculator,
	readStore queries.BookingReadStore,
	accessNotifier notifier.AccessNotifier,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		signer:    signer,
		pricer:    pricer,
		readStore: readStore,
		notifier:  accessNotifier,
		clock:     clk,
	}
}

func (b *bookingCommandsImpl) RedeemOffer(ctx context.Context, userID uuid.UUID, input RedeemOfferInput) (*queries.BookingView, error) {
	slot, err := booking.NewTimeSlot(input.SlotStart, input.SlotEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	if err := b.signer.Verify(input.Signature, input.UnitID, slot, input.PriceCents); err != nil {
		if errors.Is(err, offertoken.ErrExpiredOffer) {
			return nil, errs.Mark(err, ErrOfferExpired)
		}
		return nil, errs.Mark(err, ErrOfferInvalid)
	}

	// An unexpired offer stays redeemable even once its bucket has begun;
	// only the capacity re-check below can still turn it away.
	return b.book(ctx, userID, input.UnitID, slot, input.PriceCents)
}

func (b *bookingCommandsImpl) BookCustomRange(ctx context.Context, userID, unitID uuid.UUID, slotStart, slotEnd time.Time) (*queries.BookingView, error) {
	slot, err := booking.NewTimeSlot(slotStart, slotEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}
	if err := slot.ValidateFuture(b.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}
	if err := slot.ValidateSpan(booking.MaxWindowSpan); err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	price := b.pricer.CalculatePriceCents(unitID, slot)
	return b.book(ctx, userID, unitID, slot, price)
}

// maxLaneRetries bounds the reruns after a lost stacking-lane race. Each
// rerun needs at most one more committed winner to settle, so a handful
// of attempts covers realistic contention on small capacities.
const maxLaneRetries = 3

func (b *bookingCommandsImpl) book(ctx context.Context, userID, unitID uuid.UUID, slot booking.TimeSlot, priceCents int64) (*queries.BookingView, error) {
	entity, err := booking.NewBooking(unitID, userID, slot, priceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	// Balance gate, unit check, capacity re-check and insert share one
	// transaction: a unit deactivated mid-flight can never end up booked.
	var bookingID uuid.UUID
	attempt := func() error {
		return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := b.validateBalance(ctx, tx.Reads(), userID); err != nil {
				return err
			}
			if err := b.validateUnit(ctx, tx.Reads(), unitID); err != nil {
				return err
			}

			// Advisory re-check; the exclusion constraint below remains the
			// final arbiter under concurrency.
			remaining, err := tx.Reads().RemainingCapacity(ctx, unitID, slot)
			if err != nil {
				return err
			}
			if remaining <= 0 {
				return ErrSlotUnavailable
			}

			bookingID, err = tx.Bookings().Create(ctx, tx.DB(), entity)
			return err
		})
	}

	// A lost lane race reruns the whole transaction: the fresh snapshot
	// sees the winner's row and the insert selects the next free lane.
	// Genuine exhaustion terminates the loop through the capacity
	// re-check, which reports ErrSlotUnavailable before any insert.
	err = attempt()
	for retries := 0; retries < maxLaneRetries && infra.IsLaneRace(err); retries++ {
		err = attempt()
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotUnavailable):
			return nil, ErrSlotUnavailable
		case errors.Is(err, ErrInsufficientBalance),
			errors.Is(err, ErrUnitNotFound),
			errors.Is(err, ErrUnitInactive):
			return nil, err
		case infra.IsKind(err, infra.KindConflict):
			// Out of reruns, or a non-lane conflict such as the same user
			// redeeming one offer twice.
			return nil, errs.Mark(err, ErrSlotUnavailable)
		default:
			return nil, errs.Mark(err, ErrBookingFailed)
		}
	}

	b.notifyAccessGranted(ctx, bookingID)

	view, err := b.readStore.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) validateBalance(ctx context.Context, reads shared.CommandReads, userID uuid.UUID) error {
	balance, err := reads.BalanceByUser(ctx, userID)
	if err != nil {
		return errs.Mark(err, ErrBookingFailed)
	}
	if balance < 0 {
		return ErrInsufficientBalance
	}
	return nil
}

func (b *bookingCommandsImpl) validateUnit(ctx context.Context, reads shared.CommandReads, unitID uuid.UUID) error {
	unitSnapshot, err := reads.UnitByID(ctx, unitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUnitNotFound
		}
		return errs.Mark(err, ErrBookingFailed)
	}
	if !unitSnapshot.IsActive {
		return ErrUnitInactive
	}
	return nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, userID, bookingID uuid.UUID) (bool, error) {
	var (
		canceled bool
		snapshot *shared.BookingAccessSnapshot
	)
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		canceled, err = tx.Bookings().Cancel(ctx, tx.DB(), bookingID, userID)
		if err != nil {
			return err
		}
		if canceled {
			snapshot, err = tx.Reads().BookingAccessByID(ctx, bookingID)
		}
		return err
	})
	if err != nil {
		return false, errs.Mark(err, ErrBookingFailed)
	}

	if canceled && snapshot != nil {
		event := notifier.AccessEvent{
			BookingID:  snapshot.ID,
			UnitID:     snapshot.UnitID,
			AccessCode: snapshot.AccessCode,
			SlotStart:  snapshot.Slot.Start(),
			SlotEnd:    snapshot.Slot.End(),
		}
		if notifyErr := b.notifier.AccessRevoked(ctx, event); notifyErr != nil {
			slog.Warn("failed to publish access revoked event",
				"booking_id", bookingID, "error", notifyErr.Error())
		}
	}

	return canceled, nil
}

// Best effort: access events must never fail the booking they describe.
func (b *bookingCommandsImpl) notifyAccessGranted(ctx context.Context, bookingID uuid.UUID) {
	snapshot, err := b.uow.CommandReads().BookingAccessByID(ctx, bookingID)
	if err != nil {
		slog.Warn("failed to load booking for access event",
			"booking_id", bookingID, "error", err.Error())
		return
	}

	event := notifier.AccessEvent{
		BookingID:  snapshot.ID,
		UnitID:     snapshot.UnitID,
		AccessCode: snapshot.AccessCode,
		SlotStart:  snapshot.Slot.Start(),
		SlotEnd:    snapshot.Slot.End(),
	}
	if err := b.notifier.AccessGranted(ctx, event); err != nil {
		slog.Warn("failed to publish access granted event",
			"booking_id", bookingID, "error", err.Error())
	}
}
