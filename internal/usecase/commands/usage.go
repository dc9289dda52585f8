package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio-booking/internal/domain/credit"
	"studio-booking/internal/domain/usage"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidReport = errs.New("invalid usage report")
	ErrStaleReport   = errs.New("usage report older than last reconciled report")
	ErrIngestFailed  = errs.New("usage ingestion failed")
)

// UsageRates prices one billable unit of each counter.
type UsageRates struct {
	CopyCents    int64
	StencilCents int64
}

type UsageReportInput struct {
	UserID     uuid.UUID
	Copies     int64
	Stencils   int64
	ReportedAt time.Time
}

type IngestResult struct {
	UserID         uuid.UUID
	BilledCopies   int64
	BilledStencils int64
	ChargedCents   int64
	Resets         []usage.Counter
}

// BatchRecordResult pairs each batch record with its own outcome; one bad
// record never poisons its neighbours.
type BatchRecordResult struct {
	UserID uuid.UUID
	Result *IngestResult
	Err    error
}

type UsageCommands interface {
	IngestReport(ctx context.Context, input UsageReportInput) (*IngestResult, error)
	IngestBatch(ctx context.Context, inputs []UsageReportInput) []BatchRecordResult
}

type usageCommandsImpl struct {
	uow   shared.UnitOfWork
	rates UsageRates
}

func NewUsageCommands(uow shared.UnitOfWork, rates UsageRates) UsageCommands {
	return &usageCommandsImpl{
		uow:   uow,
		rates: rates,
	}
}

// IngestReport reconciles one cumulative counter report and bills the
// unbilled delta, all in a single transaction: the totals row is locked,
// the charge is appended, resets are journaled and the totals are
// overwritten together or not at all.
func (u *usageCommandsImpl) IngestReport(ctx context.Context, input UsageReportInput) (*IngestResult, error) {
	result := &IngestResult{UserID: input.UserID}

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prev, err := tx.Usage().TotalsForUpdate(ctx, tx.DB(), input.UserID)
		if err != nil {
			return err
		}

		// Reports can arrive out of order; an older report must not be
		// mistaken for a counter reset.
		if !prev.ReportedAt.IsZero() && input.ReportedAt.Before(prev.ReportedAt) {
			return ErrStaleReport
		}

		rep := usage.Report{
			Copies:     input.Copies,
			Stencils:   input.Stencils,
			ReportedAt: input.ReportedAt,
		}
		bill, next, resets, err := usage.Reconcile(prev, rep)
		if err != nil {
			return errs.Mark(err, ErrInvalidReport)
		}

		var charged int64
		if !bill.IsZero() {
			var chargeErr error
			charged, chargeErr = u.appendCharge(ctx, tx, input.UserID, bill)
			if chargeErr != nil {
				return chargeErr
			}
		}

		for _, counter := range resets {
			lastSeen, billed, reported := counterValues(prev, rep, counter)
			if err := tx.Usage().RecordReset(ctx, tx.DB(), input.UserID, counter, lastSeen, billed, reported); err != nil {
				return err
			}
		}

		if err := tx.Usage().SaveTotals(ctx, tx.DB(), input.UserID, next); err != nil {
			return err
		}

		// The closure can rerun on a serialization retry; assign results
		// only once everything has succeeded.
		result.BilledCopies = bill.Copies
		result.BilledStencils = bill.Stencils
		result.ChargedCents = charged
		result.Resets = resets
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrStaleReport):
			return nil, ErrStaleReport
		case errors.Is(err, ErrInvalidReport):
			return nil, err
		case infra.IsKind(err, infra.KindCheckViolation):
			return nil, errs.Mark(err, ErrInsufficientBalance)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, ErrInvalidReport)
		default:
			return nil, errs.Mark(err, ErrIngestFailed)
		}
	}

	return result, nil
}

func (u *usageCommandsImpl) IngestBatch(ctx context.Context, inputs []UsageReportInput) []BatchRecordResult {
	results := make([]BatchRecordResult, len(inputs))
	for i, input := range inputs {
		res, err := u.IngestReport(ctx, input)
		results[i] = BatchRecordResult{
			UserID: input.UserID,
			Result: res,
			Err:    err,
		}
	}
	return results
}

func (u *usageCommandsImpl) appendCharge(ctx context.Context, tx shared.Tx, userID uuid.UUID, bill usage.Billable) (int64, error) {
	charged := bill.Copies*u.rates.CopyCents + bill.Stencils*u.rates.StencilCents
	if charged == 0 {
		return 0, nil
	}

	note := fmt.Sprintf("usage: %d copies, %d stencils", bill.Copies, bill.Stencils)
	entry, err := credit.NewTransaction(userID, -charged, credit.KindUsageCharge, nil, nil, note)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidReport)
	}

	if _, err := tx.Credits().Append(ctx, tx.DB(), entry); err != nil {
		return 0, err
	}
	return charged, nil
}

func counterValues(prev usage.Totals, rep usage.Report, counter usage.Counter) (lastSeen, billed, reported int64) {
	if counter == usage.CounterCopies {
		return prev.Copies, prev.CopiesBilled, rep.Copies
	}
	return prev.Stencils, prev.StencilsBilled, rep.Stencils
}
