package usage

import (
	"errors"
	"time"
)

var ErrNegativeCounter = errors.New("reported counter cannot be negative")

type Counter string

const (
	CounterCopies   Counter = "copies"
	CounterStencils Counter = "stencils"
)

// Totals mirrors the per-user usage_totals row: the last observed cumulative
// counters, the cumulative amounts already billed, and the report timestamp.
type Totals struct {
	Copies         int64
	Stencils       int64
	CopiesBilled   int64
	StencilsBilled int64
	ReportedAt     time.Time
}

// Report is one externally sourced cumulative counter reading.
type Report struct {
	Copies     int64
	Stencils   int64
	ReportedAt time.Time
}

// Billable is the incremental amount to bill for this report.
type Billable struct {
	Copies   int64
	Stencils int64
}

func (b Billable) IsZero() bool {
	return b.Copies == 0 && b.Stencils == 0
}

// Reconcile converts a cumulative counter report into the unbilled delta.
//
// A counter lower than its last observed value means the external counter
// was reset (device replaced or serviced). Whatever ran up between the last
// report and the reset was never billed, so the bill becomes
// max(0, lastSeen-billed) plus the full post-reset reading. Each counter is
// reconciled independently; copies and stencils may reset at different
// times. Re-delivering the identical report yields a zero bill because the
// stored totals are overwritten with the reported counters.
func Reconcile(prev Totals, rep Report) (Billable, Totals, []Counter, error) {
	if rep.Copies < 0 || rep.Stencils < 0 {
		return Billable{}, Totals{}, nil, ErrNegativeCounter
	}

	var resets []Counter

	copiesBill, copiesBilled, copiesReset := reconcileCounter(prev.Copies, prev.CopiesBilled, rep.Copies)
	if copiesReset {
		resets = append(resets, CounterCopies)
	}

	stencilsBill, stencilsBilled, stencilsReset := reconcileCounter(prev.Stencils, prev.StencilsBilled, rep.Stencils)
	if stencilsReset {
		resets = append(resets, CounterStencils)
	}

	bill := Billable{Copies: copiesBill, Stencils: stencilsBill}
	next := Totals{
		Copies:         rep.Copies,
		Stencils:       rep.Stencils,
		CopiesBilled:   copiesBilled,
		StencilsBilled: stencilsBilled,
		ReportedAt:     rep.ReportedAt,
	}

	return bill, next, resets, nil
}

// reconcileCounter returns the amount to bill, the billed watermark after
// this report, and whether a reset was detected. The watermark always
// lands on the reported value so that the identical report re-delivered
// bills nothing, and a post-reset counter starts from a clean baseline.
func reconcileCounter(lastSeen, billed, reported int64) (int64, int64, bool) {
	if reported >= lastSeen {
		bill := reported - billed
		if bill < 0 {
			// billed can only exceed the counter on imported totals;
			// never emit a negative bill, never roll the watermark back
			return 0, billed, false
		}
		return bill, reported, false
	}

	unbilled := lastSeen - billed
	if unbilled < 0 {
		unbilled = 0
	}
	return unbilled + reported, reported, true
}
