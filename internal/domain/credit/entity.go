package credit

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind    = errors.New("invalid transaction kind")
	ErrZeroAmount     = errors.New("transaction amount cannot be zero")
	ErrKindSignBroken = errors.New("transaction amount sign does not match kind")
)

// Transaction is one append-only ledger row. Amounts are signed cents;
// purchases are positive, usage charges negative.
type Transaction struct {
	id        uuid.UUID
	userID    uuid.UUID
	amount    int64
	currency  string
	kind      Kind
	bookingID *uuid.UUID
	paymentID *string
	note      string
	createdAt time.Time
}

func NewTransaction(userID uuid.UUID, amountCents int64, kind Kind, bookingID *uuid.UUID, paymentID *string, note string) (*Transaction, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if amountCents == 0 {
		return nil, ErrZeroAmount
	}
	if kind == KindPurchase && amountCents < 0 {
		return nil, ErrKindSignBroken
	}
	if kind == KindUsageCharge && amountCents > 0 {
		return nil, ErrKindSignBroken
	}

	return &Transaction{
		id:        uuid.New(),
		userID:    userID,
		amount:    amountCents,
		currency:  "EUR",
		kind:      kind,
		bookingID: bookingID,
		paymentID: paymentID,
		note:      note,
	}, nil
}

func (t *Transaction) ID() uuid.UUID         { return t.id }
func (t *Transaction) UserID() uuid.UUID     { return t.userID }
func (t *Transaction) AmountCents() int64    { return t.amount }
func (t *Transaction) Currency() string      { return t.currency }
func (t *Transaction) Kind() Kind            { return t.kind }
func (t *Transaction) BookingID() *uuid.UUID { return t.bookingID }
func (t *Transaction) PaymentID() *string    { return t.paymentID }
func (t *Transaction) Note() string          { return t.note }
func (t *Transaction) CreatedAt() time.Time  { return t.createdAt }
