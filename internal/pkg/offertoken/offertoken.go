// Package offertoken signs and verifies slot offers: time-limited,
// tamper-evident quotes binding an interval, a unit and a price. Offer
// tokens are a separate token type from session JWTs, with their own
// secret, so neither can stand in for the other.
package offertoken

import (
	"errors"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidOffer  = errors.New("invalid offer token")
	ErrExpiredOffer  = errors.New("offer has expired")
	ErrOfferMismatch = errors.New("offer does not match requested slot")
)

const offerTokenType = "slot_offer"

// Interval endpoints are bound as exact RFC3339Nano strings and compared
// byte-for-byte on verification.
const timeLayout = time.RFC3339Nano

type Claims struct {
	TokenType  string `json:"typ"`
	UnitID     string `json:"unit_id"`
	SlotStart  string `json:"slot_start"`
	SlotEnd    string `json:"slot_end"`
	PriceCents int64  `json:"price_cents"`
	jwt.RegisteredClaims
}

// Offer is the client-facing view of a signed slot quote.
type Offer struct {
	UnitID     uuid.UUID
	Slot       booking.TimeSlot
	PriceCents int64
	Signature  string
	ExpiresAt  time.Time
}

type Signer struct {
	secretKey []byte
	validity  time.Duration
	clock     clock.Clock
}

func NewSigner(secretKey string, validity time.Duration, clk clock.Clock) *Signer {
	return &Signer{
		secretKey: []byte(secretKey),
		validity:  validity,
		clock:     clk,
	}
}

func (s *Signer) Sign(unitID uuid.UUID, slot booking.TimeSlot, priceCents int64) (Offer, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.validity)

	claims := Claims{
		TokenType:  offerTokenType,
		UnitID:     unitID.String(),
		SlotStart:  slot.Start().Format(timeLayout),
		SlotEnd:    slot.End().Format(timeLayout),
		PriceCents: priceCents,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signature, err := token.SignedString(s.secretKey)
	if err != nil {
		return Offer{}, err
	}

	return Offer{
		UnitID:     unitID,
		Slot:       slot,
		PriceCents: priceCents,
		Signature:  signature,
		ExpiresAt:  expiresAt,
	}, nil
}

// Verify checks the signature and that every bound field matches the
// redemption request exactly. Any mismatch is a hard rejection.
func (s *Signer) Verify(signature string, unitID uuid.UUID, slot booking.TimeSlot, priceCents int64) error {
	token, err := jwt.ParseWithClaims(signature, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidOffer
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredOffer
		}
		return ErrInvalidOffer
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return ErrInvalidOffer
	}

	if claims.TokenType != offerTokenType {
		return ErrInvalidOffer
	}
	if claims.UnitID != unitID.String() {
		return ErrOfferMismatch
	}
	if claims.SlotStart != slot.Start().Format(timeLayout) {
		return ErrOfferMismatch
	}
	if claims.SlotEnd != slot.End().Format(timeLayout) {
		return ErrOfferMismatch
	}
	if claims.PriceCents != priceCents {
		return ErrOfferMismatch
	}

	return nil
}
