package response

import "studio-booking/internal/usecase/queries"

type BalanceResponse struct {
	UserID       string `json:"user_id"`
	BalanceCents int64  `json:"balance_cents"`
	Currency     string `json:"currency"`
}

type CreditHistoryResponse struct {
	Entries    []*queries.CreditEntryView `json:"entries"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

func ToBalanceResponse(v *queries.BalanceView) BalanceResponse {
	return BalanceResponse{
		UserID:       v.UserID.String(),
		BalanceCents: v.BalanceCents,
		Currency:     "EUR",
	}
}

func ToCreditHistoryResponse(entries []*queries.CreditEntryView, next *queries.Cursor) CreditHistoryResponse {
	resp := CreditHistoryResponse{Entries: entries}
	if resp.Entries == nil {
		resp.Entries = []*queries.CreditEntryView{}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
