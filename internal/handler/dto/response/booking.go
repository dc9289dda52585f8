package response

import "studio-booking/internal/usecase/queries"

type BookingResponse struct {
	*queries.BookingView
}

type BookingListResponse struct {
	Bookings   []*queries.BookingListItem `json:"bookings"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

func ToBookingResponse(v *queries.BookingView) BookingResponse {
	return BookingResponse{BookingView: v}
}

func ToBookingListResponse(items []*queries.BookingListItem, next *queries.Cursor) BookingListResponse {
	resp := BookingListResponse{Bookings: items}
	if resp.Bookings == nil {
		resp.Bookings = []*queries.BookingListItem{}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
