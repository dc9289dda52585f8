package response

import "studio-booking/internal/usecase/queries"

type AvailabilityResponse struct {
	Buckets []queries.CapacityRow `json:"buckets"`
}

type OffersResponse struct {
	Offers []queries.SlotOffer `json:"offers"`
}

func ToAvailabilityResponse(rows []queries.CapacityRow) AvailabilityResponse {
	if rows == nil {
		rows = []queries.CapacityRow{}
	}
	return AvailabilityResponse{Buckets: rows}
}

func ToOffersResponse(offers []queries.SlotOffer) OffersResponse {
	if offers == nil {
		offers = []queries.SlotOffer{}
	}
	return OffersResponse{Offers: offers}
}
