package response

import "studio-booking/internal/usecase/queries"

type UnitListResponse struct {
	Units []*queries.UnitView `json:"units"`
}

type BlackoutListResponse struct {
	Blackouts []*queries.BlackoutView `json:"blackouts"`
}

func ToUnitListResponse(units []*queries.UnitView) UnitListResponse {
	if units == nil {
		units = []*queries.UnitView{}
	}
	return UnitListResponse{Units: units}
}

func ToBlackoutListResponse(blackouts []*queries.BlackoutView) BlackoutListResponse {
	if blackouts == nil {
		blackouts = []*queries.BlackoutView{}
	}
	return BlackoutListResponse{Blackouts: blackouts}
}
