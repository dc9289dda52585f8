package response

import "studio-booking/internal/usecase/queries"

type DensityResponse struct {
	UnitID   string            `json:"unit_id"`
	Capacity int32             `json:"capacity"`
	Segments []queries.Segment `json:"segments"`
}

func ToDensityResponse(t *queries.DensityTimeline) DensityResponse {
	segs := t.Segments
	if segs == nil {
		segs = []queries.Segment{}
	}
	return DensityResponse{
		UnitID:   t.UnitID.String(),
		Capacity: t.Capacity,
		Segments: segs,
	}
}
