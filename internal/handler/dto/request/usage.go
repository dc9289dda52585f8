package request

import (
	"time"

	"github.com/google/uuid"
)

// UsageReportRequest carries cumulative counters as reported by the
// device, never deltas.
type UsageReportRequest struct {
	UserID     uuid.UUID `json:"user_id" binding:"required"`
	Copies     int64     `json:"copies" binding:"min=0"`
	Stencils   int64     `json:"stencils" binding:"min=0"`
	ReportedAt time.Time `json:"reported_at" binding:"required"`
}

type UsageBatchRequest struct {
	Reports []UsageReportRequest `json:"reports" binding:"required,min=1,dive"`
}
