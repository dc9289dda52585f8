package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateUnitRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int32  `json:"capacity" binding:"required,min=1"`
}

type SetUnitActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type CreateBlackoutRequest struct {
	UnitID    uuid.UUID `json:"unit_id" binding:"required"`
	SlotStart time.Time `json:"slot_start" binding:"required"`
	SlotEnd   time.Time `json:"slot_end" binding:"required"`
	Reason    string    `json:"reason" binding:"required"`
}
