package request

import "time"

// WindowQuery is shared by availability, offers, density and blackout
// listings. Both endpoints are required; defaults would silently change
// what a cached client URL means.
type WindowQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type ListQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit"`
}
