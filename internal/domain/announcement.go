package domain

import "time"

// Announcement is a short admin-published notice without a scheduled time.
type Announcement struct {
	ID          int64
	Description string
	Poster      string
	InstaLink   string
	GformLink   string
	CreatedByID int64
	CreatedBy   string
	CreatedAt   time.Time
}
