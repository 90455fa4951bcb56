package domain

import "time"

// Event is a club event published by an admin.
type Event struct {
	ID           int64
	Title        string
	Subtitle     string
	Description  string
	EventTime    time.Time
	Poster       string
	GformLink    string
	Location     string
	LocationLink string
	InstaLink    string
	CreatedByID  int64
	// CreatedBy is the publishing admin's username, populated on reads.
	CreatedBy string
	CreatedAt time.Time
}
