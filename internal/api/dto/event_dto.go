package dto

import (
	"time"

	"github.com/spec-kit/club-events-service/internal/domain"
)

// CreateEventRequest payload.
type CreateEventRequest struct {
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Description  string    `json:"description"`
	DateTime     time.Time `json:"date_time"`
	Poster       string    `json:"poster"`
	GformLink    string    `json:"gform_link"`
	Location     string    `json:"location"`
	LocationLink string    `json:"location_link"`
	InstaLink    string    `json:"insta_link"`
}

// CreatorRef names the publishing admin.
type CreatorRef struct {
	Username string `json:"username"`
}

// EventResponse response.
type EventResponse struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Subtitle     string     `json:"subtitle"`
	Description  string     `json:"description"`
	DateTime     time.Time  `json:"date_time"`
	Poster       string     `json:"poster"`
	GformLink    string     `json:"gform_link"`
	Location     string     `json:"location"`
	LocationLink string     `json:"location_link"`
	InstaLink    string     `json:"insta_link"`
	CreatedBy    CreatorRef `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewEventResponse maps a domain event.
func NewEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Subtitle:     event.Subtitle,
		Description:  event.Description,
		DateTime:     event.EventTime,
		Poster:       event.Poster,
		GformLink:    event.GformLink,
		Location:     event.Location,
		LocationLink: event.LocationLink,
		InstaLink:    event.InstaLink,
		CreatedBy:    CreatorRef{Username: event.CreatedBy},
		CreatedAt:    event.CreatedAt,
	}
}

// NewEventResponseList maps a slice of domain events.
func NewEventResponseList(listed []domain.Event) []EventResponse {
	items := make([]EventResponse, 0, len(listed))
	for i := range listed {
		items = append(items, NewEventResponse(&listed[i]))
	}
	return items
}
