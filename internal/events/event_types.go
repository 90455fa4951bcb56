package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEventPublished        EventType = "event_published"
	EventAnnouncementPublished EventType = "announcement_published"
)

// Actor identifies the admin who published content.
type Actor struct {
	AdminID  int64  `json:"admin_id"`
	Username string `json:"username"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EventPublishedPayload payload.
type EventPublishedPayload struct {
	EventID   int64     `json:"event_id"`
	Title     string    `json:"title"`
	EventTime time.Time `json:"event_time"`
}

// AnnouncementPublishedPayload payload.
type AnnouncementPublishedPayload struct {
	AnnouncementID int64  `json:"announcement_id"`
	Preview        string `json:"preview"`
}
