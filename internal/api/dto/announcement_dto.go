package dto

import (
	"time"

	"github.com/spec-kit/club-events-service/internal/domain"
)

// CreateAnnouncementRequest payload.
type CreateAnnouncementRequest struct {
	Description string `json:"description"`
	Poster      string `json:"poster"`
	InstaLink   string `json:"insta_link"`
	GformLink   string `json:"gform_link"`
}

// AnnouncementResponse response.
type AnnouncementResponse struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Poster      string     `json:"poster"`
	InstaLink   string     `json:"insta_link"`
	GformLink   string     `json:"gform_link"`
	CreatedBy   CreatorRef `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewAnnouncementResponse maps a domain announcement.
func NewAnnouncementResponse(announcement *domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          announcement.ID,
		Description: announcement.Description,
		Poster:      announcement.Poster,
		InstaLink:   announcement.InstaLink,
		GformLink:   announcement.GformLink,
		CreatedBy:   CreatorRef{Username: announcement.CreatedBy},
		CreatedAt:   announcement.CreatedAt,
	}
}

// NewAnnouncementResponseList maps a slice of domain announcements.
func NewAnnouncementResponseList(listed []domain.Announcement) []AnnouncementResponse {
	items := make([]AnnouncementResponse, 0, len(listed))
	for i := range listed {
		items = append(items, NewAnnouncementResponse(&listed[i]))
	}
	return items
}
