package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/club-events-service/internal/cache"
	"github.com/spec-kit/club-events-service/internal/domain"
	"github.com/spec-kit/club-events-service/internal/events"
	"github.com/spec-kit/club-events-service/internal/repository"
	apperrors "github.com/spec-kit/club-events-service/pkg/util"
)

const announcementPreviewLen = 80

// AnnouncementCreateInput carries admin-supplied announcement fields.
type AnnouncementCreateInput struct {
	Description string
	Poster      string
	InstaLink   string
	GformLink   string
}

// AnnouncementService manages announcement publication and listings.
type AnnouncementService struct {
	repo       repository.AnnouncementRepository
	listings   *cache.ListingCache
	dispatcher events.Dispatcher
}

// NewAnnouncementService builds the service.
func NewAnnouncementService(repo repository.AnnouncementRepository, listings *cache.ListingCache, dispatcher events.Dispatcher) *AnnouncementService {
	return &AnnouncementService{repo: repo, listings: listings, dispatcher: dispatcher}
}

// Create publishes a new announcement on behalf of the authenticated admin.
func (s *AnnouncementService) Create(ctx context.Context, adminID int64, adminUsername string, input AnnouncementCreateInput) (*domain.Announcement, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}

	announcement := &domain.Announcement{
		Description: input.Description,
		Poster:      input.Poster,
		InstaLink:   input.InstaLink,
		GformLink:   input.GformLink,
		CreatedByID: adminID,
		CreatedBy:   adminUsername,
	}
	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAnnouncementPublished,
			Actor:     events.Actor{AdminID: adminID, Username: adminUsername},
			Timestamp: time.Now(),
			Payload: events.AnnouncementPublishedPayload{
				AnnouncementID: announcement.ID,
				Preview:        preview(announcement.Description),
			},
		})
	}
	return announcement, nil
}

// List returns all announcements, newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]domain.Announcement, error) {
	var cached []domain.Announcement
	if s.listings.Get(ctx, cache.KeyAnnouncementsList, &cached) {
		return cached, nil
	}

	listed, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.listings.Set(ctx, cache.KeyAnnouncementsList, listed)
	return listed, nil
}

// ListByAdmin returns announcements published by the named admin.
func (s *AnnouncementService) ListByAdmin(ctx context.Context, username string) ([]domain.Announcement, error) {
	listed, err := s.repo.ListByAdminUsername(ctx, username)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return listed, nil
}

func preview(s string) string {
	if len(s) <= announcementPreviewLen {
		return s
	}
	return s[:announcementPreviewLen]
}
