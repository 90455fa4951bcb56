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

// EventCreateInput carries admin-supplied event fields.
type EventCreateInput struct {
	Title        string
	Subtitle     string
	Description  string
	EventTime    time.Time
	Poster       string
	GformLink    string
	Location     string
	LocationLink string
	InstaLink    string
}

// EventService manages event publication and public listings.
type EventService struct {
	repo       repository.EventRepository
	listings   *cache.ListingCache
	dispatcher events.Dispatcher
}

// NewEventService builds the service.
func NewEventService(repo repository.EventRepository, listings *cache.ListingCache, dispatcher events.Dispatcher) *EventService {
	return &EventService{repo: repo, listings: listings, dispatcher: dispatcher}
}

// Create publishes a new event on behalf of the authenticated admin.
func (s *EventService) Create(ctx context.Context, adminID int64, adminUsername string, input EventCreateInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	if input.EventTime.IsZero() {
		return nil, apperrors.NewValidationError("date_time required", nil)
	}

	event := &domain.Event{
		Title:        input.Title,
		Subtitle:     input.Subtitle,
		Description:  input.Description,
		EventTime:    input.EventTime,
		Poster:       input.Poster,
		GformLink:    input.GformLink,
		Location:     input.Location,
		LocationLink: input.LocationLink,
		InstaLink:    input.InstaLink,
		CreatedByID:  adminID,
		CreatedBy:    adminUsername,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventEventPublished,
			Actor:     events.Actor{AdminID: adminID, Username: adminUsername},
			Timestamp: time.Now(),
			Payload: events.EventPublishedPayload{
				EventID:   event.ID,
				Title:     event.Title,
				EventTime: event.EventTime,
			},
		})
	}
	return event, nil
}

// List returns all events, newest event date first.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	var cached []domain.Event
	if s.listings.Get(ctx, cache.KeyEventsList, &cached) {
		return cached, nil
	}

	listed, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.listings.Set(ctx, cache.KeyEventsList, listed)
	return listed, nil
}

// Get returns a single event by id.
func (s *EventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return event, nil
}

// ListByAdmin returns events published by the named admin.
func (s *EventService) ListByAdmin(ctx context.Context, username string) ([]domain.Event, error) {
	listed, err := s.repo.ListByAdminUsername(ctx, username)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return listed, nil
}
