package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/club-events-service/internal/domain"
	"github.com/spec-kit/club-events-service/internal/events"
)

type stubAnnouncementRepo struct {
	items  []domain.Announcement
	nextID int64
}

func (r *stubAnnouncementRepo) Create(_ context.Context, announcement *domain.Announcement) error {
	r.nextID++
	announcement.ID = r.nextID
	announcement.CreatedAt = time.Now()
	r.items = append(r.items, *announcement)
	return nil
}

func (r *stubAnnouncementRepo) List(_ context.Context) ([]domain.Announcement, error) {
	listed := make([]domain.Announcement, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		listed = append(listed, r.items[i])
	}
	return listed, nil
}

func (r *stubAnnouncementRepo) ListByAdminUsername(_ context.Context, username string) ([]domain.Announcement, error) {
	listed := make([]domain.Announcement, 0)
	for _, item := range r.items {
		if item.CreatedBy == username {
			listed = append(listed, item)
		}
	}
	return listed, nil
}

func TestAnnouncementService_Create(t *testing.T) {
	repo := &stubAnnouncementRepo{}
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventAnnouncementPublished, func(_ context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	svc := NewAnnouncementService(repo, noCache(), dispatcher)
	created, err := svc.Create(context.Background(), 1, "alice", AnnouncementCreateInput{
		Description: "Registrations open next week",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.Len(t, published, 1)
	assert.Equal(t, events.EventAnnouncementPublished, published[0].Type)
}

func TestAnnouncementService_Create_MissingDescription(t *testing.T) {
	svc := NewAnnouncementService(&stubAnnouncementRepo{}, noCache(), events.NewInMemoryDispatcher())

	_, err := svc.Create(context.Background(), 1, "alice", AnnouncementCreateInput{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestAnnouncementService_List_NewestFirst(t *testing.T) {
	repo := &stubAnnouncementRepo{}
	svc := NewAnnouncementService(repo, noCache(), events.NewInMemoryDispatcher())

	for _, desc := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), 1, "alice", AnnouncementCreateInput{Description: desc})
		require.NoError(t, err)
	}

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "third", listed[0].Description)
	assert.Equal(t, "first", listed[2].Description)
}
