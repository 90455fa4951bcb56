package service

import (
	"context"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/club-events-service/internal/cache"
	"github.com/spec-kit/club-events-service/internal/domain"
	"github.com/spec-kit/club-events-service/internal/events"
)

type stubEventRepo struct {
	items  []domain.Event
	nextID int64
}

func (r *stubEventRepo) Create(_ context.Context, event *domain.Event) error {
	r.nextID++
	event.ID = r.nextID
	event.CreatedAt = time.Now()
	r.items = append(r.items, *event)
	return nil
}

func (r *stubEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			clone := r.items[i]
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubEventRepo) List(_ context.Context) ([]domain.Event, error) {
	listed := append([]domain.Event{}, r.items...)
	sort.Slice(listed, func(i, j int) bool {
		return listed[i].EventTime.After(listed[j].EventTime)
	})
	return listed, nil
}

func (r *stubEventRepo) ListByAdminUsername(_ context.Context, username string) ([]domain.Event, error) {
	listed := make([]domain.Event, 0)
	for _, item := range r.items {
		if item.CreatedBy == username {
			listed = append(listed, item)
		}
	}
	return listed, nil
}

func noCache() *cache.ListingCache {
	return cache.NewListingCache(nil, time.Minute, zap.NewNop())
}

func TestEventService_Create(t *testing.T) {
	repo := &stubEventRepo{}
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventEventPublished, func(_ context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	svc := NewEventService(repo, noCache(), dispatcher)
	created, err := svc.Create(context.Background(), 1, "alice", EventCreateInput{
		Title:     "CTF Kickoff",
		EventTime: time.Now().Add(48 * time.Hour),
		Location:  "Main Hall",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.CreatedBy)

	require.Len(t, published, 1)
	assert.Equal(t, events.EventEventPublished, published[0].Type)
	assert.Equal(t, "alice", published[0].Actor.Username)
}

func TestEventService_Create_MissingFields(t *testing.T) {
	svc := NewEventService(&stubEventRepo{}, noCache(), events.NewInMemoryDispatcher())

	_, err := svc.Create(context.Background(), 1, "alice", EventCreateInput{EventTime: time.Now()})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = svc.Create(context.Background(), 1, "alice", EventCreateInput{Title: "No Date"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestEventService_List_OrderedByEventTimeDesc(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewEventService(repo, noCache(), events.NewInMemoryDispatcher())

	base := time.Now()
	for i, offset := range []time.Duration{time.Hour, 72 * time.Hour, 24 * time.Hour} {
		_, err := svc.Create(context.Background(), 1, "alice", EventCreateInput{
			Title:     "Event",
			EventTime: base.Add(offset),
		})
		require.NoError(t, err, "event %d", i)
	}

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i := 1; i < len(listed); i++ {
		assert.True(t, !listed[i-1].EventTime.Before(listed[i].EventTime),
			"events must be ordered newest first")
	}
}

func TestEventService_Get_Unknown(t *testing.T) {
	svc := NewEventService(&stubEventRepo{}, noCache(), events.NewInMemoryDispatcher())

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}

func TestEventService_ListByAdmin(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewEventService(repo, noCache(), events.NewInMemoryDispatcher())

	_, err := svc.Create(context.Background(), 1, "alice", EventCreateInput{Title: "A", EventTime: time.Now()})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 2, "bob", EventCreateInput{Title: "B", EventTime: time.Now()})
	require.NoError(t, err)

	listed, err := svc.ListByAdmin(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "A", listed[0].Title)

	empty, err := svc.ListByAdmin(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
