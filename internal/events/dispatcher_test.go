package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []Event
	dispatcher.Subscribe(EventEventPublished, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{ID: "1", Type: EventEventPublished})
	assert.NoError(t, err)
	assert.Len(t, seen, 1)

	// other event types do not trigger the handler
	err = dispatcher.Publish(context.Background(), Event{ID: "2", Type: EventAnnouncementPublished})
	assert.NoError(t, err)
	assert.Len(t, seen, 1)
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventEventPublished, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	called := false
	dispatcher.Subscribe(EventEventPublished, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventEventPublished})
	assert.NoError(t, err)
	assert.True(t, called)
}
