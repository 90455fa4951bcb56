package worker

import (
	"github.com/spec-kit/club-events-service/internal/cache"
	"github.com/spec-kit/club-events-service/internal/events"
	"github.com/spec-kit/club-events-service/internal/service"
)

// StartSubscribers registers notification and cache-invalidation handlers.
func StartSubscribers(dispatcher events.Dispatcher, notifications *service.NotificationService, listings *cache.ListingCache) {
	if notifications != nil {
		notifications.RegisterHandlers()
	}
	if listings != nil {
		listings.RegisterHandlers(dispatcher)
	}
}
