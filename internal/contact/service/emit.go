package service

import (
	"context"

	"github.com/google/uuid"

	"contactregistry/internal/platform/events"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/requestcontext"
)

// publish emits a domain event for a committed mutation. Emission failures
// are logged and swallowed: the write has already happened and the event
// stream is not the source of truth.
func (s *Service) publish(ctx context.Context, eventType events.Type, contactID id.ContactID, entityID int64) {
	s.publishEvent(ctx, events.Event{
		Type:      eventType,
		ContactID: int64(contactID),
		EntityID:  entityID,
	})
}

func (s *Service) publishEvent(ctx context.Context, event events.Event) {
	if s.events == nil {
		return
	}
	event.ID = uuid.NewString()
	event.OccurredAt = requestcontext.Now(ctx)
	event.Username = requestcontext.Username(ctx)
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event",
			"type", event.Type,
			"contact_id", event.ContactID,
			"error", err,
		)
	}
}
