package service

import (
	"context"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/logger"
	"sejour-backend/internal/repository"
)

// EventSink receives domain events after a state change has committed.
// Implementations must not block the caller on external I/O and must not
// surface failures back into the emitting transition.
type EventSink interface {
	Publish(ctx context.Context, event domain.Event)
}

// notificationDispatcher is the default sink: one notification row per
// event. Failures are logged and swallowed; the transition that emitted the
// event already committed.
type notificationDispatcher struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationDispatcher(noteRepo repository.NotificationRepository) EventSink {
	return &notificationDispatcher{noteRepo: noteRepo}
}

func (d *notificationDispatcher) Publish(ctx context.Context, event domain.Event) {
	attrs := map[string]string{"type": string(event.Type)}
	for k, v := range event.Attributes {
		attrs[k] = v
	}

	note := &domain.Notification{
		UserID:     event.RecipientID,
		Title:      event.Title,
		Message:    event.Message,
		Attributes: attrs,
	}
	if err := d.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to record notification", "event", event.Type, "user_id", event.RecipientID, "error", err)
	}
}
