package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/uievents-backend/internal/domain"
)

// CreateEvent validates the input, resolves the referenced element and stores
// the event. The payload is stored exactly as received; trimming applies only
// to the presence check in Validate. The returned event carries the element's
// key, label and type read back from storage.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.EventWithElement, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	element, err := s.elements.GetByKey(ctx, input.ElementKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("element_key", "unknown element_key")
		}
		return nil, fmt.Errorf("resolve element: %w", err)
	}

	ev := &domain.Event{
		Type:      domain.EventType(input.EventType),
		ElementID: element.ID,
		Payload:   input.Payload,
		CreatedAt: time.Now().Unix(),
	}

	var created *domain.EventWithElement
	err = s.txm.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.events.Create(ctx, ev)
		if txErr != nil {
			return fmt.Errorf("create event: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event recorded",
		slog.Int64("event_id", created.ID),
		slog.String("event_type", created.Type.String()),
		slog.String("element_key", created.ElementKey),
	)

	return created, nil
}
