package event

import (
	"strings"

	"github.com/heartmarshall/uievents-backend/internal/domain"
)

// CreateEventInput holds the parameters for recording an event. EventType and
// ElementKey arrive as raw strings so that unknown values can be rejected with
// a clear message instead of failing at decode time.
type CreateEventInput struct {
	EventType  string
	ElementKey string
	Payload    *string
}

// Validate checks fields in order and stops at the first failure, so clients
// always see the earliest problem with their request.
func (i CreateEventInput) Validate() error {
	eventType := domain.EventType(i.EventType)
	if !eventType.IsValid() {
		return domain.NewValidationError("event_type", "invalid event_type")
	}

	if i.ElementKey == "" {
		return domain.NewValidationError("element_key", "element_key required")
	}

	if eventType.RequiresPayload() {
		if i.Payload == nil || strings.TrimSpace(*i.Payload) == "" {
			return domain.NewValidationError("payload", "payload required for text_submit")
		}
	}

	return nil
}
