package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/uievents-backend/internal/domain"
	eventsvc "github.com/heartmarshall/uievents-backend/internal/service/event"
)

// eventService defines the event operations the handler needs.
type eventService interface {
	CreateEvent(ctx context.Context, input eventsvc.CreateEventInput) (*domain.EventWithElement, error)
}

// EventsHandler records interaction events.
type EventsHandler struct {
	svc eventService
	log *slog.Logger
}

// NewEventsHandler creates an EventsHandler.
func NewEventsHandler(svc eventService, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		svc: svc,
		log: logger.With("handler", "events"),
	}
}

// createEventRequest is the POST /events request body.
type createEventRequest struct {
	EventType  string  `json:"event_type"`
	ElementKey string  `json:"element_key"`
	Payload    *string `json:"payload"`
}

// eventResponse is the stored event joined with its element.
type eventResponse struct {
	ID           int64   `json:"id"`
	EventType    string  `json:"event_type"`
	Payload      *string `json:"payload"`
	CreatedAt    int64   `json:"created_at"`
	ElementKey   string  `json:"element_key"`
	ElementLabel string  `json:"element_label"`
	ElementType  string  `json:"element_type"`
}

// Create handles POST /events.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An unreadable body is handled like an empty one, so the client gets
		// the field-level message instead of a generic decode error.
		req = createEventRequest{}
	}

	result, err := h.svc.CreateEvent(r.Context(), eventsvc.CreateEventInput{
		EventType:  req.EventType,
		ElementKey: req.ElementKey,
		Payload:    req.Payload,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, eventResponse{
		ID:           result.ID,
		EventType:    result.Type.String(),
		Payload:      result.Payload,
		CreatedAt:    result.CreatedAt,
		ElementKey:   result.ElementKey,
		ElementLabel: result.ElementLabel,
		ElementType:  result.ElementType.String(),
	})
}

func (h *EventsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
