package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/uievents-backend/internal/domain"
)

// catalogService defines the catalog operations the handler needs.
type catalogService interface {
	ListElements(ctx context.Context) ([]domain.UIElement, error)
}

// ElementsHandler serves the UI element catalog.
type ElementsHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewElementsHandler creates an ElementsHandler.
func NewElementsHandler(svc catalogService, logger *slog.Logger) *ElementsHandler {
	return &ElementsHandler{
		svc: svc,
		log: logger.With("handler", "elements"),
	}
}

// elementResponse is the JSON shape of a single catalog element.
type elementResponse struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

// List handles GET /elements. The response is always a JSON array, empty
// included, so clients can iterate without null checks.
func (h *ElementsHandler) List(w http.ResponseWriter, r *http.Request) {
	elements, err := h.svc.ListElements(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "list elements failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]elementResponse, 0, len(elements))
	for _, el := range elements {
		resp = append(resp, elementResponse{
			ID:    el.ID,
			Key:   el.Key,
			Type:  el.Type.String(),
			Label: el.Label,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
