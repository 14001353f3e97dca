package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/uievents-backend/internal/domain"
)

// ListElements returns all UI elements ordered by ID.
func (s *Service) ListElements(ctx context.Context) ([]domain.UIElement, error) {
	elements, err := s.elements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list elements: %w", err)
	}

	return elements, nil
}
