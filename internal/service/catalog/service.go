// Package catalog manages the fixed set of UI elements that events can
// reference. It serves the element list and seeds the defaults on startup.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/uievents-backend/internal/domain"
)

type elementRepo interface {
	List(ctx context.Context) ([]domain.UIElement, error)
	CountAll(ctx context.Context) (int, error)
	CreateBatch(ctx context.Context, elements []domain.UIElement) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides UI element catalog operations.
type Service struct {
	elements elementRepo
	txm      txManager
	log      *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	elements elementRepo,
	txm txManager,
) *Service {
	return &Service{
		elements: elements,
		txm:      txm,
		log:      log.With("service", "catalog"),
	}
}
