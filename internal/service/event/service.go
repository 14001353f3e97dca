// Package event records interaction events against known UI elements.
package event

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/uievents-backend/internal/domain"
)

type elementRepo interface {
	GetByKey(ctx context.Context, key string) (*domain.UIElement, error)
}

type eventRepo interface {
	Create(ctx context.Context, ev *domain.Event) (*domain.EventWithElement, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides event recording operations.
type Service struct {
	elements elementRepo
	events   eventRepo
	txm      txManager
	log      *slog.Logger
}

// NewService creates a new event service.
func NewService(
	log *slog.Logger,
	elements elementRepo,
	events eventRepo,
	txm txManager,
) *Service {
	return &Service{
		elements: elements,
		events:   events,
		txm:      txm,
		log:      log.With("service", "event"),
	}
}
