package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/uievents-backend/internal/domain"
)

// Seed inserts the default UI elements if the table is empty. Safe to run on
// every startup: a non-empty table is left untouched, and concurrent starters
// are deduplicated by the unique key constraint.
func (s *Service) Seed(ctx context.Context) error {
	return s.txm.RunInTx(ctx, func(ctx context.Context) error {
		count, err := s.elements.CountAll(ctx)
		if err != nil {
			return fmt.Errorf("count elements: %w", err)
		}
		if count > 0 {
			s.log.DebugContext(ctx, "elements already present, skipping seed",
				slog.Int("count", count),
			)
			return nil
		}

		defaults := domain.SeedElements()
		if err := s.elements.CreateBatch(ctx, defaults); err != nil {
			return fmt.Errorf("seed elements: %w", err)
		}

		s.log.InfoContext(ctx, "seeded default ui elements",
			slog.Int("count", len(defaults)),
		)
		return nil
	})
}
