package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/uievents-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedElement inserts a UI element with a unique key and returns it with the
// generated id. Unique keys keep tests sharing the database independent.
func SeedElement(t *testing.T, pool *pgxpool.Pool, typ domain.ElementType) domain.UIElement {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	el := domain.UIElement{
		Key:   "test_" + string(typ) + "_" + suffix,
		Type:  typ,
		Label: "Test " + suffix,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO ui_elements (key, type, label) VALUES ($1, $2, $3) RETURNING id`,
		el.Key, string(el.Type), el.Label,
	).Scan(&el.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedElement insert ui_element: %v", err)
	}

	return el
}

// SeedEvent inserts an event against the given element and returns it with
// the generated id. CreatedAt is the current wall clock in epoch seconds.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, elementID int64, typ domain.EventType, payload *string) domain.Event {
	t.Helper()
	ctx := context.Background()

	ev := domain.Event{
		Type:      typ,
		ElementID: elementID,
		Payload:   payload,
		CreatedAt: time.Now().Unix(),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO events (event_type, ui_element_id, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		string(ev.Type), ev.ElementID, ev.Payload, ev.CreatedAt,
	).Scan(&ev.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert event: %v", err)
	}

	return ev
}

// CountEvents returns the current number of rows in events.
func CountEvents(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()

	var count int
	if err := pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		t.Fatalf("testhelper: CountEvents: %v", err)
	}
	return count
}
