package testhelper

import (
	"context"
	"testing"

	"github.com/heartmarshall/uievents-backend/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	el := SeedElement(t, pool, domain.ElementTypeButton)

	// Verify the element exists in DB via SELECT.
	var key string
	err := pool.QueryRow(
		context.Background(),
		`SELECT key FROM ui_elements WHERE id = $1`,
		el.ID,
	).Scan(&key)
	if err != nil {
		t.Fatalf("expected element in DB, got error: %v", err)
	}

	if key != el.Key {
		t.Fatalf("expected key %q, got %q", el.Key, key)
	}
}
