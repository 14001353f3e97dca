package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/uievents-backend/internal/adapter/postgres"
	"github.com/heartmarshall/uievents-backend/internal/adapter/postgres/testhelper"
)

// elementExists checks whether a ui_elements row with the given key exists.
func elementExists(t *testing.T, pool *pgxpool.Pool, key string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM ui_elements WHERE key = $1)`,
		key,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("elementExists query: %v", err)
	}
	return exists
}

// txTestKey returns a unique element key for transaction tests.
func txTestKey(prefix string) string {
	return prefix + "_" + uuid.New().String()[:8]
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	key := txTestKey("tx_commit")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		_, err := q.Exec(ctx,
			`INSERT INTO ui_elements (key, type, label) VALUES ($1, 'button', 'Commit Test')`,
			key,
		)
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !elementExists(t, pool, key) {
		t.Fatal("expected element to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	key := txTestKey("tx_rollback")
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		_, execErr := q.Exec(ctx,
			`INSERT INTO ui_elements (key, type, label) VALUES ($1, 'button', 'Rollback Test')`,
			key,
		)
		if execErr != nil {
			t.Fatalf("insert inside tx failed: %v", execErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if elementExists(t, pool, key) {
		t.Fatal("expected element NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	key := txTestKey("tx_panic")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}

		// Verify data was rolled back.
		if elementExists(t, pool, key) {
			t.Fatal("expected element NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		_, err := q.Exec(ctx,
			`INSERT INTO ui_elements (key, type, label) VALUES ($1, 'button', 'Panic Test')`,
			key,
		)
		if err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}

func TestRunInTx_QuerierFromCtx_UsesTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	key := txTestKey("tx_ctx")

	// Insert inside a transaction, then verify it's visible within the same tx.
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		_, err := q.Exec(ctx,
			`INSERT INTO ui_elements (key, type, label) VALUES ($1, 'text_input', 'Ctx Test')`,
			key,
		)
		if err != nil {
			return err
		}

		// Should be visible within the transaction.
		var exists bool
		err = q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ui_elements WHERE key = $1)`, key).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			t.Fatal("expected element to be visible within the transaction")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	// After commit, also visible outside.
	if !elementExists(t, pool, key) {
		t.Fatal("expected element to exist after committed transaction")
	}
}
