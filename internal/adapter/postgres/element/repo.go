// Package element implements the UI element repository using PostgreSQL.
// It serves the element catalog and resolves element keys for event
// recording.
package element

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/uievents-backend/internal/adapter/postgres"
	"github.com/heartmarshall/uievents-backend/internal/domain"
)

const table = "ui_elements"

var columns = []string{"id", "key", "type", "label"}

// sb builds queries with PostgreSQL positional placeholders.
var sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides UI element persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new UI element repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns all UI elements ordered by id ascending. Returns an empty
// slice, not nil, when the table is empty.
func (r *Repo) List(ctx context.Context) ([]domain.UIElement, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := sb.Select(columns...).From(table).OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list ui_elements: %w", err)
	}
	defer rows.Close()

	elements := make([]domain.UIElement, 0)
	for rows.Next() {
		var row elementRow
		if err := rows.Scan(&row.id, &row.key, &row.typ, &row.label); err != nil {
			return nil, fmt.Errorf("scan ui_element: %w", err)
		}
		elements = append(elements, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ui_elements: %w", err)
	}

	return elements, nil
}

// GetByKey returns the element with the given key.
// Returns domain.ErrNotFound if no element has that key.
func (r *Repo) GetByKey(ctx context.Context, key string) (*domain.UIElement, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := sb.Select(columns...).From(table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var row elementRow
	if err := querier.QueryRow(ctx, sql, args...).Scan(&row.id, &row.key, &row.typ, &row.label); err != nil {
		return nil, postgres.MapError(err, "ui_element", key)
	}

	el := row.toDomain()
	return &el, nil
}

const countElementsSQL = `SELECT COUNT(*) FROM ui_elements`

// CountAll returns the total number of stored UI elements.
func (r *Repo) CountAll(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countElementsSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count ui_elements: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateBatch inserts elements preserving slice order, so generated IDs
// follow it. Rows whose key already exists are skipped, which keeps
// repeated seeding from producing duplicates.
func (r *Repo) CreateBatch(ctx context.Context, elements []domain.UIElement) error {
	if len(elements) == 0 {
		return nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	insert := sb.Insert(table).Columns("key", "type", "label")
	for _, el := range elements {
		insert = insert.Values(el.Key, el.Type.String(), el.Label)
	}

	sql, args, err := insert.Suffix("ON CONFLICT (key) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "ui_element", "batch")
	}

	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

// elementRow is a scanned ui_elements row.
type elementRow struct {
	id    int64
	key   string
	typ   string
	label string
}

func (row elementRow) toDomain() domain.UIElement {
	return domain.UIElement{
		ID:    row.id,
		Key:   row.key,
		Type:  domain.ElementType(row.typ),
		Label: row.label,
	}
}
