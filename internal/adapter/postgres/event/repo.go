// Package event implements the interaction event repository using
// PostgreSQL. Events are append-only; reads always join the owning element
// so callers get the denormalized shape the API returns.
package event

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/uievents-backend/internal/adapter/postgres"
	"github.com/heartmarshall/uievents-backend/internal/domain"
)

const table = "events"

// sb builds queries with PostgreSQL positional placeholders.
var sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the event and returns the stored row joined with its
// element. Run it inside a transaction when the readback must observe the
// same snapshot as the insert.
//
// The payload is written exactly as given; nil stores SQL NULL. A
// foreign-key failure here means the element disappeared after key
// resolution, which surfaces as an integrity error, not domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, ev *domain.Event) (*domain.EventWithElement, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := sb.Insert(table).
		Columns("event_type", "ui_element_id", "payload", "created_at").
		Values(ev.Type.String(), ev.ElementID, ev.Payload, ev.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var id int64
	if err := querier.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "event", fmt.Sprintf("element_id=%d", ev.ElementID))
	}

	return r.GetByID(ctx, id)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getEventWithElementSQL = `
SELECT e.id, e.event_type, e.ui_element_id, e.payload, e.created_at,
       u.key AS element_key, u.label AS element_label, u.type AS element_type
FROM events e
JOIN ui_elements u ON u.id = e.ui_element_id
WHERE e.id = $1`

// GetByID returns the event joined with its element's descriptive fields.
// Returns domain.ErrNotFound if the event does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.EventWithElement, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var row eventRow
	err := querier.QueryRow(ctx, getEventWithElementSQL, id).Scan(
		&row.id, &row.eventType, &row.elementID, &row.payload, &row.createdAt,
		&row.elementKey, &row.elementLabel, &row.elementType,
	)
	if err != nil {
		return nil, postgres.MapError(err, "event", strconv.FormatInt(id, 10))
	}

	ev := row.toDomain()
	return &ev, nil
}

const countEventsSQL = `SELECT COUNT(*) FROM events`

// CountAll returns the total number of stored events.
func (r *Repo) CountAll(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countEventsSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

// eventRow is a scanned events row joined with its ui_elements row.
type eventRow struct {
	id           int64
	eventType    string
	elementID    int64
	payload      *string
	createdAt    int64
	elementKey   string
	elementLabel string
	elementType  string
}

func (row eventRow) toDomain() domain.EventWithElement {
	return domain.EventWithElement{
		Event: domain.Event{
			ID:        row.id,
			Type:      domain.EventType(row.eventType),
			ElementID: row.elementID,
			Payload:   row.payload,
			CreatedAt: row.createdAt,
		},
		ElementKey:   row.elementKey,
		ElementLabel: row.elementLabel,
		ElementType:  domain.ElementType(row.elementType),
	}
}
