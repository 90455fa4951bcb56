package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/club-events-service/internal/domain"
)

// EventRepository encapsulates event persistence. Reads join the publishing
// admin so responses can carry the creator's username.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	ListByAdminUsername(ctx context.Context, username string) ([]domain.Event, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (title, subtitle, description, event_time, poster, gform_link, location, location_link, insta_link, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		event.Title,
		event.Subtitle,
		event.Description,
		event.EventTime,
		event.Poster,
		event.GformLink,
		event.Location,
		event.LocationLink,
		event.InstaLink,
		event.CreatedByID,
	).Scan(&event.ID, &event.CreatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	const query = `
        SELECT e.id, e.title, e.subtitle, e.description, e.event_time, e.poster, e.gform_link,
               e.location, e.location_link, e.insta_link, e.created_by, a.username, e.created_at
        FROM events e
        JOIN admins a ON a.id = e.created_by
        WHERE e.id=$1`

	var event domain.Event
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Subtitle,
		&event.Description,
		&event.EventTime,
		&event.Poster,
		&event.GformLink,
		&event.Location,
		&event.LocationLink,
		&event.InstaLink,
		&event.CreatedByID,
		&event.CreatedBy,
		&event.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	const query = `
        SELECT e.id, e.title, e.subtitle, e.description, e.event_time, e.poster, e.gform_link,
               e.location, e.location_link, e.insta_link, e.created_by, a.username, e.created_at
        FROM events e
        JOIN admins a ON a.id = e.created_by
        ORDER BY e.event_time DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *eventRepository) ListByAdminUsername(ctx context.Context, username string) ([]domain.Event, error) {
	const query = `
        SELECT e.id, e.title, e.subtitle, e.description, e.event_time, e.poster, e.gform_link,
               e.location, e.location_link, e.insta_link, e.created_by, a.username, e.created_at
        FROM events e
        JOIN admins a ON a.id = e.created_by
        WHERE a.username=$1
        ORDER BY e.event_time DESC`

	rows, err := r.pool.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]domain.Event, error) {
	events := make([]domain.Event, 0)
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Subtitle,
			&event.Description,
			&event.EventTime,
			&event.Poster,
			&event.GformLink,
			&event.Location,
			&event.LocationLink,
			&event.InstaLink,
			&event.CreatedByID,
			&event.CreatedBy,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
