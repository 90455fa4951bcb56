package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/club-events-service/internal/domain"
)

// AnnouncementRepository encapsulates announcement persistence.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	List(ctx context.Context) ([]domain.Announcement, error)
	ListByAdminUsername(ctx context.Context, username string) ([]domain.Announcement, error)
}

type announcementRepository struct {
	pool *pgxpool.Pool
}

// NewAnnouncementRepository instantiates repository.
func NewAnnouncementRepository(pool *pgxpool.Pool) AnnouncementRepository {
	return &announcementRepository{pool: pool}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	const query = `
        INSERT INTO announcements (description, poster, insta_link, gform_link, created_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		announcement.Description,
		announcement.Poster,
		announcement.InstaLink,
		announcement.GformLink,
		announcement.CreatedByID,
	).Scan(&announcement.ID, &announcement.CreatedAt)
}

func (r *announcementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	const query = `
        SELECT n.id, n.description, n.poster, n.insta_link, n.gform_link, n.created_by, a.username, n.created_at
        FROM announcements n
        JOIN admins a ON a.id = n.created_by
        ORDER BY n.id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAnnouncements(rows)
}

func (r *announcementRepository) ListByAdminUsername(ctx context.Context, username string) ([]domain.Announcement, error) {
	const query = `
        SELECT n.id, n.description, n.poster, n.insta_link, n.gform_link, n.created_by, a.username, n.created_at
        FROM announcements n
        JOIN admins a ON a.id = n.created_by
        WHERE a.username=$1
        ORDER BY n.id DESC`

	rows, err := r.pool.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAnnouncements(rows)
}

func scanAnnouncements(rows pgx.Rows) ([]domain.Announcement, error) {
	announcements := make([]domain.Announcement, 0)
	for rows.Next() {
		var announcement domain.Announcement
		if err := rows.Scan(
			&announcement.ID,
			&announcement.Description,
			&announcement.Poster,
			&announcement.InstaLink,
			&announcement.GformLink,
			&announcement.CreatedByID,
			&announcement.CreatedBy,
			&announcement.CreatedAt,
		); err != nil {
			return nil, err
		}
		announcements = append(announcements, announcement)
	}
	return announcements, rows.Err()
}
