package postgres

import (
	"context"
	"database/sql"
	"strings"

	"delecti-backend/internal/domain/journals"
)

type MediaRepo struct {
	db *sql.DB
}

func NewMediaRepo(db *sql.DB) *MediaRepo {
	return &MediaRepo{db: db}
}

func (r *MediaRepo) Create(ctx context.Context, m journals.Media) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO journal_media (
			id, journal_id, path, mime, created_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		m.ID,
		m.JournalID,
		m.Path,
		m.MIME,
		m.CreatedAt,
	)
	return err
}

func (r *MediaRepo) ListByJournal(ctx context.Context, journalID string) ([]journals.Media, error) {
	journalID = strings.TrimSpace(journalID)
	if journalID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, journal_id, path, mime, created_at
		FROM journal_media
		WHERE journal_id = $1
		ORDER BY created_at ASC
	`, journalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journals.Media, 0)
	for rows.Next() {
		var m journals.Media
		if err := rows.Scan(
			&m.ID,
			&m.JournalID,
			&m.Path,
			&m.MIME,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}
