package postgres

import (
	"context"
	"database/sql"
	"strings"

	"delecti-backend/internal/domain/journals"
)

type JournalsRepo struct {
	db *sql.DB
}

func NewJournalsRepo(db *sql.DB) *JournalsRepo {
	return &JournalsRepo{db: db}
}

func (r *JournalsRepo) Create(ctx context.Context, j journals.Journal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO journals (
			id, dog_id, before_status, treatment, after_status, next_time, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		j.ID,
		j.DogID,
		j.BeforeStatus,
		j.Treatment,
		j.AfterStatus,
		j.NextTime,
		j.CreatedAt,
	)
	return err
}

func (r *JournalsRepo) GetByID(ctx context.Context, id string) (journals.Journal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return journals.Journal{}, journals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, dog_id, before_status, treatment, after_status, next_time, created_at
		FROM journals
		WHERE id = $1
	`, id)

	var j journals.Journal
	if err := row.Scan(
		&j.ID,
		&j.DogID,
		&j.BeforeStatus,
		&j.Treatment,
		&j.AfterStatus,
		&j.NextTime,
		&j.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return journals.Journal{}, journals.ErrNotFound
		}
		return journals.Journal{}, err
	}

	return j, nil
}

// ListByDog devuelve el expediente completo, sin LIMIT a propósito.
func (r *JournalsRepo) ListByDog(ctx context.Context, dogID string) ([]journals.Journal, error) {
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, dog_id, before_status, treatment, after_status, next_time, created_at
		FROM journals
		WHERE dog_id = $1
		ORDER BY created_at DESC
	`, dogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journals.Journal, 0)
	for rows.Next() {
		var j journals.Journal
		if err := rows.Scan(
			&j.ID,
			&j.DogID,
			&j.BeforeStatus,
			&j.Treatment,
			&j.AfterStatus,
			&j.NextTime,
			&j.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}

	return out, rows.Err()
}

func (r *JournalsRepo) Update(ctx context.Context, j journals.Journal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE journals
		SET
			before_status = $2,
			treatment = $3,
			after_status = $4,
			next_time = $5
		WHERE id = $1
	`,
		j.ID,
		j.BeforeStatus,
		j.Treatment,
		j.AfterStatus,
		j.NextTime,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return journals.ErrNotFound
	}
	return nil
}
