package postgres

import (
	"context"
	"database/sql"
	"time"

	"delecti-backend/internal/domain/bookings"
)

type BookingsRepo struct {
	db *sql.DB
}

func NewBookingsRepo(db *sql.DB) *BookingsRepo {
	return &BookingsRepo{db: db}
}

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookings (
			id, customer_id, dog_id, start_time, end_time, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		b.ID,
		b.CustomerID,
		b.DogID,
		b.Start,
		b.End,
		b.Notes,
		b.CreatedAt,
	)
	return err
}

// List trae la agenda con los nombres resueltos en un solo query.
func (r *BookingsRepo) List(ctx context.Context, limit int) ([]bookings.ListItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			b.id, b.customer_id, b.dog_id,
			b.start_time, b.end_time, b.notes, b.created_at,
			c.name, d.name
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN dogs d ON d.id = b.dog_id
		ORDER BY b.start_time ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanListItems(rows)
}

func (r *BookingsRepo) ListRange(ctx context.Context, from, to time.Time) ([]bookings.ListItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			b.id, b.customer_id, b.dog_id,
			b.start_time, b.end_time, b.notes, b.created_at,
			c.name, d.name
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN dogs d ON d.id = b.dog_id
		WHERE b.start_time >= $1 AND b.start_time < $2
		ORDER BY b.start_time ASC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanListItems(rows)
}

func scanListItems(rows *sql.Rows) ([]bookings.ListItem, error) {
	out := make([]bookings.ListItem, 0)
	for rows.Next() {
		var it bookings.ListItem
		if err := rows.Scan(
			&it.ID,
			&it.CustomerID,
			&it.DogID,
			&it.Start,
			&it.End,
			&it.Notes,
			&it.CreatedAt,
			&it.CustomerName,
			&it.DogName,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
