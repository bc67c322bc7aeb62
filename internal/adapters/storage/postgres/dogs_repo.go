package postgres

import (
	"context"
	"database/sql"
	"strings"

	"delecti-backend/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dogs (
			id, customer_id, name, breed, age, weight, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		d.ID,
		d.CustomerID,
		d.Name,
		d.Breed,
		d.Age,
		d.Weight,
		d.Notes,
		d.CreatedAt,
	)
	return err
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, name, breed, age, weight, notes, created_at
		FROM dogs
		WHERE id = $1
	`, id)

	var d dogs.Dog
	if err := row.Scan(
		&d.ID,
		&d.CustomerID,
		&d.Name,
		&d.Breed,
		&d.Age,
		&d.Weight,
		&d.Notes,
		&d.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, err
	}

	return d, nil
}

func (r *DogsRepo) ListByCustomer(ctx context.Context, customerID string) ([]dogs.Dog, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, name, breed, age, weight, notes, created_at
		FROM dogs
		WHERE customer_id = $1
		ORDER BY created_at ASC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		var d dogs.Dog
		if err := rows.Scan(
			&d.ID,
			&d.CustomerID,
			&d.Name,
			&d.Breed,
			&d.Age,
			&d.Weight,
			&d.Notes,
			&d.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
