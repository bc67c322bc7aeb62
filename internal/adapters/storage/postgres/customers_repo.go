package postgres

import (
	"context"
	"database/sql"
	"strings"

	"delecti-backend/internal/domain/customers"
)

type CustomersRepo struct {
	db *sql.DB
}

func NewCustomersRepo(db *sql.DB) *CustomersRepo {
	return &CustomersRepo{db: db}
}

func (r *CustomersRepo) Create(ctx context.Context, c customers.Customer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (
			id, name, phone, email, address, city, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.Name,
		c.Phone,
		c.Email,
		c.Address,
		c.City,
		c.Notes,
		c.CreatedAt,
	)
	return err
}

func (r *CustomersRepo) GetByID(ctx context.Context, id string) (customers.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return customers.Customer{}, customers.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, phone, email, address, city, notes, created_at
		FROM customers
		WHERE id = $1
	`, id)

	var c customers.Customer
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.City,
		&c.Notes,
		&c.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return customers.Customer{}, customers.ErrNotFound
		}
		return customers.Customer{}, err
	}

	return c, nil
}

// List filtra por coincidencia parcial de nombre sin distinguir
// mayúsculas; vacío devuelve los más recientes.
func (r *CustomersRepo) List(ctx context.Context, nameQuery string, limit int) ([]customers.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, phone, email, address, city, notes, created_at
		FROM customers
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		LIMIT $2
	`, strings.TrimSpace(nameQuery), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]customers.Customer, 0)
	for rows.Next() {
		var c customers.Customer
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Phone,
			&c.Email,
			&c.Address,
			&c.City,
			&c.Notes,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *CustomersRepo) Update(ctx context.Context, c customers.Customer) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET
			name = $2,
			phone = $3,
			email = $4,
			address = $5,
			city = $6,
			notes = $7
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		c.Phone,
		c.Email,
		c.Address,
		c.City,
		c.Notes,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return customers.ErrNotFound
	}
	return nil
}
