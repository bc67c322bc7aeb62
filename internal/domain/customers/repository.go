package customers

import "context"

type Repository interface {
	Create(ctx context.Context, c Customer) error
	GetByID(ctx context.Context, id string) (Customer, error)

	// List devuelve los clientes más recientes primero, opcionalmente
	// filtrados por coincidencia parcial de nombre (case-insensitive).
	List(ctx context.Context, nameQuery string, limit int) ([]Customer, error)

	Update(ctx context.Context, c Customer) error
}
