package dogs

import "context"

type Repository interface {
	Create(ctx context.Context, d Dog) error
	GetByID(ctx context.Context, id string) (Dog, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Dog, error)
}
