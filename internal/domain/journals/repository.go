package journals

import "context"

type Repository interface {
	Create(ctx context.Context, j Journal) error
	GetByID(ctx context.Context, id string) (Journal, error)
	// ListByDog devuelve el historial completo, más reciente primero.
	ListByDog(ctx context.Context, dogID string) ([]Journal, error)
	Update(ctx context.Context, j Journal) error
}

type MediaRepository interface {
	Create(ctx context.Context, m Media) error
	// ListByJournal devuelve los adjuntos en orden de subida.
	ListByJournal(ctx context.Context, journalID string) ([]Media, error)
}
