package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"delecti-backend/internal/domain/journals"
)

type JournalsRepo struct {
	mu   sync.RWMutex
	byID map[string]journals.Journal
}

func NewJournalsRepo() *JournalsRepo {
	return &JournalsRepo{
		byID: make(map[string]journals.Journal),
	}
}

func (r *JournalsRepo) Create(ctx context.Context, j journals.Journal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(j.ID) == "" {
		return errors.New("journal id required")
	}
	if _, exists := r.byID[j.ID]; exists {
		return errors.New("journal already exists")
	}
	r.byID[j.ID] = j
	return nil
}

func (r *JournalsRepo) GetByID(ctx context.Context, id string) (journals.Journal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.byID[id]
	if !ok {
		return journals.Journal{}, journals.ErrNotFound
	}
	return j, nil
}

func (r *JournalsRepo) ListByDog(ctx context.Context, dogID string) ([]journals.Journal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]journals.Journal, 0)
	for _, j := range r.byID {
		if j.DogID == dogID {
			out = append(out, j)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *JournalsRepo) Update(ctx context.Context, j journals.Journal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[j.ID]; !exists {
		return journals.ErrNotFound
	}
	r.byID[j.ID] = j
	return nil
}
