package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"delecti-backend/internal/domain/journals"
)

type MediaRepo struct {
	mu   sync.RWMutex
	rows []journals.Media
}

func NewMediaRepo() *MediaRepo {
	return &MediaRepo{}
}

func (r *MediaRepo) Create(ctx context.Context, m journals.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("media id required")
	}
	r.rows = append(r.rows, m)
	return nil
}

func (r *MediaRepo) ListByJournal(ctx context.Context, journalID string) ([]journals.Media, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]journals.Media, 0)
	for _, m := range r.rows {
		if m.JournalID == journalID {
			out = append(out, m)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
