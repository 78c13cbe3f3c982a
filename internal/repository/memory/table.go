package memory

import (
	"context"
	"sync"
	"time"

	"go-cvs-backend/internal/domain"
)

// table is a tiny in-memory row store shared by every entity repository.
// Rows keep insertion order, ids are a per-table sequence, and audit stamps
// come from the acting user in the context, matching what the postgres
// repositories do.
type table[T any, PT interface {
	*T
	domain.Entry
}] struct {
	mu   sync.RWMutex
	seq  int64
	rows map[int64]T
	ids  []int64
}

func newTable[T any, PT interface {
	*T
	domain.Entry
}]() *table[T, PT] {
	return &table[T, PT]{rows: make(map[int64]T)}
}

func (t *table[T, PT]) save(ctx context.Context, row *T) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	meta := PT(row).Meta()
	now := time.Now().UTC()
	actor := domain.Actor(ctx)

	if meta.ID == 0 {
		t.seq++
		meta.ID = t.seq
		meta.CreatedDate = now
		meta.CreatedBy = actor
		t.ids = append(t.ids, meta.ID)
	}
	meta.ModifiedDate = now
	meta.LastModifiedBy = actor

	t.rows[meta.ID] = *row
	saved := t.rows[meta.ID]
	return &saved, nil
}

// findByID returns nil without error when no row exists, mirroring the
// repository contract.
func (t *table[T, PT]) findByID(id int64) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (t *table[T, PT]) findAll() ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.rows[id])
	}
	return out, nil
}

func (t *table[T, PT]) findWhere(pred func(*T) bool) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range t.ids {
		row := t.rows[id]
		if pred(&row) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (t *table[T, PT]) findByIDs(ids []int64) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if row, ok := t.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}
