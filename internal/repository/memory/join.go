package memory

import (
	"sort"
	"sync"
)

// joinTable models a many-to-many association between two id spaces. Attach
// is idempotent, like the ON CONFLICT DO NOTHING insert in the postgres
// repositories.
type joinTable struct {
	mu    sync.RWMutex
	pairs map[int64]map[int64]bool
}

func newJoinTable() *joinTable {
	return &joinTable{pairs: make(map[int64]map[int64]bool)}
}

func (j *joinTable) attach(left, right int64) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.pairs[left] == nil {
		j.pairs[left] = make(map[int64]bool)
	}
	j.pairs[left][right] = true
}

func (j *joinTable) has(left, right int64) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.pairs[left][right]
}

// rights lists the right-hand ids associated with left, in id order.
func (j *joinTable) rights(left int64) []int64 {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]int64, 0, len(j.pairs[left]))
	for right := range j.pairs[left] {
		out = append(out, right)
	}
	sort.Slice(out, func(i, k int) bool { return out[i] < out[k] })
	return out
}

// lefts lists the left-hand ids associated with right, in id order.
func (j *joinTable) lefts(right int64) []int64 {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]int64, 0)
	for left, rights := range j.pairs {
		if rights[right] {
			out = append(out, left)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i] < out[k] })
	return out
}
