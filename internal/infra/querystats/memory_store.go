package querystats

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/campus-helpdesk/internal/domain/helpdesk"
)

// MemoryStore keeps query counts in process memory. Used in tests and
// whenever Valkey is disabled or unreachable.
type MemoryStore struct {
	mu       sync.RWMutex
	counts   map[string]int64
	displays map[string]string
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts:   make(map[string]int64),
		displays: make(map[string]string),
	}
}

// IncrementQuery bumps the counter for a canonical query. The first
// display string seen for it is kept.
func (s *MemoryStore) IncrementQuery(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[canonical]++
	if _, exists := s.displays[canonical]; !exists {
		s.displays[canonical] = display
	}
	return nil
}

// TopQueries returns the most frequent queries, ties broken alphabetically.
func (s *MemoryStore) TopQueries(_ context.Context, limit int) ([]helpdesk.TrendingQuery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	items := make([]helpdesk.TrendingQuery, 0, len(s.counts))
	for canonical, count := range s.counts {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, helpdesk.TrendingQuery{Query: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Query < items[j].Query
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ helpdesk.StatsStore = (*MemoryStore)(nil)
