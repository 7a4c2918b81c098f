package swap

import (
	"sync"
	"time"

	"fxswap/internal/domain"

	"github.com/google/uuid"
)

// MemoryStore holds swaps for the lifetime of the process. Nothing persists
// across restarts. At most one swap may be pending at a time; Add rejects a
// new swap while another is in flight.
type MemoryStore struct {
	mu    sync.Mutex
	swaps map[uuid.UUID]domain.Swap
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{swaps: make(map[uuid.UUID]domain.Swap)}
}

func (s *MemoryStore) Add(sw domain.Swap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.swaps {
		if existing.Status == domain.StatusPending {
			return domain.ErrSwapPending
		}
	}
	s.swaps[sw.ID] = sw
	return nil
}

func (s *MemoryStore) Get(id uuid.UUID) (domain.Swap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sw, ok := s.swaps[id]
	if !ok {
		return domain.Swap{}, domain.ErrSwapNotFound
	}
	return sw, nil
}

// ConfirmDue flips every pending swap whose settle deadline has passed and
// returns the confirmed swaps.
func (s *MemoryStore) ConfirmDue(now time.Time) []domain.Swap {
	s.mu.Lock()
	defer s.mu.Unlock()
	var confirmed []domain.Swap
	for id, sw := range s.swaps {
		if sw.Status == domain.StatusPending && !sw.SettleAt.After(now) {
			sw.Status = domain.StatusConfirmed
			s.swaps[id] = sw
			confirmed = append(confirmed, sw)
		}
	}
	return confirmed
}
