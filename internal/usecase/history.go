package usecase

import (
	"sync"

	"github.com/campus-mobility-service/internal/domain"
	"github.com/google/uuid"
)

// HistoryCache — кольцо последних измерений на сессию. Один экземпляр
// владеет записями монопольно и внедряется во все потребители,
// модульного состояния нет. Безопасен для конкурентного доступа.
type HistoryCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[uuid.UUID][]domain.LocationSample
}

// NewHistoryCache создает кольцо истории с заданной емкостью на сессию
func NewHistoryCache(capacity int) *HistoryCache {
	if capacity <= 0 {
		capacity = 50
	}
	return &HistoryCache{
		capacity: capacity,
		entries:  make(map[uuid.UUID][]domain.LocationSample),
	}
}

// Append добавляет измерение в историю сессии, вытесняя самое старое
// при переполнении
func (h *HistoryCache) Append(sessionID uuid.UUID, sample domain.LocationSample) {
	h.mu.Lock()
	defer h.mu.Unlock()

	history := append(h.entries[sessionID], sample)
	if len(history) > h.capacity {
		history = history[len(history)-h.capacity:]
	}
	h.entries[sessionID] = history
}

// Recent возвращает до n последних измерений сессии, новые первыми
func (h *HistoryCache) Recent(sessionID uuid.UUID, n int) []domain.LocationSample {
	h.mu.Lock()
	defer h.mu.Unlock()

	history := h.entries[sessionID]
	if n > len(history) {
		n = len(history)
	}

	recent := make([]domain.LocationSample, n)
	for i := 0; i < n; i++ {
		recent[i] = history[len(history)-1-i]
	}
	return recent
}

// Len возвращает текущую длину истории сессии
func (h *HistoryCache) Len(sessionID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries[sessionID])
}
