package repository

import (
	"sync"
	"time"

	"github.com/vfg2006/customer-insights-api/internal/domain"
)

// MemoryProcessedEventRepository é a implementação em memória do registro de
// eventos processados. Usada em testes e em execuções sem banco de dados.
type MemoryProcessedEventRepository struct {
	mu     sync.RWMutex
	events map[string]*domain.ProcessedWebhookEvent
}

func NewMemoryProcessedEventRepository() *MemoryProcessedEventRepository {
	return &MemoryProcessedEventRepository{
		events: make(map[string]*domain.ProcessedWebhookEvent),
	}
}

func (r *MemoryProcessedEventRepository) IsProcessed(eventID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.events[eventID]
	return ok, nil
}

func (r *MemoryProcessedEventRepository) MarkProcessed(event *domain.ProcessedWebhookEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[event.EventID]; ok {
		return nil
	}
	r.events[event.EventID] = event

	return nil
}

func (r *MemoryProcessedEventRepository) DeleteOlderThan(retention time.Duration) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-retention)

	var removed int64
	for id, event := range r.events {
		if event.ReceivedAt.Before(cutoff) {
			delete(r.events, id)
			removed++
		}
	}

	return removed, nil
}
