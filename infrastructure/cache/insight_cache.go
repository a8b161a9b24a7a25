package cache

import (
	"sync"
	"time"

	"github.com/vfg2006/customer-insights-api/internal/domain"
)

// InsightCache guarda bundles de insights calculados por cliente.
// Uma leitura dentro do TTL devolve o bundle armazenado; fora do TTL é miss
// e o chamador deve recalcular e gravar novamente.
type InsightCache interface {
	Get(customerID string) (*domain.InsightBundle, bool)
	Put(customerID string, bundle *domain.InsightBundle)
	Invalidate(customerID string)
}

type cacheEntry struct {
	bundle     *domain.InsightBundle
	computedAt time.Time
}

// MemoryInsightCache é a implementação em memória do cache de insights.
// Deve ser construído uma vez por processo e injetado onde for necessário.
type MemoryInsightCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewMemoryInsightCache(ttl time.Duration) *MemoryInsightCache {
	return &MemoryInsightCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get retorna o bundle armazenado se ainda estiver dentro do TTL.
// Entradas expiradas não são removidas aqui; são sobrescritas no próximo Put.
func (c *MemoryInsightCache) Get(customerID string) (*domain.InsightBundle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[customerID]
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.computedAt) >= c.ttl {
		return nil, false
	}

	return entry.bundle, true
}

// Put grava o bundle para o cliente. Escritas concorrentes para a mesma chave
// seguem a semântica de última escrita vence.
func (c *MemoryInsightCache) Put(customerID string, bundle *domain.InsightBundle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[customerID] = cacheEntry{
		bundle:     bundle,
		computedAt: c.now(),
	}
}

// Invalidate remove a entrada incondicionalmente, mesmo que ainda não tenha
// expirado. Usado para forçar recálculo após notificação de mudança.
func (c *MemoryInsightCache) Invalidate(customerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, customerID)
}
