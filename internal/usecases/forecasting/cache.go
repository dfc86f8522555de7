package forecasting

import (
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard/internal/domain"
)

type cacheEntry struct {
	forecast *domain.Forecast
	storedAt time.Time
}

// Cache guarda previsões já treinadas por (filtros, horizonte).
// Tamanho limitado; as entradas expiram após o TTL.
type Cache struct {
	mu      sync.Mutex
	size    int
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewCache(size int, ttl time.Duration) *Cache {
	if size < 1 {
		size = 1
	}
	return &Cache{
		size:    size,
		ttl:     ttl,
		entries: make(map[string]cacheEntry, size),
		now:     time.Now,
	}
}

// Get retorna a previsão armazenada se ainda estiver válida
func (c *Cache) Get(key string) (*domain.Forecast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.expired(entry) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.forecast, true
}

// Set armazena a previsão, descartando a entrada mais antiga se o cache estiver cheio
func (c *Cache) Set(key string, forecast *domain.Forecast) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.size {
		c.evictOldest()
	}
	c.entries[key] = cacheEntry{forecast: forecast, storedAt: c.now()}
}

// Sweep remove as entradas expiradas e retorna quantas foram removidas
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if c.expired(entry) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len retorna a quantidade de entradas armazenadas
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) expired(entry cacheEntry) bool {
	return c.ttl > 0 && c.now().Sub(entry.storedAt) > c.ttl
}

func (c *Cache) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for key, entry := range c.entries {
		if !found || entry.storedAt.Before(oldest) {
			oldestKey, oldest, found = key, entry.storedAt, true
		}
	}
	if found {
		delete(c.entries, oldestKey)
	}
}
