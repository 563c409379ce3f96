package cache

import (
	"context"
	"log"
	"sync"

	"gitlab.com/modaluna/aftersales/internal/domain"
	"gitlab.com/modaluna/aftersales/internal/metrics"
)

type ExchangeLister interface {
	ListExchanges(ctx context.Context, filter domain.ExchangeFilter) ([]domain.ExchangeRecord, error)
}

// ExchangeCache keeps the exchanges still needing staff action in memory so
// warehouse screens do not hit the database on every refresh. Terminal
// records are evicted on write.
type ExchangeCache struct {
	mu     sync.RWMutex
	cache  map[int64]*domain.ExchangeRecord
	lister ExchangeLister
}

func NewExchangeCache(lister ExchangeLister) *ExchangeCache {
	return &ExchangeCache{
		cache:  make(map[int64]*domain.ExchangeRecord),
		lister: lister,
	}
}

func (c *ExchangeCache) LoadInitialData(ctx context.Context) error {
	log.Println("Loading open exchanges into cache...")
	records, err := c.lister.ListExchanges(ctx, domain.ExchangeFilter{})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, rec := range records {
		if rec.IsComplete() {
			continue
		}
		recCopy := rec
		c.cache[rec.ID] = &recCopy
	}
	metrics.ExchangeCacheItems.Set(float64(len(c.cache)))
	log.Printf("Successfully loaded %d open exchanges into cache.", len(c.cache))
	return nil
}

func (c *ExchangeCache) Get(id int64) (*domain.ExchangeRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, found := c.cache[id]
	if !found {
		return nil, false
	}
	recCopy := *rec
	return &recCopy, true
}

func (c *ExchangeCache) Set(rec *domain.ExchangeRecord) {
	if rec.IsComplete() {
		c.Delete(rec.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	recCopy := *rec
	c.cache[rec.ID] = &recCopy
	metrics.ExchangeCacheItems.Set(float64(len(c.cache)))
}

func (c *ExchangeCache) Delete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[id]; found {
		delete(c.cache, id)
		metrics.ExchangeCacheItems.Set(float64(len(c.cache)))
	}
}
