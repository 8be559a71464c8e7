package washers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// ErrInvalidSize возвращается при неположительном размере кеша
var ErrInvalidSize = errors.New("washers.cache: size must be positive")

// DefaultTTL время жизни профиля в кеше
const DefaultTTL = 10 * time.Minute

// Source источник профилей мойщиков (репозиторий)
type Source interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Washer, error)
}

// Metrics счетчики попаданий в кеш
type Metrics interface {
	IncWasherCacheLookup(result string)
}

// Cache LRU кеш профилей мойщиков поверх репозитория.
// Промахи загружаются из источника одним запросом.
type Cache struct {
	source  Source
	entries *expirable.LRU[uuid.UUID, domain.Washer]
	metrics Metrics
}

// NewCache создает кеш на size профилей
func NewCache(source Source, size int, ttl time.Duration, metrics Metrics) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &Cache{
		source:  source,
		entries: expirable.NewLRU[uuid.UUID, domain.Washer](size, nil, ttl),
		metrics: metrics,
	}, nil
}

// GetByIDs возвращает профили из кеша, догружая отсутствующие из источника
func (c *Cache) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Washer, error) {
	result := make(map[uuid.UUID]*domain.Washer, len(ids))
	var missing []uuid.UUID

	for _, id := range ids {
		if _, seen := result[id]; seen {
			continue
		}
		if w, ok := c.entries.Get(id); ok {
			result[id] = &w
			c.metrics.IncWasherCacheLookup("hit")
			continue
		}
		missing = append(missing, id)
		c.metrics.IncWasherCacheLookup("miss")
	}

	if len(missing) == 0 {
		return result, nil
	}

	loaded, err := c.source.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}

	for id, w := range loaded {
		c.entries.Add(id, *w)
		result[id] = w
	}

	return result, nil
}

// Invalidate удаляет профиль из кеша
func (c *Cache) Invalidate(id uuid.UUID) {
	c.entries.Remove(id)
}
