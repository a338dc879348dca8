// Package cache memoизирует результаты оркестраторов движка по fingerprint
// (версия конфигурации + нормализованный запрос). Кеш — чистая оптимизация:
// с выключенным кешем (нулевые TTL) поведение движка идентично.
package cache

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"
)

// Store контракт хранилища записей кеша (get/put/invalidate)
// Позволяет подменить in-memory map на распределенный кеш или отключить
// кеширование, не меняя логику движка
type Store interface {
	Get(key uint64, now time.Time) (interface{}, bool)
	Put(key uint64, productID int64, value interface{}, expiresAt time.Time)
	InvalidateProduct(productID int64)
}

// MetricsRecorder контракт записи метрик кеша; nil отключает метрики
type MetricsRecorder interface {
	CacheHit(operation string)
	CacheMiss(operation string)
	CacheShared(operation string)
	ObserveEvaluation(operation string, d time.Duration)
}

// ResultCache оборачивает вычисление в get-or-compute с single-flight
// на пути промаха: конкурентные вызовы одного fingerprint схлопываются в
// одно вычисление, все вызывающие получают общий результат
type ResultCache struct {
	store   Store
	ttls    map[string]time.Duration
	group   singleflight.Group
	metrics MetricsRecorder
	nowFn   func() time.Time
}

// New создает кеш результатов поверх хранилища
// ttls задает TTL по операциям; операция с TTL <= 0 не кешируется
func New(store Store, ttls map[string]time.Duration, m MetricsRecorder) *ResultCache {
	return &ResultCache{
		store:   store,
		ttls:    ttls,
		metrics: m,
		nowFn:   time.Now,
	}
}

// Disabled создает кеш, который никогда не кеширует (для тестов и отладки)
func Disabled() *ResultCache {
	return New(NewMemoryStore(), nil, nil)
}

// GetOrCompute возвращает закешированный результат или вычисляет его
// Ошибки вычисления не кешируются
func (c *ResultCache) GetOrCompute(
	ctx context.Context,
	operation string,
	key uint64,
	productID int64,
	compute func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	ttl := c.ttls[operation]
	if ttl <= 0 {
		return compute(ctx)
	}

	if value, ok := c.store.Get(key, c.nowFn()); ok {
		if c.metrics != nil {
			c.metrics.CacheHit(operation)
		}
		return value, nil
	}

	if c.metrics != nil {
		c.metrics.CacheMiss(operation)
	}

	flightKey := operation + ":" + strconv.FormatUint(key, 16)
	value, err, shared := c.group.Do(flightKey, func() (interface{}, error) {
		started := c.nowFn()
		result, err := compute(ctx)
		if c.metrics != nil {
			c.metrics.ObserveEvaluation(operation, c.nowFn().Sub(started))
		}
		if err != nil {
			return nil, err
		}
		c.store.Put(key, productID, result, c.nowFn().Add(ttl))
		return result, nil
	})

	if shared && c.metrics != nil {
		c.metrics.CacheShared(operation)
	}

	return value, err
}

// InvalidateProduct немедленно удаляет все записи продукта
func (c *ResultCache) InvalidateProduct(productID int64) {
	c.store.InvalidateProduct(productID)
}
