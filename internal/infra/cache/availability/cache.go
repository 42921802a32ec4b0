// Package availability кэш занятых слотов в Redis.
// Ключ - пара (услуга, дата), значение - JSON список занятых времен.
// Кэш опционален: при выключенном Redis usecases работают напрямую с БД.
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asavich/GymClub-BookingService/internal/domain"
	"github.com/asavich/GymClub-BookingService/pkg/types"
)

// Cache кэш занятых слотов поверх Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// NewCache создает кэш занятых слотов
func NewCache(client *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// key формирует ключ кэша для пары (услуга, дата)
func key(service string, date time.Time) string {
	return fmt.Sprintf("booked:%s:%s", service, date.Format(domain.DateFormat))
}

// GetBookedTimes возвращает занятые слоты из кэша.
// Второе возвращаемое значение false означает промах кэша.
// Ошибки Redis не фатальны: логируются и трактуются как промах,
// источником истины остается БД.
func (c *Cache) GetBookedTimes(ctx context.Context, service string, date time.Time) ([]types.TimeString, bool) {
	raw, err := c.client.Get(ctx, key(service, date)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("availability cache: get failed for service=%s date=%s: %v",
			service, date.Format(domain.DateFormat), err)
		return nil, false
	}

	var times []types.TimeString
	if err := json.Unmarshal([]byte(raw), &times); err != nil {
		c.log.Warn("availability cache: corrupted entry for service=%s date=%s: %v",
			service, date.Format(domain.DateFormat), err)
		return nil, false
	}

	return times, true
}

// SetBookedTimes сохраняет занятые слоты в кэш с TTL
func (c *Cache) SetBookedTimes(ctx context.Context, service string, date time.Time, times []types.TimeString) {
	raw, err := json.Marshal(times)
	if err != nil {
		c.log.Warn("availability cache: marshal failed for service=%s date=%s: %v",
			service, date.Format(domain.DateFormat), err)
		return
	}

	if err := c.client.Set(ctx, key(service, date), raw, c.ttl).Err(); err != nil {
		c.log.Warn("availability cache: set failed for service=%s date=%s: %v",
			service, date.Format(domain.DateFormat), err)
	}
}

// Invalidate сбрасывает кэш для пары (услуга, дата).
// Вызывается после создания и удаления бронирования.
func (c *Cache) Invalidate(ctx context.Context, service string, date time.Time) {
	if err := c.client.Del(ctx, key(service, date)).Err(); err != nil {
		c.log.Warn("availability cache: invalidate failed for service=%s date=%s: %v",
			service, date.Format(domain.DateFormat), err)
	}
}
