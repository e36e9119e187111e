package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const hoursKeyFormat = "schedule:hours:%d"

// WeeklyHoursCache кэш недельных графиков локаций поверх Redis.
// Нулевой указатель безопасен: все операции превращаются в no-op,
// сервис работает напрямую с БД.
//
// Кэш консультативный: запись инвалидируется синхронно при сохранении
// графика, но если инвалидация упала, устаревший график может отдаваться
// не дольше TTL. TTL - верхняя граница расхождения с БД
type WeeklyHoursCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWeeklyHoursCache создает кэш недельных графиков
func NewWeeklyHoursCache(client *redis.Client, ttl time.Duration) *WeeklyHoursCache {
	return &WeeklyHoursCache{client: client, ttl: ttl}
}

// Get читает график локации из кэша
func (c *WeeklyHoursCache) Get(ctx context.Context, locationID int64) (domain.WeeklyHours, error) {
	if c == nil || c.client == nil {
		return nil, ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, fmt.Sprintf(hoursKeyFormat, locationID)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var hours domain.WeeklyHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal weekly hours: %v", ErrUnmarshal, err)
	}

	return hours, nil
}

// Set сохраняет график локации в кэш с TTL
func (c *WeeklyHoursCache) Set(ctx context.Context, locationID int64, hours domain.WeeklyHours) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal weekly hours: %v", ErrMarshal, err)
	}

	return c.client.Set(ctx, fmt.Sprintf(hoursKeyFormat, locationID), raw, c.ttl).Err()
}

// Invalidate удаляет график локации из кэша
func (c *WeeklyHoursCache) Invalidate(ctx context.Context, locationID int64) error {
	if c == nil || c.client == nil {
		return nil
	}

	return c.client.Del(ctx, fmt.Sprintf(hoursKeyFormat, locationID)).Err()
}
