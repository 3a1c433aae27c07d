package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func dailyTotalsKey(year, week int) string {
	return fmt.Sprintf("daily_totals_%d_%d", year, week)
}

func weeklyTotalsKey(year, week int) string {
	return fmt.Sprintf("weekly_totals_%d_%d", year, week)
}

// cacheGet reports whether v was filled from redis. Failures are logged and count as a miss.
func (h *Handler) cacheGet(parent context.Context, key string, v any) bool {
	if h.redisClient == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(parent, time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	data, err := h.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			h.logger.Warn("Cache konnte nicht gelesen werden", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		h.logger.Warn("Cache-Eintrag ist beschädigt", "key", key, "error", err)
		return false
	}
	return true
}

func (h *Handler) cacheSet(parent context.Context, key string, v any) {
	if h.redisClient == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Warn("Cache-Eintrag konnte nicht serialisiert werden", "key", key, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(parent, time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	if err := h.redisClient.Set(ctx, key, data, time.Duration(h.config.Redis.TotalsExpiration)*time.Second).Err(); err != nil {
		h.logger.Warn("Cache konnte nicht geschrieben werden", "key", key, "error", err)
	}
}

// invalidateTotals drops both cached aggregations of a week.
func (h *Handler) invalidateTotals(parent context.Context, year, week int) {
	if h.redisClient == nil {
		return
	}

	ctx, cancel := context.WithTimeout(parent, time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	if err := h.redisClient.Del(ctx, dailyTotalsKey(year, week), weeklyTotalsKey(year, week)).Err(); err != nil {
		h.logger.Warn("Cache konnte nicht invalidiert werden", "year", year, "week", week, "error", err)
	}
}

// invalidateAllTotals drops every cached aggregation, used when a change cascades over weeks.
func (h *Handler) invalidateAllTotals(parent context.Context) {
	if h.redisClient == nil {
		return
	}

	ctx, cancel := context.WithTimeout(parent, time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	for _, pattern := range []string{"daily_totals_*", "weekly_totals_*"} {
		iter := h.redisClient.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			if err := h.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
				h.logger.Warn("Cache konnte nicht invalidiert werden", "key", iter.Val(), "error", err)
			}
		}
		if err := iter.Err(); err != nil {
			h.logger.Warn("Cache konnte nicht durchsucht werden", "pattern", pattern, "error", err)
		}
	}
}
