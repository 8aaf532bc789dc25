// Package history keeps a best-effort query log in Redis: per-category
// counters and a capped list of recent questions. Nothing here can affect
// the answer a caller receives — write failures are logged and dropped.
package history

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	apperrors "campus-assistant/internal/common/errors"
	"campus-assistant/internal/common/logger"
	"campus-assistant/internal/models"
)

const (
	statsKeyPrefix = "assistant:stats:"
	recentKey      = "assistant:recent"
	recentCap      = 100
)

var statCategories = []models.Category{
	models.CategoryClass,
	models.CategoryEvent,
	models.CategoryDepartment,
	models.CategoryFAQ,
	models.CategoryUnknown,
}

type Recorder struct {
	client *redis.Client
	logger logger.Logger
}

func NewRecorder(client *redis.Client, log logger.Logger) *Recorder {
	return &Recorder{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "history"}),
	}
}

// Record logs one processed question under its resolved category.
func (r *Recorder) Record(ctx context.Context, question string, category models.Category) {
	pipe := r.client.Pipeline()
	pipe.Incr(ctx, statsKeyPrefix+string(category))
	pipe.LPush(ctx, recentKey, question)
	pipe.LTrim(ctx, recentKey, 0, recentCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		stdErr := apperrors.NewHistoryWriteFailedError(err)
		r.logger.Warn("history write failed", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"error":     err.Error(),
		})
	}
}

// Stats returns the per-category query counters.
func (r *Recorder) Stats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64, len(statCategories))
	for _, category := range statCategories {
		count, err := r.client.Get(ctx, statsKeyPrefix+string(category)).Int64()
		if err == redis.Nil {
			count = 0
		} else if err != nil {
			return nil, fmt.Errorf("read stats for %s: %w", category, err)
		}
		stats[string(category)] = count
	}
	return stats, nil
}

// Recent returns up to n of the most recently asked questions, newest first.
func (r *Recorder) Recent(ctx context.Context, n int64) ([]string, error) {
	if n <= 0 || n > recentCap {
		n = recentCap
	}
	questions, err := r.client.LRange(ctx, recentKey, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read recent questions: %w", err)
	}
	return questions, nil
}
