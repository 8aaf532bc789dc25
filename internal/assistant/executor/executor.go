// Package executor turns a structured intent into a natural-language answer.
// Every invocation issues a single fetch against the data-access layer and
// never surfaces an error to the caller: failures collapse to a canned
// message, no-match outcomes get category-specific fallback text.
package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "campus-assistant/internal/common/errors"
	"campus-assistant/internal/common/logger"
	"campus-assistant/internal/common/metrics"
	"campus-assistant/internal/models"
	"campus-assistant/internal/store"
)

// Config tunes answer synthesis. Now is the clock used for the "upcoming"
// event window; tests inject a fixed one.
type Config struct {
	EventLimit int
	MaxListed  int
	Now        func() time.Time
}

// Stores bundles the per-category data-access collaborators.
type Stores struct {
	Classes     store.ClassStore
	Events      store.EventStore
	Departments store.DepartmentStore
	FAQs        store.FAQStore
}

// FailureReporter receives the outcome of each data-access round-trip.
type FailureReporter interface {
	ReportFailure(ctx context.Context, err error)
	ReportSuccess()
}

// MetricsRecorder mirrors the prometheus measurements at the OpenTelemetry
// layer. A nil recorder disables the mirror.
type MetricsRecorder interface {
	RecordQueryProcessed(ctx context.Context, category, status string)
	RecordQueryDuration(ctx context.Context, duration time.Duration, category string)
}

type Executor struct {
	config   *Config
	stores   Stores
	alerter  FailureReporter
	recorder MetricsRecorder
	logger   logger.Logger
	now      func() time.Time
}

func New(config *Config, stores Stores, alerter FailureReporter, recorder MetricsRecorder, log logger.Logger) *Executor {
	if config == nil {
		config = &Config{}
	}
	if config.EventLimit == 0 {
		config.EventLimit = 5
	}
	if config.MaxListed == 0 {
		config.MaxListed = 5
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return &Executor{
		config:   config,
		stores:   stores,
		alerter:  alerter,
		recorder: recorder,
		logger:   log.WithFields(map[string]interface{}{"component": "executor"}),
		now:      now,
	}
}

// Execute answers one intent. It always returns a user-facing string; a
// data-access failure yields the generic error message and is reported to
// the alerter, never retried.
func (e *Executor) Execute(ctx context.Context, intent models.Intent) string {
	start := time.Now()
	answer, err := e.run(ctx, intent)
	elapsed := time.Since(start)
	metrics.QueryDuration.WithLabelValues(string(intent.Category)).Observe(elapsed.Seconds())
	if e.recorder != nil {
		e.recorder.RecordQueryDuration(ctx, elapsed, string(intent.Category))
	}

	if err != nil {
		var stdErr *apperrors.StandardError
		if errors.Is(err, context.DeadlineExceeded) {
			stdErr = apperrors.NewQueryTimeoutError(err)
		} else {
			stdErr = apperrors.NewDataAccessFailedError(err)
		}
		metrics.QueryFailures.WithLabelValues(string(intent.Category), string(apperrors.CodeOf(stdErr))).Inc()
		if e.recorder != nil {
			e.recorder.RecordQueryProcessed(ctx, string(intent.Category), "error")
		}
		if e.alerter != nil {
			e.alerter.ReportFailure(ctx, stdErr)
		}
		e.logger.Error("query execution failed", map[string]interface{}{
			"category":  string(intent.Category),
			"errorCode": string(stdErr.Code),
			"error":     err.Error(),
		})
		return MessageProcessingError
	}

	metrics.QueriesProcessed.WithLabelValues(string(intent.Category)).Inc()
	if e.recorder != nil {
		e.recorder.RecordQueryProcessed(ctx, string(intent.Category), "success")
	}
	if e.alerter != nil {
		e.alerter.ReportSuccess()
	}
	return answer
}

func (e *Executor) run(ctx context.Context, intent models.Intent) (string, error) {
	switch intent.Category {
	case models.CategoryClass:
		return e.runClass(ctx, intent)
	case models.CategoryEvent:
		return e.runEvent(ctx, intent)
	case models.CategoryDepartment:
		return e.runDepartment(ctx, intent)
	case models.CategoryFAQ:
		return e.runFAQ(ctx, intent)
	default:
		return MessageUnknown, nil
	}
}

func (e *Executor) runClass(ctx context.Context, intent models.Intent) (string, error) {
	filter := store.ClassFilter{}
	if intent.Day != "" {
		filter.Day = capitalizeDay(intent.Day)
	}
	if len(intent.Keywords) > 0 {
		filter.Keyword = intent.Keywords[0]
	}

	records, err := e.stores.Classes.SearchClasses(ctx, filter)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		metrics.QueryFallbacks.WithLabelValues(string(models.CategoryClass)).Inc()
		if intent.Day != "" {
			return fmt.Sprintf("I couldn't find any classes scheduled for %s.", intent.Day), nil
		}
		return MessageNoClasses, nil
	}
	return formatClassAnswer(records, e.config.MaxListed), nil
}

func (e *Executor) runEvent(ctx context.Context, intent models.Intent) (string, error) {
	filter := store.EventFilter{
		From:  e.now().Format("2006-01-02"),
		Limit: e.config.EventLimit,
	}
	if len(intent.Keywords) > 0 {
		filter.Keyword = intent.Keywords[0]
	}

	records, err := e.stores.Events.SearchUpcomingEvents(ctx, filter)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		metrics.QueryFallbacks.WithLabelValues(string(models.CategoryEvent)).Inc()
		return MessageNoEvents, nil
	}
	return formatEventAnswer(records), nil
}

func (e *Executor) runDepartment(ctx context.Context, intent models.Intent) (string, error) {
	var keyword string
	if len(intent.Keywords) > 0 {
		keyword = intent.Keywords[0]
	}

	records, err := e.stores.Departments.SearchDepartments(ctx, keyword)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		metrics.QueryFallbacks.WithLabelValues(string(models.CategoryDepartment)).Inc()
		return MessageNoDepartments, nil
	}
	return formatDepartmentAnswer(records), nil
}

func (e *Executor) runFAQ(ctx context.Context, intent models.Intent) (string, error) {
	records, err := e.stores.FAQs.ListFAQs(ctx)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		metrics.QueryFallbacks.WithLabelValues(string(models.CategoryFAQ)).Inc()
		return MessageFAQGuidance, nil
	}

	best, score := bestMatch(intent.Keywords, records)
	if score == 0 {
		metrics.QueryFallbacks.WithLabelValues(string(models.CategoryFAQ)).Inc()
		return MessageFAQNoMatch, nil
	}
	return best.Answer, nil
}

// capitalizeDay turns a lowercase weekday name into its stored form
// ("monday" -> "Monday").
func capitalizeDay(day string) string {
	if day == "" {
		return ""
	}
	return strings.ToUpper(day[:1]) + day[1:]
}
