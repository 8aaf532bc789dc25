// Package alerts raises an operational notification when data-access
// failures persist. One notification fires per failure streak; a successful
// round-trip re-arms the notifier.
package alerts

import (
	"context"
	"fmt"
	"sync"

	apperrors "campus-assistant/internal/common/errors"
	"campus-assistant/internal/common/logger"
)

// Publisher delivers an alert to the operations channel.
type Publisher interface {
	Publish(ctx context.Context, subject, message string) error
}

type Notifier struct {
	mu          sync.Mutex
	consecutive int
	fired       bool

	threshold int
	publisher Publisher
	logger    logger.Logger
}

func NewNotifier(threshold int, publisher Publisher, log logger.Logger) *Notifier {
	if threshold < 1 {
		threshold = 1
	}
	return &Notifier{
		threshold: threshold,
		publisher: publisher,
		logger:    log.WithFields(map[string]interface{}{"component": "alerts"}),
	}
}

// ReportFailure counts a data-access failure and publishes once the streak
// reaches the threshold. Publish failures are logged, never propagated.
func (n *Notifier) ReportFailure(ctx context.Context, err error) {
	n.mu.Lock()
	n.consecutive++
	shouldFire := n.consecutive >= n.threshold && !n.fired
	if shouldFire {
		n.fired = true
	}
	streak := n.consecutive
	n.mu.Unlock()

	if !shouldFire {
		return
	}

	subject := "campus-assistant: data access failing"
	message := fmt.Sprintf("%d consecutive data-access failures, latest: %v (code=%s retryable=%t)",
		streak, err, apperrors.CodeOf(err), apperrors.IsRetryable(err))
	if pubErr := n.publisher.Publish(ctx, subject, message); pubErr != nil {
		stdErr := apperrors.NewAlertPublishFailedError(pubErr)
		n.logger.Error("alert publish failed", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"error":     pubErr.Error(),
		})
		return
	}

	n.logger.Warn("data access failure alert published", map[string]interface{}{
		"consecutiveFailures": streak,
	})
}

// ReportSuccess resets the failure streak and re-arms the notifier.
func (n *Notifier) ReportSuccess() {
	n.mu.Lock()
	n.consecutive = 0
	n.fired = false
	n.mu.Unlock()
}
