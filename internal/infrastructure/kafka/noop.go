package kafka

import (
	"context"
	"log/slog"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/port"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/events"
)

// NoopPublisher implements port.EventPublisher without a broker. It is wired
// when no Kafka brokers are configured, so a run can proceed with events
// visible only in the logs.
type NoopPublisher struct {
	logger *slog.Logger
}

var _ port.EventPublisher = (*NoopPublisher)(nil)

// NewNoopPublisher creates a publisher that drops events after logging them.
func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

// Publish logs each event at debug level and discards it.
func (p *NoopPublisher) Publish(ctx context.Context, domainEvents ...events.DomainEvent) error {
	for _, evt := range domainEvents {
		p.logger.DebugContext(ctx, "event publishing disabled, dropping event",
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_id", evt.AggregateID()),
		)
	}
	return nil
}
