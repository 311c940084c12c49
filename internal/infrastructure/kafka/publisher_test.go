package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/event"
	pkgkafka "github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/kafka"
)

type fakeProducer struct {
	topic       string
	messages    []pkgkafka.Message
	publishFunc func(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

func (f *fakeProducer) Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error {
	if f.publishFunc != nil {
		return f.publishFunc(ctx, topic, messages...)
	}
	f.topic = topic
	f.messages = append(f.messages, messages...)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestPublisherSendsEventsAsJSON(t *testing.T) {
	fake := &fakeProducer{}
	publisher := &Publisher{producer: fake, topic: "pipeline.events", logger: testLogger()}

	runID := uuid.New()
	detectedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	failure := event.NewFailureDetected(runID, "PIPE-001", 4, 2, 2, 4, 2, 14, detectedAt)

	err := publisher.Publish(context.Background(), failure)

	require.NoError(t, err)
	assert.Equal(t, "pipeline.events", fake.topic)
	require.Len(t, fake.messages, 1)

	msg := fake.messages[0]
	assert.Equal(t, []byte("PIPE-001"), msg.Key)
	assert.Equal(t, event.EventTypeFailureDetected, msg.Headers["event_type"])

	var decoded event.FailureDetected
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, runID, decoded.RunID)
	assert.Equal(t, 14, decoded.SummedRank)
	assert.Equal(t, detectedAt, decoded.DetectedAt)
}

func TestPublisherBatchesMixedEvents(t *testing.T) {
	fake := &fakeProducer{}
	publisher := &Publisher{producer: fake, topic: "pipeline.events", logger: testLogger()}

	runID := uuid.New()
	now := time.Now().UTC()
	failure := event.NewFailureDetected(runID, "PIPE-003", 3, 3, 1, 3, 1, 11, now)
	summary := event.NewRunCompleted(runID, 3, 3, 0, 1, now.Add(-time.Second), now)

	err := publisher.Publish(context.Background(), failure, summary)

	require.NoError(t, err)
	require.Len(t, fake.messages, 2)
	assert.Equal(t, event.EventTypeFailureDetected, fake.messages[0].Headers["event_type"])
	assert.Equal(t, event.EventTypeRunCompleted, fake.messages[1].Headers["event_type"])
	assert.Equal(t, []byte(runID.String()), fake.messages[1].Key)
}

func TestPublisherSkipsProducerForEmptyBatch(t *testing.T) {
	fake := &fakeProducer{
		publishFunc: func(_ context.Context, _ string, _ ...pkgkafka.Message) error {
			t.Fatal("producer should not be called for an empty batch")
			return nil
		},
	}
	publisher := &Publisher{producer: fake, topic: "pipeline.events", logger: testLogger()}

	err := publisher.Publish(context.Background())

	require.NoError(t, err)
}

func TestPublisherWrapsProducerError(t *testing.T) {
	fake := &fakeProducer{
		publishFunc: func(_ context.Context, _ string, _ ...pkgkafka.Message) error {
			return fmt.Errorf("broker unreachable")
		},
	}
	publisher := &Publisher{producer: fake, topic: "pipeline.events", logger: testLogger()}

	err := publisher.Publish(context.Background(),
		event.NewRunCompleted(uuid.New(), 1, 1, 0, 0, time.Now(), time.Now()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline.events")
	assert.Contains(t, err.Error(), "broker unreachable")
}

func TestNoopPublisherAcceptsEvents(t *testing.T) {
	publisher := NewNoopPublisher(testLogger())

	err := publisher.Publish(context.Background(),
		event.NewFailureDetected(uuid.New(), "PIPE-001", 4, 2, 2, 4, 2, 14, time.Now().UTC()))

	require.NoError(t, err)
}
