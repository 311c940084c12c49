package events

import (
	"testing"
	"time"
)

type stubEvent struct {
	eventType   string
	aggregateID string
	occurredAt  time.Time
}

func (e stubEvent) EventType() string     { return e.eventType }
func (e stubEvent) AggregateID() string   { return e.aggregateID }
func (e stubEvent) OccurredAt() time.Time { return e.occurredAt }

func TestEventCollectorRecord(t *testing.T) {
	var c EventCollector

	if got := c.Events(); len(got) != 0 {
		t.Fatalf("expected no events on fresh collector, got %d", len(got))
	}

	c.Record(stubEvent{eventType: "thing.happened", aggregateID: "agg-1"})
	c.Record(stubEvent{eventType: "other.happened", aggregateID: "agg-1"})

	got := c.Events()
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].EventType() != "thing.happened" {
		t.Errorf("expected first event type thing.happened, got %s", got[0].EventType())
	}

	// Events() must not clear.
	if len(c.Events()) != 2 {
		t.Error("Events() cleared the collector")
	}
}

func TestEventCollectorClearEvents(t *testing.T) {
	var c EventCollector

	c.Record(stubEvent{eventType: "thing.happened", aggregateID: "agg-1"})

	cleared := c.ClearEvents()
	if len(cleared) != 1 {
		t.Fatalf("expected 1 cleared event, got %d", len(cleared))
	}

	if len(c.Events()) != 0 {
		t.Error("expected collector to be empty after ClearEvents")
	}

	// Clearing an empty collector yields nothing.
	if len(c.ClearEvents()) != 0 {
		t.Error("expected no events from second ClearEvents")
	}
}
