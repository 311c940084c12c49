package events

import "time"

// DomainEvent is the interface all domain events must implement.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}
