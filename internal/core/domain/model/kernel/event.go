package kernel

import "time"

// DomainEvent is raised by an aggregate when something business-relevant
// happened to it. Events are collected on the aggregate and published after
// the unit of work that persisted the change commits.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}
