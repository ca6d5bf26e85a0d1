package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for rental lifecycle events.
const (
	TopicRentalCreated  = "rental.created"
	TopicRentalFinished = "rental.finished"
)

// RentalCreatedEvent is published in the same transaction that inserts the
// rental. Consumers subscribe via EventBus.Subscribe(ctx, events.TopicRentalCreated).
type RentalCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	RentalID   uuid.UUID `json:"rental_id"`
	VHSID      uuid.UUID `json:"vhs_id"`
	UserID     uuid.UUID `json:"user_id"`
	DueDate    time.Time `json:"due_date"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RentalFinishedEvent is published in the same transaction that records the
// return date and price.
type RentalFinishedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	RentalID   uuid.UUID `json:"rental_id"`
	VHSID      uuid.UUID `json:"vhs_id"`
	UserID     uuid.UUID `json:"user_id"`
	Price      float64   `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}
