package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicVHSCreated is the Watermill topic published when a tape is added to
// the catalog.
const TopicVHSCreated = "vhs.created"

// VHSCreatedEvent is published after a new VHS is persisted. The worker
// consumes it to warm the Redis read model.
type VHSCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	VHSID       uuid.UUID `json:"vhs_id"`
	Title       string    `json:"title"`
	ReleaseDate time.Time `json:"release_date"`
	Genre       string    `json:"genre"`
	RentalPrice float64   `json:"rental_price"`
	StockLevel  int32     `json:"stock_level"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}
