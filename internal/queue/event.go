// Package queue defines the domain events exchanged over the message
// broker along with their publisher and the background consumer.
package queue

import (
	"time"

	"github.com/royalvilla/villa-catalog-api/internal/model"
)

// VillaCreatedEvent is published when a villa is successfully created.
// It carries enough information for downstream consumers to log or
// trigger notifications without querying the primary database.
type VillaCreatedEvent struct {
	VillaID   uint64  `json:"villa_id"`
	Name      string  `json:"name"`
	Occupancy uint32  `json:"occupancy"`
	Rate      float64 `json:"rate"`
	CreatedAt string  `json:"created_at"`
}

// NewVillaCreatedEvent builds the event payload from a freshly
// persisted villa.
func NewVillaCreatedEvent(v *model.Villa) VillaCreatedEvent {
	createdAt := v.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return VillaCreatedEvent{
		VillaID:   v.ID,
		Name:      v.Name,
		Occupancy: v.Occupancy,
		Rate:      v.Rate,
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
	}
}
