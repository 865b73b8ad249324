package model

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventProjectCreated     EventType = "project.created"
	EventProjectUpdated     EventType = "project.updated"
	EventProjectDeleted     EventType = "project.deleted"
	EventProductTypeCreated EventType = "product_type.created"
	EventProductTypeDeleted EventType = "product_type.deleted"
)

// ChangeEvent is published after every successful mutation so that other
// clients holding a local copy of the lists know to refetch.
type ChangeEvent struct {
	Type       EventType `json:"type"`
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name,omitempty"`
	Affected   int64     `json:"affected,omitempty"` // projects touched by a cascade
	OccurredAt time.Time `json:"occurredAt"`
}
