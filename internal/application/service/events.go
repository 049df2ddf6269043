package service

import (
	"context"
	"time"
)

type EntityAction string

const (
	ActionCreated EntityAction = "created"
	ActionUpdated EntityAction = "updated"
	ActionDeleted EntityAction = "deleted"
)

type EntityEvent struct {
	Entity     string       `json:"entity"`
	Action     EntityAction `json:"action"`
	ID         string       `json:"id"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// EventPublisher announces changes to stored entities. Implementations must
// not block the caller on broker I/O.
type EventPublisher interface {
	Publish(ctx context.Context, evt EntityEvent) error
}

type nopPublisher struct{}

// NewNopPublisher drops every event.
func NewNopPublisher() EventPublisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, EntityEvent) error { return nil }
