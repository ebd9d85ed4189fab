package notify

import (
	"context"

	"feedback-system/internal/models"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event describes a completed feedback mutation.
type Event struct {
	Action   Action
	Feedback models.Feedback
}

// Notifier publishes feedback events to some channel. Implementations must be
// safe for concurrent use.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}
