// Package widgets holds the four feedback form widgets. Each widget owns its
// own inputs and state and talks to exactly one API capability; widgets never
// share state with each other.
package widgets

import (
	"context"
	"errors"

	"feedback-system/internal/client"
	"feedback-system/internal/models"
)

type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

type Creator interface {
	CreateFeedback(ctx context.Context, userName, email, rating string) (*models.Feedback, error)
}

type EmailUpdater interface {
	UpdateByEmail(ctx context.Context, email, userName, rating string) (*models.Feedback, error)
}

type EmailDeleter interface {
	DeleteByEmail(ctx context.Context, email string) (*models.Feedback, error)
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Feedback, error)
}

// status is the message/error pair every widget renders.
type status struct {
	State   State
	Message string
	Error   string
}

func (s *status) begin() {
	s.Message = ""
	s.Error = ""
	s.State = StateSubmitting
}

func (s *status) fail(msg string) {
	s.State = StateError
	s.Message = ""
	s.Error = msg
}

func (s *status) succeed(msg string) {
	s.State = StateSuccess
	s.Error = ""
	s.Message = msg
}

func (s *status) clear() {
	*s = status{State: StateEditing}
}

// filterRating accepts "" or a single digit 1-5.
func filterRating(v string) bool {
	return v == "" || len(v) == 1 && v[0] >= '1' && v[0] <= '5'
}

// failureMessage prefers the server's message; otherwise it describes the
// transport failure.
func failureMessage(prefix string, err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return prefix + ": " + err.Error()
}

func validRating(v string) bool {
	_, err := models.ParseRating(v)
	return err == nil
}
