package repository

import (
	"context"
	"errors"
	"time"

	"feedback-system/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrNotFound is returned when an id- or email-scoped operation matches nothing.
var ErrNotFound = errors.New("feedback not found")

// FeedbackStore is the persistence contract the API handlers depend on.
// Email-scoped methods touch at most one record: the most recently created
// one carrying that email.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	List(ctx context.Context) ([]models.Feedback, error)
	Search(ctx context.Context, query string) ([]models.Feedback, error)
	UpdateByID(ctx context.Context, id bson.ObjectID, changes models.Changes) (*models.Feedback, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*models.Feedback, error)
	UpdateByEmail(ctx context.Context, email, userName string, rating models.Rating) (*models.Feedback, error)
	DeleteByEmail(ctx context.Context, email string) (*models.Feedback, error)
}

// now is truncated to the store's millisecond precision so a record returned
// from Create matches what a later read yields.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
