package repository

import (
	"context"
	"strings"
	"sync"

	"feedback-system/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryRepo is an in-process FeedbackStore. Records are kept in insertion
// order, which is also createdAt order.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []models.Feedback
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(_ context.Context, feedback *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	feedback.ID = bson.NewObjectID()
	feedback.CreatedAt = now()
	feedback.UpdatedAt = feedback.CreatedAt
	r.records = append(r.records, *feedback)
	return nil
}

func (r *MemoryRepo) List(_ context.Context) ([]models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Feedback, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *MemoryRepo) Search(_ context.Context, query string) ([]models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := []models.Feedback{}
	for _, f := range r.records {
		if strings.Contains(strings.ToLower(f.UserName), q) ||
			strings.Contains(strings.ToLower(f.Email), q) ||
			strings.Contains(strings.ToLower(string(f.Rating)), q) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *MemoryRepo) UpdateByID(_ context.Context, id bson.ObjectID, changes models.Changes) (*models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOfID(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	f := &r.records[i]
	f.UserName = changes.UserName
	f.Email = changes.Email
	f.Rating = changes.Rating
	f.UpdatedAt = now()
	updated := *f
	return &updated, nil
}

func (r *MemoryRepo) DeleteByID(_ context.Context, id bson.ObjectID) (*models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOfID(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return r.removeAt(i), nil
}

func (r *MemoryRepo) UpdateByEmail(_ context.Context, email, userName string, rating models.Rating) (*models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.newestWithEmail(email)
	if i < 0 {
		return nil, ErrNotFound
	}
	f := &r.records[i]
	f.UserName = userName
	f.Rating = rating
	f.UpdatedAt = now()
	updated := *f
	return &updated, nil
}

func (r *MemoryRepo) DeleteByEmail(_ context.Context, email string) (*models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.newestWithEmail(email)
	if i < 0 {
		return nil, ErrNotFound
	}
	return r.removeAt(i), nil
}

func (r *MemoryRepo) indexOfID(id bson.ObjectID) int {
	for i := range r.records {
		if r.records[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryRepo) newestWithEmail(email string) int {
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].Email == email {
			return i
		}
	}
	return -1
}

func (r *MemoryRepo) removeAt(i int) *models.Feedback {
	removed := r.records[i]
	r.records = append(r.records[:i], r.records[i+1:]...)
	return &removed
}
