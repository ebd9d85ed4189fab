package repository

import (
	"context"
	"testing"

	"feedback-system/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func seed(t *testing.T, r *MemoryRepo, records ...models.Feedback) []models.Feedback {
	t.Helper()
	out := make([]models.Feedback, 0, len(records))
	for _, f := range records {
		f := f
		require.NoError(t, r.Create(context.Background(), &f))
		out = append(out, f)
	}
	return out
}

func TestMemoryRepo_CreateAndList(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	created := seed(t, r, models.Feedback{UserName: "bob", Email: "bob@x.com", Rating: "3"})
	assert.False(t, created[0].ID.IsZero())
	assert.False(t, created[0].CreatedAt.IsZero())
	assert.Equal(t, created[0].CreatedAt, created[0].UpdatedAt)

	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created[0], list[0])
}

func TestMemoryRepo_Search(t *testing.T) {
	r := NewMemoryRepo()
	seed(t, r,
		models.Feedback{UserName: "alice", Email: "Alice@Example.com", Rating: "5"},
		models.Feedback{UserName: "bob", Email: "bob@x.com", Rating: "3"},
		models.Feedback{UserName: "carol", Email: "c@y.org", Rating: "1"},
	)

	testCases := []struct {
		query string
		want  []string
	}{
		{"alice", []string{"alice"}},
		{"EXAMPLE", []string{"alice"}},
		{"3", []string{"bob"}},
		{".com", []string{"alice", "bob"}},
		{"zzz", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			results, err := r.Search(context.Background(), tc.query)
			require.NoError(t, err)
			assert.NotNil(t, results)
			var names []string
			for _, f := range results {
				names = append(names, f.UserName)
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestMemoryRepo_UpdateByID(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	created := seed(t, r, models.Feedback{UserName: "bob", Email: "bob@x.com", Rating: "3"})

	updated, err := r.UpdateByID(ctx, created[0].ID, models.Changes{UserName: "robert", Email: "rob@x.com", Rating: "4"})
	require.NoError(t, err)
	assert.Equal(t, created[0].ID, updated.ID)
	assert.Equal(t, created[0].CreatedAt, updated.CreatedAt)
	assert.Equal(t, "robert", updated.UserName)
	assert.Equal(t, "rob@x.com", updated.Email)
	assert.Equal(t, models.Rating("4"), updated.Rating)

	_, err = r.UpdateByID(ctx, bson.NewObjectID(), models.Changes{UserName: "x", Email: "x", Rating: "1"})
	assert.ErrorIs(t, err, ErrNotFound)

	list, _ := r.List(ctx)
	assert.Equal(t, *updated, list[0])
}

func TestMemoryRepo_DeleteByID(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	created := seed(t, r, models.Feedback{UserName: "bob", Email: "bob@x.com", Rating: "3"})

	_, err := r.DeleteByID(ctx, bson.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err := r.DeleteByID(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, created[0], *deleted)

	list, _ := r.List(ctx)
	assert.Empty(t, list)
}

func TestMemoryRepo_EmailScopedActsOnNewest(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	created := seed(t, r,
		models.Feedback{UserName: "first", Email: "dup@x.com", Rating: "1"},
		models.Feedback{UserName: "second", Email: "dup@x.com", Rating: "2"},
	)

	updated, err := r.UpdateByEmail(ctx, "dup@x.com", "renamed", "5")
	require.NoError(t, err)
	assert.Equal(t, created[1].ID, updated.ID)
	assert.Equal(t, "dup@x.com", updated.Email)

	deleted, err := r.DeleteByEmail(ctx, "dup@x.com")
	require.NoError(t, err)
	assert.Equal(t, created[1].ID, deleted.ID)

	list, _ := r.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "first", list[0].UserName)

	_, err = r.DeleteByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.UpdateByEmail(ctx, "nobody@x.com", "a", "1")
	assert.ErrorIs(t, err, ErrNotFound)
}
