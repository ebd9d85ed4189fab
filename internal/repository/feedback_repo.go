package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"feedback-system/internal/database"
	"feedback-system/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const feedbackCollection = "feedbacks"

type FeedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo(db *database.Mongo) *FeedbackRepo {
	return &FeedbackRepo{
		collection: db.Collection(feedbackCollection),
	}
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

func (r *FeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = bson.NewObjectID()
	feedback.CreatedAt = now()
	feedback.UpdatedAt = feedback.CreatedAt
	if _, err := r.collection.InsertOne(ctx, feedback); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepo) List(ctx context.Context) ([]models.Feedback, error) {
	return r.find(ctx, bson.M{})
}

// Search matches query literally as a case-insensitive substring of
// userName, email or rating.
func (r *FeedbackRepo) Search(ctx context.Context, query string) ([]models.Feedback, error) {
	pattern := bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
	return r.find(ctx, bson.M{"$or": bson.A{
		bson.M{"userName": pattern},
		bson.M{"email": pattern},
		bson.M{"rating": pattern},
	}})
}

func (r *FeedbackRepo) find(ctx context.Context, filter bson.M) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	results := []models.Feedback{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode feedback: %w", err)
	}
	return results, nil
}

func (r *FeedbackRepo) UpdateByID(ctx context.Context, id bson.ObjectID, changes models.Changes) (*models.Feedback, error) {
	update := bson.M{"$set": bson.M{
		"userName":  changes.UserName,
		"email":     changes.Email,
		"rating":    changes.Rating,
		"updatedAt": now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return decodeOne(r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts))
}

func (r *FeedbackRepo) DeleteByID(ctx context.Context, id bson.ObjectID) (*models.Feedback, error) {
	return decodeOne(r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}))
}

func (r *FeedbackRepo) UpdateByEmail(ctx context.Context, email, userName string, rating models.Rating) (*models.Feedback, error) {
	update := bson.M{"$set": bson.M{
		"userName":  userName,
		"rating":    rating,
		"updatedAt": now(),
	}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetSort(newestFirst)
	return decodeOne(r.collection.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts))
}

func (r *FeedbackRepo) DeleteByEmail(ctx context.Context, email string) (*models.Feedback, error) {
	opts := options.FindOneAndDelete().SetSort(newestFirst)
	return decodeOne(r.collection.FindOneAndDelete(ctx, bson.M{"email": email}, opts))
}

func decodeOne(res *mongo.SingleResult) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := res.Decode(&feedback); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &feedback, nil
}

// EnsureIndexes creates the email lookup index used by email-scoped operations.
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}
