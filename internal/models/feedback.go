package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Feedback struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserName  string        `bson:"userName" json:"userName"`
	Email     string        `bson:"email" json:"email"`
	Rating    Rating        `bson:"rating" json:"rating"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Rating is stored as text. Clients may send it as a JSON string or number;
// either way it is kept in its decimal text form.
type Rating string

var errRatingType = errors.New("rating must be a string or a number")

func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Rating(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errRatingType
	}
	*r = Rating(n.String())
	return nil
}

// FeedbackInput is the body of create and update-by-id requests.
type FeedbackInput struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Rating   Rating `json:"rating" validate:"required,rating"`
}

// EmailUpdateInput is the body of update-by-email requests; the email comes
// from the path.
type EmailUpdateInput struct {
	UserName string `json:"userName" validate:"required"`
	Rating   Rating `json:"rating" validate:"required,rating"`
}

// Changes holds the fields written by an update.
type Changes struct {
	UserName string
	Email    string
	Rating   Rating
}
