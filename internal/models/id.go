package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrInvalidID = errors.New("invalid feedback id")

// ParseID accepts only the canonical 24-character hex form of an ObjectID.
func ParseID(s string) (bson.ObjectID, error) {
	if len(s) != 24 {
		return bson.NilObjectID, ErrInvalidID
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return bson.NilObjectID, ErrInvalidID
		}
	}
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return id, nil
}
