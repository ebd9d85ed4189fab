package models

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingFields = errors.New("required fields are missing")
	ErrInvalidRating = errors.New("rating must be a number between 1 and 5")
)

const (
	MinRating = 1
	MaxRating = 5
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
		_, err := ParseRating(fl.Field().String())
		return err == nil
	})
	return v
}

// ParseRating parses a base-10 integer rating and checks it lies in [1,5].
func ParseRating(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < MinRating || n > MaxRating {
		return 0, ErrInvalidRating
	}
	return n, nil
}

// Normalize returns a valid rating as plain decimal text, so " 03 " is
// stored as "3". Invalid ratings are returned unchanged.
func (r Rating) Normalize() Rating {
	n, err := ParseRating(string(r))
	if err != nil {
		return r
	}
	return Rating(strconv.Itoa(n))
}

// Validate reports ErrMissingFields before ErrInvalidRating.
func (in FeedbackInput) Validate() error {
	return check(in)
}

func (in EmailUpdateInput) Validate() error {
	return check(in)
}

func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return ErrMissingFields
		}
	}
	return ErrInvalidRating
}
