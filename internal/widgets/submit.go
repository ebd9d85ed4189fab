package widgets

import "context"

type Submit struct {
	status
	UserName string
	Email    string
	Rating   string

	api Creator
}

func NewSubmit(api Creator) *Submit {
	return &Submit{status: status{State: StateEditing}, api: api}
}

// SetRating rejects anything but a single digit 1-5, keeping the old value.
func (w *Submit) SetRating(v string) bool {
	if !filterRating(v) {
		return false
	}
	w.Rating = v
	return true
}

func (w *Submit) Submit(ctx context.Context) {
	w.begin()

	if w.UserName == "" || w.Email == "" || w.Rating == "" {
		w.fail("Please fill in all fields")
		return
	}
	if !validRating(w.Rating) {
		w.fail("Rating must be a number between 1 and 5")
		return
	}

	if _, err := w.api.CreateFeedback(ctx, w.UserName, w.Email, w.Rating); err != nil {
		w.fail(failureMessage("Failed to submit feedback", err))
		return
	}

	w.UserName, w.Email, w.Rating = "", "", ""
	w.succeed("Feedback submitted successfully!")
}

func (w *Submit) Reset() {
	w.UserName, w.Email, w.Rating = "", "", ""
	w.clear()
}
