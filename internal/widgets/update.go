package widgets

import "context"

// Update edits the record addressed by Email. The email survives both a
// successful update and Reset so repeated edits to one target are easy.
type Update struct {
	status
	Email    string
	UserName string
	Rating   string

	api EmailUpdater
}

func NewUpdate(api EmailUpdater) *Update {
	return &Update{status: status{State: StateEditing}, api: api}
}

func (w *Update) SetRating(v string) bool {
	if !filterRating(v) {
		return false
	}
	w.Rating = v
	return true
}

func (w *Update) Submit(ctx context.Context) {
	w.begin()

	if w.Email == "" {
		w.fail("Email is required for update")
		return
	}
	if w.UserName == "" || w.Rating == "" {
		w.fail("Please fill in username and rating")
		return
	}
	if !validRating(w.Rating) {
		w.fail("Rating must be a number between 1 and 5")
		return
	}

	if _, err := w.api.UpdateByEmail(ctx, w.Email, w.UserName, w.Rating); err != nil {
		w.fail(failureMessage("Failed to update feedback", err))
		return
	}
	w.succeed("Feedback updated successfully!")
}

func (w *Update) Reset() {
	w.UserName, w.Rating = "", ""
	w.clear()
}
