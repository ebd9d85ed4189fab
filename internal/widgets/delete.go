package widgets

import "context"

// Delete needs two submissions: the first arms Confirming, the second calls
// the API.
type Delete struct {
	status
	Email      string
	Confirming bool

	api EmailDeleter
}

func NewDelete(api EmailDeleter) *Delete {
	return &Delete{status: status{State: StateEditing}, api: api}
}

func (w *Delete) Submit(ctx context.Context) {
	w.Message, w.Error = "", ""

	if w.Email == "" {
		w.fail("Email is required for deletion")
		return
	}
	if !w.Confirming {
		w.Confirming = true
		w.State = StateEditing
		return
	}

	w.begin()
	if _, err := w.api.DeleteByEmail(ctx, w.Email); err != nil {
		w.Confirming = false
		w.fail(failureMessage("Failed to delete feedback", err))
		return
	}

	w.Email = ""
	w.Confirming = false
	w.succeed("Feedback deleted successfully!")
}

func (w *Delete) Cancel() {
	w.Email = ""
	w.Confirming = false
	w.clear()
}
