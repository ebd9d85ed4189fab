package widgets

import (
	"context"
	"strings"

	"feedback-system/internal/models"
)

type Search struct {
	status
	Query   string
	Results []models.Feedback

	api Searcher
}

func NewSearch(api Searcher) *Search {
	return &Search{status: status{State: StateEditing}, api: api}
}

func (w *Search) Submit(ctx context.Context) {
	if strings.TrimSpace(w.Query) == "" {
		w.fail("Please enter a search query")
		return
	}

	w.begin()
	w.Results = nil

	results, err := w.api.Search(ctx, w.Query)
	if err != nil {
		w.fail(failureMessage("An error occurred during search", err))
		return
	}

	w.Results = results
	if len(results) == 0 {
		w.succeed("No feedback found matching this query")
		return
	}
	w.succeed("")
}

func (w *Search) Clear() {
	w.Query = ""
	w.Results = nil
	w.clear()
}
