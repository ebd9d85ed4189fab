package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"feedback-system/internal/client"
	"feedback-system/internal/handlers"
	"feedback-system/internal/repository"
	"feedback-system/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	web   http.Handler
	store *repository.MemoryRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := repository.NewMemoryRepo()
	api := httptest.NewServer(router.NewAPIRouter(handlers.NewFeedbackHandler(store, nil)))
	t.Cleanup(api.Close)

	return &testEnv{
		web:   NewServer(client.New(api.URL, time.Second)).Routes(),
		store: store,
	}
}

func (e *testEnv) post(t *testing.T, path string, form url.Values) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.web.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func (e *testEnv) count(t *testing.T) int {
	t.Helper()
	list, err := e.store.List(context.Background())
	require.NoError(t, err)
	return len(list)
}

func TestIndex(t *testing.T) {
	env := newTestEnv(t)
	w := httptest.NewRecorder()
	env.web.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	for _, widget := range []string{"submit", "update", "delete", "search"} {
		assert.Contains(t, body, `data-widget="`+widget+`" data-state="editing"`)
	}
}

func TestSubmitWidget(t *testing.T) {
	env := newTestEnv(t)

	body := env.post(t, "/submit", url.Values{"userName": {"bob"}, "email": {"bob@x.com"}, "rating": {"3"}})
	assert.Contains(t, body, "Feedback submitted successfully!")
	assert.Contains(t, body, `data-widget="submit" data-state="success"`)
	assert.NotContains(t, body, `value="bob@x.com"`, "fields are cleared on success")
	assert.Equal(t, 1, env.count(t))

	body = env.post(t, "/submit", url.Values{"userName": {"bob"}, "email": {"bob@x.com"}, "rating": {"8"}})
	assert.Contains(t, body, "Please fill in all fields", "a filtered-out rating leaves the field empty")
	assert.Contains(t, body, `value="bob@x.com"`)
	assert.Equal(t, 1, env.count(t))
}

func TestUpdateWidget(t *testing.T) {
	env := newTestEnv(t)
	env.post(t, "/submit", url.Values{"userName": {"bob"}, "email": {"bob@x.com"}, "rating": {"3"}})

	body := env.post(t, "/update", url.Values{"email": {"bob@x.com"}, "userName": {"bobby"}, "rating": {"5"}})
	assert.Contains(t, body, "Feedback updated successfully!")
	assert.Contains(t, body, `id="update-email" name="email" value="bob@x.com"`)

	body = env.post(t, "/update", url.Values{"email": {"nobody@x.com"}, "userName": {"x"}, "rating": {"1"}})
	assert.Contains(t, body, "Feedback not found with this email")

	body = env.post(t, "/update/reset", url.Values{"email": {"bob@x.com"}, "userName": {"x"}})
	assert.Contains(t, body, `id="update-email" name="email" value="bob@x.com"`)
	assert.Contains(t, body, `id="update-username" name="userName" value=""`)
}

func TestDeleteWidget(t *testing.T) {
	env := newTestEnv(t)
	env.post(t, "/submit", url.Values{"userName": {"bob"}, "email": {"bob@x.com"}, "rating": {"3"}})

	body := env.post(t, "/delete", url.Values{"email": {"bob@x.com"}, "confirm": {"false"}})
	assert.Contains(t, body, "Confirm Delete")
	assert.Contains(t, body, `name="confirm" value="true"`)
	assert.Equal(t, 1, env.count(t), "arming must not call the API")

	body = env.post(t, "/delete/cancel", url.Values{"email": {"bob@x.com"}, "confirm": {"true"}})
	assert.NotContains(t, body, "Confirm Delete")
	assert.Equal(t, 1, env.count(t))

	body = env.post(t, "/delete", url.Values{"email": {"bob@x.com"}, "confirm": {"true"}})
	assert.Contains(t, body, "Feedback deleted successfully!")
	assert.Equal(t, 0, env.count(t))

	body = env.post(t, "/delete", url.Values{"email": {"bob@x.com"}, "confirm": {"true"}})
	assert.Contains(t, body, "Feedback not found with this email")
	assert.Contains(t, body, `name="confirm" value="false"`)
}

func TestSearchWidget(t *testing.T) {
	env := newTestEnv(t)
	env.post(t, "/submit", url.Values{"userName": {"alice"}, "email": {"Alice@Example.com"}, "rating": {"5"}})

	body := env.post(t, "/search", url.Values{"query": {"alice"}})
	assert.Contains(t, body, "Search Results (1)")
	assert.Contains(t, body, "Alice@Example.com")

	body = env.post(t, "/search", url.Values{"query": {"nobody"}})
	assert.Contains(t, body, "No feedback found matching this query")

	body = env.post(t, "/search", url.Values{"query": {""}})
	assert.Contains(t, body, "Please enter a search query")

	body = env.post(t, "/search/clear", url.Values{"query": {"alice"}})
	assert.NotContains(t, body, "Search Results")
	assert.Contains(t, body, `id="search-query" name="query" value=""`)
}

func TestWidgetsAreIsolated(t *testing.T) {
	env := newTestEnv(t)
	body := env.post(t, "/update", url.Values{"email": {"bob@x.com"}})
	assert.Contains(t, body, `data-widget="update" data-state="error"`)
	assert.Contains(t, body, `data-widget="submit" data-state="editing"`)
	assert.Contains(t, body, `data-widget="delete" data-state="editing"`)
	assert.Contains(t, body, `data-widget="search" data-state="editing"`)
}
