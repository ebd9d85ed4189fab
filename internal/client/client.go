// Package client talks to the feedback API on behalf of the form widgets.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"feedback-system/internal/models"

	"github.com/google/uuid"
)

const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the API. Message is the server's
// "message" field, verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status code %d", e.Status)
	}
	return e.Message
}

// NetworkError covers transport failures and timeouts.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type mutationResponse struct {
	Message  string          `json:"message"`
	Feedback models.Feedback `json:"feedback"`
}

type searchResponse struct {
	Results []models.Feedback `json:"results"`
}

func (c *Client) CreateFeedback(ctx context.Context, userName, email, rating string) (*models.Feedback, error) {
	body := map[string]string{"userName": userName, "email": email, "rating": rating}
	var resp mutationResponse
	if err := c.do(ctx, http.MethodPost, "/api/feedback", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Feedback, nil
}

func (c *Client) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	var list []models.Feedback
	if err := c.do(ctx, http.MethodGet, "/api/feedback", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) UpdateByEmail(ctx context.Context, email, userName, rating string) (*models.Feedback, error) {
	body := map[string]string{"userName": userName, "rating": rating}
	var resp mutationResponse
	if err := c.do(ctx, http.MethodPut, "/api/feedback/email/"+url.PathEscape(email), body, &resp); err != nil {
		return nil, err
	}
	return &resp.Feedback, nil
}

func (c *Client) DeleteByEmail(ctx context.Context, email string) (*models.Feedback, error) {
	var resp mutationResponse
	if err := c.do(ctx, http.MethodDelete, "/api/feedback/email/"+url.PathEscape(email), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Feedback, nil
}

func (c *Client) Search(ctx context.Context, query string) ([]models.Feedback, error) {
	var resp searchResponse
	if err := c.do(ctx, http.MethodGet, "/api/search?query="+url.QueryEscape(query), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []models.Feedback{}
	}
	return resp.Results, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &msg) == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
