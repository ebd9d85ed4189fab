package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"feedback-system/internal/models"
	"feedback-system/internal/notify"
	"feedback-system/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	msgInvalidBody      = "Invalid request body"
	msgAllFields        = "All fields are required"
	msgAllFieldsUpdate  = "All fields are required for update"
	msgEmailFields      = "Username and rating are required for update"
	msgInvalidRating    = "Rating must be a number between 1 and 5"
	msgInvalidID        = "Invalid feedback ID format"
	msgEmailRequired    = "Email is required"
	msgQueryRequired    = "Search query is required"
	msgNotFound         = "Feedback not found"
	msgNotFoundForEmail = "Feedback not found with this email"
)

type FeedbackHandler struct {
	store    repository.FeedbackStore
	notifier notify.Notifier
}

func NewFeedbackHandler(store repository.FeedbackStore, notifier notify.Notifier) *FeedbackHandler {
	return &FeedbackHandler{
		store:    store,
		notifier: notifier,
	}
}

type mutationResponse struct {
	Message  string           `json:"message"`
	Feedback *models.Feedback `json:"feedback"`
}

type searchResponse struct {
	Results []models.Feedback `json:"results"`
}

// --- POST /api/feedback ---

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.FeedbackInput
	if err := decodeBody(r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := in.Validate(); err != nil {
		writeValidationError(w, err, msgAllFields)
		return
	}

	feedback := &models.Feedback{
		UserName: in.UserName,
		Email:    in.Email,
		Rating:   in.Rating.Normalize(),
	}
	if err := h.store.Create(r.Context(), feedback); err != nil {
		log.Error().Err(err).Msg("error saving feedback")
		writeStoreError(w, "Error saving feedback", err)
		return
	}

	h.publish(notify.ActionCreated, feedback)
	writeJSON(w, http.StatusCreated, mutationResponse{Message: "Feedback saved successfully", Feedback: feedback})
}

// --- GET /api/feedback ---

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.store.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("error fetching feedback")
		writeStoreError(w, "Error fetching feedback", err)
		return
	}
	if feedback == nil {
		feedback = []models.Feedback{}
	}
	writeJSON(w, http.StatusOK, feedback)
}

// --- GET /api/search?query= ---

func (h *FeedbackHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeMessage(w, http.StatusBadRequest, msgQueryRequired)
		return
	}

	results, err := h.store.Search(r.Context(), query)
	if err != nil {
		log.Error().Err(err).Msg("error during search")
		writeStoreError(w, "Server error during search", err)
		return
	}
	if results == nil {
		results = []models.Feedback{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

// --- PUT /api/feedback/{id} ---

func (h *FeedbackHandler) UpdateByID(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var in models.FeedbackInput
	if err := decodeBody(r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := in.Validate(); err != nil {
		writeValidationError(w, err, msgAllFieldsUpdate)
		return
	}

	updated, err := h.store.UpdateByID(r.Context(), id, models.Changes{
		UserName: in.UserName,
		Email:    in.Email,
		Rating:   in.Rating.Normalize(),
	})
	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", id.Hex()).Msg("error updating feedback")
		writeStoreError(w, "Error updating feedback", err)
		return
	}

	h.publish(notify.ActionUpdated, updated)
	writeJSON(w, http.StatusOK, mutationResponse{Message: "Feedback updated successfully", Feedback: updated})
}

// --- DELETE /api/feedback/{id} ---

func (h *FeedbackHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	deleted, err := h.store.DeleteByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", id.Hex()).Msg("error deleting feedback")
		writeStoreError(w, "Error deleting feedback", err)
		return
	}

	h.publish(notify.ActionDeleted, deleted)
	writeJSON(w, http.StatusOK, mutationResponse{Message: "Feedback deleted successfully", Feedback: deleted})
}

// --- PUT /api/feedback/email/{email} ---

func (h *FeedbackHandler) UpdateByEmail(w http.ResponseWriter, r *http.Request) {
	email := emailParam(r)
	if email == "" {
		writeMessage(w, http.StatusBadRequest, msgEmailRequired)
		return
	}

	var in models.EmailUpdateInput
	if err := decodeBody(r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := in.Validate(); err != nil {
		writeValidationError(w, err, msgEmailFields)
		return
	}

	updated, err := h.store.UpdateByEmail(r.Context(), email, in.UserName, in.Rating.Normalize())
	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, msgNotFoundForEmail)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("error updating feedback by email")
		writeStoreError(w, "Error updating feedback", err)
		return
	}

	h.publish(notify.ActionUpdated, updated)
	writeJSON(w, http.StatusOK, mutationResponse{Message: "Feedback updated successfully", Feedback: updated})
}

// --- DELETE /api/feedback/email/{email} ---

func (h *FeedbackHandler) DeleteByEmail(w http.ResponseWriter, r *http.Request) {
	email := emailParam(r)
	if email == "" {
		writeMessage(w, http.StatusBadRequest, msgEmailRequired)
		return
	}

	deleted, err := h.store.DeleteByEmail(r.Context(), email)
	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, msgNotFoundForEmail)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("error deleting feedback by email")
		writeStoreError(w, "Error deleting feedback", err)
		return
	}

	h.publish(notify.ActionDeleted, deleted)
	writeJSON(w, http.StatusOK, mutationResponse{Message: "Feedback deleted successfully", Feedback: deleted})
}

// --- Helpers ---

// emailParam returns the email exactly as sent. chi routes on RawPath when it
// is set, and the param is still escaped only in that case.
func emailParam(r *http.Request) string {
	email := chi.URLParam(r, "email")
	if r.URL.RawPath == "" {
		return email
	}
	if unescaped, err := url.PathUnescape(email); err == nil {
		return unescaped
	}
	return email
}

func writeValidationError(w http.ResponseWriter, err error, missingMessage string) {
	if errors.Is(err, models.ErrInvalidRating) {
		writeMessage(w, http.StatusBadRequest, msgInvalidRating)
		return
	}
	writeMessage(w, http.StatusBadRequest, missingMessage)
}

// publish runs in the background; notification failures never reach the caller.
func (h *FeedbackHandler) publish(action notify.Action, feedback *models.Feedback) {
	if h.notifier == nil {
		return
	}
	event := notify.Event{Action: action, Feedback: *feedback}
	go func() {
		if err := h.notifier.Publish(context.Background(), event); err != nil {
			log.Warn().Err(err).Str("action", string(action)).Msg("error publishing feedback event")
		}
	}()
}
