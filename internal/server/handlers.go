// Package server implements the stub backend used for local
// development: the same three endpoints the real service exposes,
// served from the deterministic sample data.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/star88etti/health-buddie-log/internal/mockdata"
	"github.com/star88etti/health-buddie-log/internal/models"
)

// Handler serves health-data and message requests from an in-memory
// message list seeded with the sample fixtures.
type Handler struct {
	now func() time.Time

	mu       sync.Mutex
	messages []models.Message
}

// NewHandler seeds a Handler from the sample data at the given clock.
func NewHandler(now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{now: now, messages: mockdata.Messages(now())}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// HealthData handles GET /health-data. It requires a phoneNumber query
// parameter and returns the sample exercise and food logs.
func (h *Handler) HealthData(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("phoneNumber") == "" {
		writeError(w, http.StatusBadRequest, "phoneNumber is required")
		return
	}
	writeJSON(w, http.StatusOK, mockdata.HealthData(h.now()))
}

// Messages handles GET /api/messages and GET /messages, returning the
// stored message list wrapped in a messages field.
func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("phoneNumber") == "" {
		writeError(w, http.StatusBadRequest, "phoneNumber is required")
		return
	}
	h.mu.Lock()
	msgs := make([]models.Message, len(h.messages))
	copy(msgs, h.messages)
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string][]models.Message{"messages": msgs})
}

// PostMessageRequest is the JSON payload for submitting a message.
type PostMessageRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Content     string `json:"content"`
	Channel     string `json:"channel"`
}

// PostMessage handles POST /api/messages, storing a new incoming
// message as the real ingestion endpoint would. Classification is left
// to the (absent) backend processor, so the message stays unprocessed.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}
	if req.Channel == "" {
		req.Channel = "sms"
	}

	msg := models.Message{
		ID:        uuid.NewString(),
		Content:   req.Content,
		Timestamp: h.now(),
		Direction: models.DirectionIncoming,
		Channel:   req.Channel,
	}
	h.mu.Lock()
	h.messages = append([]models.Message{msg}, h.messages...)
	h.mu.Unlock()

	writeJSON(w, http.StatusCreated, msg)
}
