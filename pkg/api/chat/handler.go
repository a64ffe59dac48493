// Package chat exposes the query pipeline over HTTP and appends each
// exchange to the session transcript.
package chat

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"census_insight/pkg/core/pipeline"
	"census_insight/pkg/core/store"
)

// Handler provides the chat endpoint.
type Handler struct {
	orchestrator *pipeline.Orchestrator
	transcript   *store.ChatRepo
}

func NewHandler(orchestrator *pipeline.Orchestrator, transcript *store.ChatRepo) *Handler {
	return &Handler{orchestrator: orchestrator, transcript: transcript}
}

// Request is the user's message plus session routing.
type Request struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Language  string `json:"language,omitempty"`
}

// HandleChat runs one query through the pipeline.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		sessionID = uuid.New()
	}

	resp := h.orchestrator.Run(r.Context(), req.Message, req.Language)

	// Transcript persistence is best-effort: the answer still goes out when
	// the store is down.
	if h.transcript != nil {
		if err := h.transcript.Append(r.Context(), sessionID, "user", req); err != nil {
			fmt.Printf("[WARNING] failed to persist user message: %v\n", err)
		}
		if err := h.transcript.Append(r.Context(), sessionID, "assistant", resp); err != nil {
			fmt.Printf("[WARNING] failed to persist assistant message: %v\n", err)
		}
	}

	json.NewEncoder(w).Encode(struct {
		SessionID string `json:"session_id"`
		pipeline.Response
	}{SessionID: sessionID.String(), Response: resp})
}

// HandleHistory returns the transcript of one session.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sessionID, err := uuid.Parse(r.URL.Query().Get("session_id"))
	if err != nil {
		http.Error(w, "valid session_id is required", http.StatusBadRequest)
		return
	}

	messages, err := h.transcript.History(r.Context(), sessionID, 100)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(messages)
}
