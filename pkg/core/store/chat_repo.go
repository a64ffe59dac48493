package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatRepo appends pipeline responses to a session transcript. The core does
// not manage session lifecycle; the session id comes from the caller.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS chat_messages (
//	  id         UUID PRIMARY KEY,
//	  session_id UUID NOT NULL,
//	  role       TEXT NOT NULL,
//	  payload    JSONB NOT NULL,
//	  created_at TIMESTAMPTZ NOT NULL
//	);
type ChatRepo struct{}

func NewChatRepo() *ChatRepo {
	return &ChatRepo{}
}

// Message is one transcript entry.
type Message struct {
	ID        uuid.UUID       `json:"id"`
	SessionID uuid.UUID       `json:"session_id"`
	Role      string          `json:"role"` // "user" or "assistant"
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Append stores one message. The payload is any JSON-serializable value;
// for assistant turns it is the full pipeline response.
func (r *ChatRepo) Append(ctx context.Context, sessionID uuid.UUID, role string, payload interface{}) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO chat_messages (id, session_id, role, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), sessionID, role, data, time.Now())
	if err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

// History returns the most recent messages of a session, oldest first.
func (r *ChatRepo) History(ctx context.Context, sessionID uuid.UUID, limit int) ([]Message, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := pool.Query(ctx,
		`SELECT id, session_id, role, payload, created_at
		   FROM chat_messages
		  WHERE session_id = $1
		  ORDER BY created_at DESC
		  LIMIT $2`,
		sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Payload, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse to chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
