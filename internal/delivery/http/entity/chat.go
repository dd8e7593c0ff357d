package entity

import "time"

type ChatRequest struct {
	Message string `json:"message" validate:"required,notblank,max=2000"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Fallback  bool   `json:"fallback"`
}

type ChatHistoryItem struct {
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ClearHistoryResponse struct {
	Deleted int64 `json:"deleted"`
}

type ImportChatResponse struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}
