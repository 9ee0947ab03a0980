package domain

import "time"

// ChatRole identifies the author of a chat turn
type ChatRole string

const (
	ChatRoleUser ChatRole = "user"
	ChatRoleBot  ChatRole = "bot"
)

// ChatTurn is one message in a user's transcript. Append-only; never mutated
// or deleted by the core. Ordering is by timestamp, ties broken by insertion
// order.
type ChatTurn struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Sources   string    `json:"sources,omitempty"`
}

// ChatLogEntry is the denormalized per-interaction record used for HR
// reporting. It is derived from the same interaction that produces two
// ChatTurn records and must never diverge from them.
type ChatLogEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatAnswer is the outcome of one question/answer interaction
type ChatAnswer struct {
	Response  string `json:"response"`
	Sources   string `json:"sources,omitempty"`
	Escalated bool   `json:"escalated"`
}

// GenerationFailureMessage is shown to the user when the generation backend
// fails. It is distinct from the in-context refusal answer: a failed
// generation persists nothing and triggers no escalation.
const GenerationFailureMessage = "Maaf, terjadi kesalahan saat memproses pertanyaan Anda. Silakan coba lagi atau hubungi HR."
