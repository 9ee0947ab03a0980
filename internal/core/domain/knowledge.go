package domain

import "time"

// KnowledgeOrigin records how a knowledge entry entered the curated set
type KnowledgeOrigin string

const (
	OriginManual         KnowledgeOrigin = "manual"          // Created directly by HR
	OriginFromEscalation KnowledgeOrigin = "from_escalation" // Converted from an approved pending question
)

// KnowledgeEntry is a curated question/answer pair used to ground the chatbot.
// Entries are immutable once created except for deletion. Uniqueness is not
// enforced; near-duplicate questions may coexist and ranking resolves
// conflicts at query time.
type KnowledgeEntry struct {
	ID            string          `json:"id"`
	Question      string          `json:"question"`
	Answer        string          `json:"answer"`
	CreatedAt     time.Time       `json:"created_at"`
	Origin        KnowledgeOrigin `json:"origin"`
	OriginalAsker string          `json:"original_asker,omitempty"`
}
