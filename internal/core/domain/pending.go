package domain

import "time"

// PendingStatus is the lifecycle state of an escalated question
type PendingStatus string

// PendingOpen is the only persisted status: a pending question is either
// waiting for HR or it has been removed (approved into the knowledge base or
// rejected). There is no "answered but kept pending" state.
const PendingOpen PendingStatus = "pending"

// PendingQuestion is a question the chatbot could not answer, queued for HR
// review. Approval converts it into a KnowledgeEntry and removes it;
// rejection removes it without conversion.
type PendingQuestion struct {
	ID        string        `json:"id"`
	Question  string        `json:"question"`
	AskerID   string        `json:"asker_id"`
	AskerName string        `json:"asker_name"`
	AskedAt   time.Time     `json:"asked_at"`
	Status    PendingStatus `json:"status"`
}
