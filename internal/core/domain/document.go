package domain

import "time"

// Document is an opaque text blob supplied by HR. The engine never retrieves
// a subset of a document; if content is present it is injected whole into the
// prompt. Documents are immutable after creation and deleted wholesale.
// Text extraction from PDFs etc. happens outside the core; only {name,
// content} pairs arrive here.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Content    string    `json:"content,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
	UploadedBy string    `json:"uploaded_by"`
}

// HasContent reports whether the document carries any text to inject
func (d *Document) HasContent() bool {
	return d.Content != ""
}
