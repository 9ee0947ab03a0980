package services

import (
	"fmt"
	"strings"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// Sentinel lines emitted when a prompt section is empty. The downstream
// generator and the refusal classifier depend on the section structure, so
// these are part of the prompt contract, not cosmetics.
const (
	NoMatchedEntriesSentinel = "Tidak ada data training yang relevan ditemukan."
	NoDocumentsSentinel      = "Belum ada dokumen yang diupload."
)

// BuildSystemPrompt assembles the bounded instruction block the generator is
// allowed to rely on: policy preamble, matched Q&A entries, full document
// contents, closing instruction. Matching and assembly never fail; missing
// material degrades to the sentinel lines.
func BuildSystemPrompt(language string, matched []*domain.KnowledgeEntry, documents []*domain.Document) string {
	if language == "" {
		language = domain.DefaultLanguage
	}

	var b strings.Builder

	// (1) Policy preamble. The refusal answer here and domain.IsRefusal are
	// one versioned contract.
	b.WriteString("Anda adalah asisten HR internal untuk pegawai magang.\n")
	b.WriteString("Jawab HANYA berdasarkan materi yang diberikan di bawah ini. ")
	b.WriteString("Jangan gunakan pengetahuan di luar materi tersebut.\n")
	fmt.Fprintf(&b, "Jawab selalu dalam %s.\n", language)
	fmt.Fprintf(&b, "Jika materi tidak cukup untuk menjawab, jawab persis: %q\n", domain.RefusalAnswer)

	// (2) Curated Q&A entries
	b.WriteString("\nDATABASE TRAINING:\n")
	if len(matched) == 0 {
		b.WriteString(NoMatchedEntriesSentinel + "\n")
	} else {
		for i, entry := range matched {
			fmt.Fprintf(&b, "%d. Pertanyaan: %s Jawaban: %s\n", i+1, entry.Question, entry.Answer)
		}
	}

	// (3) Documents, injected whole when they have content
	b.WriteString("\nDOKUMEN:\n")
	if len(documents) == 0 {
		b.WriteString(NoDocumentsSentinel + "\n")
	} else {
		for _, doc := range documents {
			if doc.HasContent() {
				fmt.Fprintf(&b, "- %s:\n%s\n", doc.Name, doc.Content)
			} else {
				fmt.Fprintf(&b, "- %s\n", doc.Name)
			}
		}
	}

	// (4) Closing instruction
	b.WriteString("\nGunakan HANYA informasi di atas untuk menjawab. ")
	b.WriteString("Jika informasi di atas tidak cukup, sampaikan jawaban penolakan di atas agar pegawai menghubungi HR.\n")

	return b.String()
}
