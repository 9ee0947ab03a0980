package services

import (
	"testing"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

func entriesFromQuestions(questions ...string) []*domain.KnowledgeEntry {
	entries := make([]*domain.KnowledgeEntry, len(questions))
	for i, q := range questions {
		entries[i] = &domain.KnowledgeEntry{ID: q, Question: q, Answer: "jawaban"}
	}
	return entries
}

func TestMatchKnowledge_EmptyCandidates(t *testing.T) {
	matched := MatchKnowledge("bagaimana cara mengajukan cuti", nil)
	if len(matched) != 0 {
		t.Errorf("expected empty result for empty candidates, got %d", len(matched))
	}
}

func TestMatchKnowledge_SharedTokens(t *testing.T) {
	candidates := entriesFromQuestions(
		"Bagaimana cara mengajukan cuti?",
		"Apa itu SOP absensi?",
	)

	matched := MatchKnowledge("bagaimana saya mengajukan cuti tahunan", candidates)

	if len(matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matched))
	}
	if matched[0].Question != "Bagaimana cara mengajukan cuti?" {
		t.Errorf("expected first candidate to match, got %q", matched[0].Question)
	}
}

func TestMatchKnowledge_ZeroScoreExcluded(t *testing.T) {
	candidates := entriesFromQuestions("Apa itu SOP absensi?")

	matched := MatchKnowledge("bagaimana saya mengajukan cuti tahunan", candidates)
	if len(matched) != 0 {
		t.Errorf("expected no match for unrelated question, got %d", len(matched))
	}
}

func TestMatchKnowledge_WholeQuestionBonusRanksFirst(t *testing.T) {
	exact := &domain.KnowledgeEntry{ID: "exact", Question: "Bagaimana cara mengajukan cuti tahunan?"}
	partial := &domain.KnowledgeEntry{ID: "partial", Question: "Kapan cuti tahunan bisa mengajukan perpanjangan jadwal?"}

	// Partial entry first so ranking, not input order, must decide
	matched := MatchKnowledge("bagaimana cara mengajukan cuti tahunan", []*domain.KnowledgeEntry{partial, exact})

	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	if matched[0].ID != "exact" {
		t.Errorf("expected entry containing the whole question to rank first, got %q", matched[0].ID)
	}
}

func TestMatchKnowledge_TopThree(t *testing.T) {
	candidates := entriesFromQuestions(
		"Prosedur cuti tahunan",
		"Prosedur cuti sakit",
		"Prosedur cuti melahirkan",
		"Prosedur cuti menikah",
	)

	matched := MatchKnowledge("prosedur cuti", candidates)
	if len(matched) != 3 {
		t.Errorf("expected result capped at 3, got %d", len(matched))
	}
}

func TestMatchKnowledge_StableOnTies(t *testing.T) {
	candidates := entriesFromQuestions(
		"Prosedur cuti A",
		"Prosedur cuti B",
		"Prosedur cuti C",
	)

	first := MatchKnowledge("prosedur cuti", candidates)
	second := MatchKnowledge("prosedur cuti", candidates)

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 matches in both runs, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("ranking not deterministic at position %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
		if first[i].ID != candidates[i].ID {
			t.Errorf("tied scores must preserve candidate order at position %d, got %q", i, first[i].ID)
		}
	}
}

func TestMatchKnowledge_ShortTokensDiscarded(t *testing.T) {
	// Every input token has length <= 3, so nothing can score from tokens
	candidates := entriesFromQuestions("apa itu gaji pokok dan cara hitungnya?")

	matched := MatchKnowledge("apa itu", candidates)
	// The whole-question bonus still applies: "apa itu" occurs verbatim
	if len(matched) != 1 {
		t.Fatalf("expected whole-question containment to match, got %d", len(matched))
	}

	matched = MatchKnowledge("itu apa", candidates)
	if len(matched) != 0 {
		t.Errorf("expected no match when only short tokens exist and no containment, got %d", len(matched))
	}
}

func TestMatchKnowledge_EmptyCandidateQuestion(t *testing.T) {
	candidates := []*domain.KnowledgeEntry{
		{ID: "empty", Question: ""},
		{ID: "ok", Question: "Bagaimana cara mengajukan cuti?"},
	}

	matched := MatchKnowledge("bagaimana mengajukan cuti", candidates)
	if len(matched) != 1 || matched[0].ID != "ok" {
		t.Errorf("expected empty-question candidate to score 0 without error, got %d matches", len(matched))
	}
}

func TestMatchKnowledge_ExactQuestionBeatsPartialOverlap(t *testing.T) {
	exact := &domain.KnowledgeEntry{ID: "exact", Question: "Bagaimana cara klaim asuransi kesehatan?"}
	partial := &domain.KnowledgeEntry{ID: "partial", Question: "Apakah asuransi kesehatan menanggung rawat inap?"}

	matched := MatchKnowledge("Bagaimana cara klaim asuransi kesehatan?", []*domain.KnowledgeEntry{partial, exact})

	if len(matched) == 0 {
		t.Fatal("expected matches")
	}
	if matched[0].ID != "exact" {
		t.Errorf("case-insensitive exact question must rank first, got %q", matched[0].ID)
	}
}
