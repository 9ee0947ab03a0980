package services

import (
	"sort"
	"strings"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

const (
	// matchTopK bounds how many entries the prompt may rely on
	matchTopK = 3

	// wholeQuestionBonus rewards a candidate whose question contains the
	// entire input question
	wholeQuestionBonus = 5
)

// MatchKnowledge scores curated entries against a question using lexical
// overlap and returns the top candidates, best first. This is a crude
// substring heuristic, not semantic similarity: input tokens of length <= 3
// are discarded as stop words, each remaining token occurring in a
// candidate's lower-cased question counts one point, and containing the
// whole input question adds wholeQuestionBonus. Zero-score candidates are
// excluded. Ties keep the original candidate order.
func MatchKnowledge(question string, candidates []*domain.KnowledgeEntry) []*domain.KnowledgeEntry {
	lowerQuestion := strings.ToLower(question)

	var tokens []string
	for _, tok := range strings.Fields(lowerQuestion) {
		if len(tok) <= 3 {
			continue
		}
		tokens = append(tokens, tok)
	}

	type scoredEntry struct {
		entry *domain.KnowledgeEntry
		score int
	}

	var ranked []scoredEntry
	for _, candidate := range candidates {
		if candidate == nil || candidate.Question == "" {
			continue
		}

		candidateQuestion := strings.ToLower(candidate.Question)

		score := 0
		for _, tok := range tokens {
			if strings.Contains(candidateQuestion, tok) {
				score++
			}
		}
		if strings.TrimSpace(lowerQuestion) != "" && strings.Contains(candidateQuestion, lowerQuestion) {
			score += wholeQuestionBonus
		}

		if score > 0 {
			ranked = append(ranked, scoredEntry{entry: candidate, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > matchTopK {
		ranked = ranked[:matchTopK]
	}

	matched := make([]*domain.KnowledgeEntry, len(ranked))
	for i, r := range ranked {
		matched[i] = r.entry
	}
	return matched
}
