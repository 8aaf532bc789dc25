package executor

import (
	"strings"

	"campus-assistant/internal/models"
)

// minKeywordLength filters out short filler tokens ("a", "is", "on") before
// they can inflate relevance scores.
const minKeywordLength = 3

// bestMatch scores every FAQ candidate against the query keywords and
// returns the best one with its score. The comparison is strictly greater
// than, so the first record attaining the maximum score wins — later
// equal-scoring records never displace it. A zero score means no match.
func bestMatch(keywords []string, faqs []models.FAQRecord) (models.FAQRecord, int) {
	var best models.FAQRecord
	highest := 0
	for _, faq := range faqs {
		if score := scoreCandidate(keywords, faq); score > highest {
			highest = score
			best = faq
		}
	}
	return best, highest
}

// scoreCandidate computes the integer relevance of one FAQ record:
// +1 per qualifying keyword found in the question/answer text, +2 per
// (tag, keyword) pair where the record's tag contains the keyword. The
// containment direction is tag-contains-keyword.
func scoreCandidate(keywords []string, faq models.FAQRecord) int {
	score := 0
	text := strings.ToLower(faq.Question + " " + faq.Answer)

	for _, kw := range keywords {
		if len(kw) >= minKeywordLength && strings.Contains(text, strings.ToLower(kw)) {
			score++
		}
	}

	for _, tag := range faq.Keywords {
		lowerTag := strings.ToLower(tag)
		for _, kw := range keywords {
			if len(kw) >= minKeywordLength && strings.Contains(lowerTag, strings.ToLower(kw)) {
				score += 2
			}
		}
	}

	return score
}
