// Package classifier maps a raw natural-language question to a structured
// intent. Classification is pure and total: any input, including the empty
// string, resolves to exactly one category.
package classifier

import (
	"strings"

	"campus-assistant/internal/models"
)

// Classify resolves the category of a question and extracts its parameters.
//
// Category detection uses substring containment of the trigger vocabularies
// against the whole lowercased question, resolved in fixed priority order:
// class, then event, then department, else FAQ. A question matching several
// vocabularies always lands in the highest-priority one.
//
// Keyword extraction is a separate, stricter tier: tokens are dropped only on
// exact equality with a trigger word of the selected category (plus weekday
// tokens for the class category), so "classroom" survives even though "class"
// is a trigger word.
func Classify(raw string) models.Intent {
	lower := strings.ToLower(raw)
	words := strings.Fields(lower)

	hasClass := containsAnyPhrase(lower, classVocabulary)
	hasEvent := containsAnyPhrase(lower, eventVocabulary)
	hasDepartment := containsAnyPhrase(lower, departmentVocabulary)

	// Weekday scan is independent of category. When several weekday names
	// appear the last one in scan order wins.
	var day string
	for _, d := range weekdays {
		if strings.Contains(lower, d) {
			day = d
		}
	}

	intent := models.Intent{Day: day}

	switch {
	case hasClass:
		intent.Category = models.CategoryClass
		intent.Keywords = filterTokens(words, classVocabulary, weekdays)
	case hasEvent:
		intent.Category = models.CategoryEvent
		intent.Keywords = filterTokens(words, eventVocabulary, nil)
	case hasDepartment:
		intent.Category = models.CategoryDepartment
		intent.Keywords = filterTokens(words, departmentVocabulary, nil)
	default:
		intent.Category = models.CategoryFAQ
		intent.Keywords = words
	}

	return intent
}

func containsAnyPhrase(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// filterTokens drops tokens that exactly equal a vocabulary word or, when
// excluded is non-nil, a word from the excluded set. Multi-word vocabulary
// phrases never match a single token, matching the containment/equality
// split of the two matching tiers.
func filterTokens(tokens, vocabulary, excluded []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if exactMatch(t, vocabulary) || exactMatch(t, excluded) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

func exactMatch(token string, words []string) bool {
	for _, w := range words {
		if token == w {
			return true
		}
	}
	return false
}
