package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campus-assistant/internal/models"
)

func TestClassify_CategoryDetection(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected models.Category
	}{
		{"class keyword", "show me my class schedule", models.CategoryClass},
		{"course keyword", "which courses run this semester", models.CategoryClass},
		{"event keyword", "any events this week", models.CategoryEvent},
		{"workshop keyword", "is there a workshop on robotics", models.CategoryEvent},
		{"department keyword", "computer science department info", models.CategoryDepartment},
		{"where is phrase", "where is the library", models.CategoryDepartment},
		{"head of phrase", "who is the head of physics", models.CategoryDepartment},
		{"no trigger words", "library opening hours", models.CategoryFAQ},
		{"empty input", "", models.CategoryFAQ},
		{"whitespace only", "   ", models.CategoryFAQ},
		{"uppercase input", "SHOW ME MY CLASSES", models.CategoryClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := Classify(tt.query)
			assert.Equal(t, tt.expected, intent.Category)
		})
	}
}

func TestClassify_PrecedenceOrder(t *testing.T) {
	// A query matching multiple vocabularies resolves by fixed priority:
	// class > event > department > faq.
	tests := []struct {
		name     string
		query    string
		expected models.Category
	}{
		{"class beats event", "classes during the festival", models.CategoryClass},
		{"class beats department", "which classes does the physics department offer", models.CategoryClass},
		{"event beats department", "events at the engineering faculty", models.CategoryEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.query).Category)
		})
	}
}

func TestClassify_WeekdayExtraction(t *testing.T) {
	intent := Classify("what classes do I have on Monday")
	assert.Equal(t, models.CategoryClass, intent.Category)
	assert.Equal(t, "monday", intent.Day)

	// Day is recorded even when the category is not class.
	intent = Classify("any seminar on friday")
	assert.Equal(t, models.CategoryEvent, intent.Category)
	assert.Equal(t, "friday", intent.Day)

	// Multiple weekday mentions: the last one in scan order wins.
	intent = Classify("classes on monday or wednesday")
	assert.Equal(t, "wednesday", intent.Day)

	intent = Classify("classes on wednesday or monday")
	assert.Equal(t, "wednesday", intent.Day, "scan order is monday..sunday, later matches overwrite")
}

func TestClassify_KeywordFiltering(t *testing.T) {
	// Trigger words of the selected category and weekday tokens are stripped
	// for class queries.
	intent := Classify("what classes do I have on monday")
	assert.Equal(t, []string{"what", "do", "i", "have", "on"}, intent.Keywords)

	// Filtering is exact-token: "classroom" contains "class" but survives.
	intent = Classify("which classroom hosts the morning lecture")
	assert.Equal(t, models.CategoryClass, intent.Category)
	assert.Contains(t, intent.Keywords, "classroom")
	assert.NotContains(t, intent.Keywords, "lecture")

	// Event queries keep weekday tokens; only event trigger words go.
	intent = Classify("events on saturday")
	assert.Equal(t, models.CategoryEvent, intent.Category)
	assert.Equal(t, []string{"on", "saturday"}, intent.Keywords)

	// Department queries strip only department trigger words.
	intent = Classify("contact for the science dept")
	assert.Equal(t, models.CategoryDepartment, intent.Category)
	assert.Equal(t, []string{"for", "the", "science"}, intent.Keywords)

	// FAQ queries keep every token.
	intent = Classify("library hours")
	assert.Equal(t, models.CategoryFAQ, intent.Category)
	assert.Equal(t, []string{"library", "hours"}, intent.Keywords)
}

func TestClassify_TodayIsATriggerWord(t *testing.T) {
	// "today" both triggers the class category and is stripped from keywords.
	intent := Classify("What classes do I have today?")
	assert.Equal(t, models.CategoryClass, intent.Category)
	assert.NotContains(t, intent.Keywords, "today")
	// "today?" keeps its punctuation and therefore survives exact matching.
	assert.Contains(t, intent.Keywords, "today?")
}

func TestClassify_EmptyInput(t *testing.T) {
	intent := Classify("")
	assert.Equal(t, models.CategoryFAQ, intent.Category)
	assert.Empty(t, intent.Keywords)
	assert.Empty(t, intent.Day)
}

func TestClassify_Deterministic(t *testing.T) {
	queries := []string{
		"what classes do I have on Monday",
		"show me upcoming events",
		"where is the physics department",
		"library hours",
		"",
	}
	for _, q := range queries {
		first := Classify(q)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Classify(q))
		}
	}
}
