package models

// Category identifies which record set a query resolves to.
type Category string

const (
	CategoryClass      Category = "class"
	CategoryEvent      Category = "event"
	CategoryDepartment Category = "department"
	CategoryFAQ        Category = "faq"
	CategoryUnknown    Category = "unknown"
)

// Intent is the structured form of a user question after classification.
// Keywords are lowercase tokens with the matched category's trigger words
// removed. Day is a lowercase weekday name when one appeared in the question.
// Department and CategoryFilter are reserved filter slots the classifier
// does not populate yet; the executor ignores them.
type Intent struct {
	Category       Category `json:"category"`
	Keywords       []string `json:"keywords"`
	Day            string   `json:"day,omitempty"`
	Department     string   `json:"department,omitempty"`
	CategoryFilter string   `json:"categoryFilter,omitempty"`
}
