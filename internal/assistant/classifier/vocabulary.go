package classifier

// Trigger vocabularies for category detection. Containment is tested against
// the whole lowercased question, so multi-word phrases like "where is" match
// as phrases.
var (
	classVocabulary = []string{
		"class", "classes", "schedule", "timetable", "course", "courses",
		"lecture", "lectures", "subject", "subjects", "today", "tomorrow",
	}

	eventVocabulary = []string{
		"event", "events", "happening", "activity", "activities",
		"festival", "competition", "seminar", "workshop", "meeting",
	}

	departmentVocabulary = []string{
		"department", "dept", "office", "faculty", "contact",
		"location", "where is", "head of",
	}

	weekdays = []string{
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	}
)
