package models

// ClassRecord is a scheduled class as stored in the classes table.
// StartTime and EndTime are 24-hour "HH:MM" strings.
type ClassRecord struct {
	SubjectName string `json:"subject_name"`
	SubjectCode string `json:"subject_code"`
	Instructor  string `json:"instructor"`
	DayOfWeek   string `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	RoomNumber  string `json:"room_number"`
	Department  string `json:"department"`
}

// EventRecord is a campus event. EventDate is an ISO "YYYY-MM-DD" date.
type EventRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Organizer   string `json:"organizer"`
}

// DepartmentRecord is a department directory entry. ContactEmail,
// ContactPhone and Description may be empty.
type DepartmentRecord struct {
	Name         string `json:"name"`
	Head         string `json:"head"`
	Location     string `json:"location"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Description  string `json:"description,omitempty"`
}

// FAQRecord is a frequently-asked-question entry. Keywords are the
// curator-assigned tags used by relevance ranking.
type FAQRecord struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}
