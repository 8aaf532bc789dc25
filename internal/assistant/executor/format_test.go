package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campus-assistant/internal/models"
)

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"09:00", "9:00 AM"},
		{"00:15", "12:15 AM"},
		{"12:00", "12:00 PM"},
		{"13:45", "1:45 PM"},
		{"23:59", "11:59 PM"},
		{"10:30:00", "10:30 AM"},
		{"noon", "noon"},
		{"ab:cd", "ab:cd"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatClockTime(tt.input))
		})
	}
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "September 12, 2026", formatLongDate("2026-09-12"))
	assert.Equal(t, "January 2, 2026", formatLongDate("2026-01-02"))
	assert.Equal(t, "not-a-date", formatLongDate("not-a-date"))
}

func TestFormatClassAnswer_ListingCap(t *testing.T) {
	classes := []models.ClassRecord{
		{SubjectName: "Algorithms", StartTime: "09:00", RoomNumber: "A101"},
		{SubjectName: "Databases", StartTime: "11:00", RoomNumber: "B202"},
		{SubjectName: "Networks", StartTime: "14:00", RoomNumber: "C303"},
	}

	answer := formatClassAnswer(classes, 2)
	assert.Equal(t,
		"I found 3 classes. Here are the details: Algorithms at 9:00 AM in room A101, Databases at 11:00 AM in room B202.",
		answer)
}

func TestFormatEventAnswer_SingleIncludesDescription(t *testing.T) {
	answer := formatEventAnswer([]models.EventRecord{{
		Title:       "Open Day",
		Description: "Campus tours for prospective students.",
		EventDate:   "2026-10-05",
		Location:    "Admin Block",
	}})
	assert.Equal(t,
		"Open Day is scheduled on October 5, 2026 at Admin Block. Campus tours for prospective students.",
		answer)
}

func TestFormatDepartmentAnswer_EmailClauseOptional(t *testing.T) {
	dept := models.DepartmentRecord{Name: "Mathematics", Head: "Dr. Iyer", Location: "Block D"}

	withEmail := dept
	withEmail.ContactEmail = "math@campus.edu"
	assert.Equal(t,
		"The Mathematics department is located at Block D. The department head is Dr. Iyer. You can reach them at math@campus.edu.",
		formatDepartmentAnswer([]models.DepartmentRecord{withEmail}))

	assert.Equal(t,
		"The Mathematics department is located at Block D. The department head is Dr. Iyer.",
		formatDepartmentAnswer([]models.DepartmentRecord{dept}))
}
