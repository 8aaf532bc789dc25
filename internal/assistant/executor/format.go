package executor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"campus-assistant/internal/models"
)

// Canned responses. The processing-error message is deliberately distinct
// from every no-match fallback so callers and tests can tell a system
// failure from an empty result.
const (
	MessageProcessingError = "I encountered an error while processing your request. Please try again."
	MessageNoClasses       = "I couldn't find any classes matching your query."
	MessageNoEvents        = "I couldn't find any upcoming events matching your query."
	MessageNoDepartments   = "I couldn't find any departments matching your query."
	MessageFAQGuidance     = "I don't have information about that. Please try asking about classes, events, or departments."
	MessageFAQNoMatch      = "I don't have information about that. You can ask me about class schedules, upcoming events, department information, or general campus questions."
	MessageUnknown         = "I'm not sure what you're asking. You can ask me about class schedules, upcoming events, department information, or general campus questions."
)

func formatClassAnswer(classes []models.ClassRecord, maxListed int) string {
	if len(classes) == 1 {
		c := classes[0]
		return fmt.Sprintf("%s (%s) is scheduled on %s from %s to %s in room %s. The instructor is %s.",
			c.SubjectName, c.SubjectCode, c.DayOfWeek,
			formatClockTime(c.StartTime), formatClockTime(c.EndTime),
			c.RoomNumber, c.Instructor)
	}

	listed := classes
	if len(listed) > maxListed {
		listed = listed[:maxListed]
	}
	parts := make([]string, 0, len(listed))
	for _, c := range listed {
		parts = append(parts, fmt.Sprintf("%s at %s in room %s",
			c.SubjectName, formatClockTime(c.StartTime), c.RoomNumber))
	}
	// The count states the true total even when the listing is capped.
	return fmt.Sprintf("I found %d classes. Here are the details: %s.",
		len(classes), strings.Join(parts, ", "))
}

func formatEventAnswer(events []models.EventRecord) string {
	if len(events) == 1 {
		e := events[0]
		return fmt.Sprintf("%s is scheduled on %s at %s. %s",
			e.Title, formatLongDate(e.EventDate), e.Location, e.Description)
	}

	parts := make([]string, 0, len(events))
	for _, e := range events {
		parts = append(parts, fmt.Sprintf("%s on %s at %s",
			e.Title, formatLongDate(e.EventDate), e.Location))
	}
	return fmt.Sprintf("I found %d upcoming events: %s.", len(events), strings.Join(parts, ", "))
}

func formatDepartmentAnswer(departments []models.DepartmentRecord) string {
	if len(departments) == 1 {
		d := departments[0]
		answer := fmt.Sprintf("The %s department is located at %s. The department head is %s.",
			d.Name, d.Location, d.Head)
		if d.ContactEmail != "" {
			answer += fmt.Sprintf(" You can reach them at %s.", d.ContactEmail)
		}
		return answer
	}

	parts := make([]string, 0, len(departments))
	for _, d := range departments {
		parts = append(parts, fmt.Sprintf("%s located at %s", d.Name, d.Location))
	}
	return fmt.Sprintf("I found %d departments: %s.", len(departments), strings.Join(parts, ", "))
}

// formatClockTime renders a 24-hour "HH:MM" string as a 12-hour clock with
// AM/PM. Inputs it cannot parse pass through unchanged.
func formatClockTime(t string) string {
	parts := strings.SplitN(t, ":", 3)
	if len(parts) < 2 {
		return t
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return t
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	display := hour
	switch {
	case hour > 12:
		display = hour - 12
	case hour == 0:
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, parts[1], ampm)
}

// formatLongDate renders an ISO "YYYY-MM-DD" date as "Month Day, Year".
func formatLongDate(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("January 2, 2006")
}
