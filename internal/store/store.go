// Package store is the data-access layer for the four record categories.
// The executor consumes the interfaces below; implementations are read-only
// and hold no per-query state.
package store

import (
	"context"

	"campus-assistant/internal/models"
)

// ClassFilter narrows a class lookup. Day is a capitalized weekday name
// compared case-insensitively against the day_of_week column. Keyword is
// matched as a case-insensitive substring across subject name, subject code,
// instructor and department.
type ClassFilter struct {
	Day     string
	Keyword string
}

// EventFilter narrows an event lookup. From is an ISO "YYYY-MM-DD" date;
// only events on or after it are returned. Keyword is matched as a
// case-insensitive substring across title, description and category.
// Limit caps the result set server-side; zero means no cap.
type EventFilter struct {
	Keyword string
	From    string
	Limit   int
}

type ClassStore interface {
	SearchClasses(ctx context.Context, filter ClassFilter) ([]models.ClassRecord, error)
}

type EventStore interface {
	SearchUpcomingEvents(ctx context.Context, filter EventFilter) ([]models.EventRecord, error)
}

type DepartmentStore interface {
	SearchDepartments(ctx context.Context, keyword string) ([]models.DepartmentRecord, error)
}

// FAQStore returns the full FAQ set in stored order. Ranking happens in the
// executor, so implementations must not reorder or filter.
type FAQStore interface {
	ListFAQs(ctx context.Context) ([]models.FAQRecord, error)
}
