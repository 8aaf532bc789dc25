package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), mock
}

func classColumns() []string {
	return []string{"subject_name", "subject_code", "instructor", "day_of_week",
		"start_time", "end_time", "room_number", "department"}
}

func TestSearchClasses_NoFilters(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows(classColumns()).
		AddRow("Algorithms", "CS301", "Dr. Rao", "Monday", "09:00", "10:30", "A101", "Computer Science").
		AddRow("Calculus", "MA101", "Dr. Iyer", "Tuesday", "11:00", "12:00", "B204", "Mathematics")

	mock.ExpectQuery(`SELECT subject_name, subject_code, instructor, day_of_week, start_time, end_time, room_number, department FROM classes ORDER BY start_time`).
		WillReturnRows(rows)

	records, err := s.SearchClasses(context.Background(), ClassFilter{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Algorithms", records[0].SubjectName)
	assert.Equal(t, "CS301", records[0].SubjectCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchClasses_DayAndKeyword(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows(classColumns()).
		AddRow("Algorithms", "CS301", "Dr. Rao", "Monday", "09:00", "10:30", "A101", "Computer Science")

	mock.ExpectQuery(`SELECT .+ FROM classes WHERE day_of_week ILIKE \$1 AND \(subject_name ILIKE \$2 OR subject_code ILIKE \$2 OR instructor ILIKE \$2 OR department ILIKE \$2\) ORDER BY start_time`).
		WithArgs("Monday", "%algorithms%").
		WillReturnRows(rows)

	records, err := s.SearchClasses(context.Background(), ClassFilter{Day: "Monday", Keyword: "algorithms"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Monday", records[0].DayOfWeek)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchClasses_EscapesLikeMetacharacters(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM classes WHERE \(subject_name ILIKE \$1 .+\) ORDER BY start_time`).
		WithArgs(`%100\%%`).
		WillReturnRows(sqlmock.NewRows(classColumns()))

	_, err := s.SearchClasses(context.Background(), ClassFilter{Keyword: "100%"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchClasses_QueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM classes`).
		WillReturnError(errors.New("connection refused"))

	_, err := s.SearchClasses(context.Background(), ClassFilter{})
	assert.Error(t, err)
}

func TestSearchUpcomingEvents(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"title", "description", "event_date", "start_time",
		"end_time", "location", "category", "organizer"}).
		AddRow("Tech Fest", "Annual tech festival", "2026-09-12", "10:00", "18:00",
			"Main Auditorium", "technology", "CS Society")

	mock.ExpectQuery(`SELECT title, description, event_date::text, start_time, end_time, location, category, organizer FROM events WHERE event_date >= \$1 AND \(title ILIKE \$2 OR description ILIKE \$2 OR category ILIKE \$2\) ORDER BY event_date LIMIT 5`).
		WithArgs("2026-08-31", "%tech%").
		WillReturnRows(rows)

	records, err := s.SearchUpcomingEvents(context.Background(), EventFilter{
		Keyword: "tech", From: "2026-08-31", Limit: 5,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Tech Fest", records[0].Title)
	assert.Equal(t, "2026-09-12", records[0].EventDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchUpcomingEvents_NoKeyword(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM events WHERE event_date >= \$1 ORDER BY event_date LIMIT 5`).
		WithArgs("2026-08-31").
		WillReturnRows(sqlmock.NewRows([]string{"title", "description", "event_date",
			"start_time", "end_time", "location", "category", "organizer"}))

	records, err := s.SearchUpcomingEvents(context.Background(), EventFilter{From: "2026-08-31", Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchDepartments(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"name", "head", "location", "contact_email",
		"contact_phone", "description"}).
		AddRow("Physics", "Dr. Bose", "Science Block", "physics@campus.edu", nil, "Physics department").
		AddRow("Chemistry", "Dr. Menon", "Science Block", nil, nil, nil)

	mock.ExpectQuery(`SELECT name, head, location, contact_email, contact_phone, description FROM departments WHERE name ILIKE \$1 OR description ILIKE \$1 ORDER BY name`).
		WithArgs("%science%").
		WillReturnRows(rows)

	records, err := s.SearchDepartments(context.Background(), "science")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "physics@campus.edu", records[0].ContactEmail)
	assert.Empty(t, records[1].ContactEmail, "null contact_email scans to empty string")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFAQs(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"question", "answer", "category", "keywords"}).
		AddRow("What are the library hours?", "The library is open 8 AM to 10 PM.",
			"facilities", `{library,hours,timings}`).
		AddRow("How do I get a parking permit?", "Apply at the admin office.",
			"facilities", `{parking,permit}`)

	mock.ExpectQuery(`SELECT question, answer, category, keywords FROM faqs ORDER BY id`).
		WillReturnRows(rows)

	records, err := s.ListFAQs(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"library", "hours", "timings"}, records[0].Keywords)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFAQs_QueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM faqs`).
		WillReturnError(errors.New("relation does not exist"))

	_, err := s.ListFAQs(context.Background())
	assert.Error(t, err)
}
