package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"campus-assistant/internal/models"
)

// PostgresStore implements all four record stores against PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// likePattern wraps a search term for ILIKE substring matching, escaping
// LIKE metacharacters so user input cannot widen the match.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

func (s *PostgresStore) SearchClasses(ctx context.Context, filter ClassFilter) ([]models.ClassRecord, error) {
	query := `SELECT subject_name, subject_code, instructor, day_of_week, start_time, end_time, room_number, department FROM classes`

	var conds []string
	var args []interface{}

	if filter.Day != "" {
		args = append(args, filter.Day)
		conds = append(conds, fmt.Sprintf("day_of_week ILIKE $%d", len(args)))
	}
	if filter.Keyword != "" {
		args = append(args, likePattern(filter.Keyword))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(subject_name ILIKE $%d OR subject_code ILIKE $%d OR instructor ILIKE $%d OR department ILIKE $%d)",
			n, n, n, n))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY start_time"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query classes: %w", err)
	}
	defer rows.Close()

	var records []models.ClassRecord
	for rows.Next() {
		var c models.ClassRecord
		if err := rows.Scan(&c.SubjectName, &c.SubjectCode, &c.Instructor, &c.DayOfWeek,
			&c.StartTime, &c.EndTime, &c.RoomNumber, &c.Department); err != nil {
			return nil, fmt.Errorf("scan class row: %w", err)
		}
		records = append(records, c)
	}
	return records, rows.Err()
}

func (s *PostgresStore) SearchUpcomingEvents(ctx context.Context, filter EventFilter) ([]models.EventRecord, error) {
	query := `SELECT title, description, event_date::text, start_time, end_time, location, category, organizer FROM events WHERE event_date >= $1`
	args := []interface{}{filter.From}

	if filter.Keyword != "" {
		args = append(args, likePattern(filter.Keyword))
		n := len(args)
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d)", n, n, n)
	}
	query += " ORDER BY event_date"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var records []models.EventRecord
	for rows.Next() {
		var e models.EventRecord
		if err := rows.Scan(&e.Title, &e.Description, &e.EventDate, &e.StartTime,
			&e.EndTime, &e.Location, &e.Category, &e.Organizer); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

func (s *PostgresStore) SearchDepartments(ctx context.Context, keyword string) ([]models.DepartmentRecord, error) {
	query := `SELECT name, head, location, contact_email, contact_phone, description FROM departments`
	var args []interface{}

	if keyword != "" {
		args = append(args, likePattern(keyword))
		query += " WHERE name ILIKE $1 OR description ILIKE $1"
	}
	query += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query departments: %w", err)
	}
	defer rows.Close()

	var records []models.DepartmentRecord
	for rows.Next() {
		var d models.DepartmentRecord
		var email, phone, description sql.NullString
		if err := rows.Scan(&d.Name, &d.Head, &d.Location, &email, &phone, &description); err != nil {
			return nil, fmt.Errorf("scan department row: %w", err)
		}
		d.ContactEmail = email.String
		d.ContactPhone = phone.String
		d.Description = description.String
		records = append(records, d)
	}
	return records, rows.Err()
}

func (s *PostgresStore) ListFAQs(ctx context.Context) ([]models.FAQRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question, answer, category, keywords FROM faqs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()

	var records []models.FAQRecord
	for rows.Next() {
		var f models.FAQRecord
		if err := rows.Scan(&f.Question, &f.Answer, &f.Category, pq.Array(&f.Keywords)); err != nil {
			return nil, fmt.Errorf("scan faq row: %w", err)
		}
		records = append(records, f)
	}
	return records, rows.Err()
}
