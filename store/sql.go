// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/my-dashboard/cliparse"
	"github.com/danielhkuo/my-dashboard/db"
	"github.com/danielhkuo/my-dashboard/models"
)

// SQLStore is the relational implementation of Store. It holds a single
// persistent connection reused by all calls; each statement is its own
// implicit transaction.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// OpenSQL connects to the relational engine named by cfg.DatabaseType
// ("sqlite" or "postgres"), verifies the connection and ensures the schema
// exists.
func OpenSQL(cfg cliparse.Config) (*SQLStore, error) {
	driver := strings.ToLower(cfg.DatabaseType)

	conn, err := sql.Open(driverName(driver), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// One connection for the whole process; no pool.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.CreateSchema(conn, driver); err != nil {
		conn.Close()
		return nil, err
	}

	return &SQLStore{db: conn, driver: driver}, nil
}

func driverName(driver string) string {
	if driver == cliparse.TypePostgres {
		return "postgres"
	}
	return "sqlite"
}

// DB exposes the underlying handle for seeding and tests.
func (s *SQLStore) DB() *sql.DB { return s.db }

// Driver reports which relational driver is active.
func (s *SQLStore) Driver() string { return s.driver }

func (s *SQLStore) Close() error { return s.db.Close() }

// bind adapts ? placeholders to the active driver.
func (s *SQLStore) bind(query string) string {
	return db.Rebind(s.driver, query)
}

// insertID runs an INSERT and returns the generated key. lib/pq does not
// implement LastInsertId, so the postgres path uses RETURNING.
func (s *SQLStore) insertID(query string, args ...any) (int64, error) {
	if s.driver == cliparse.TypePostgres {
		var id int64
		err := s.db.QueryRow(s.bind(query)+" RETURNING id", args...).Scan(&id)
		return id, err
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// idNum parses a caller-supplied id. Non-numeric ids never match a row,
// which yields the same behavior as an absent key.
func idNum(id string) int64 {
	n, _ := strconv.ParseInt(id, 10, 64)
	return n
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// User methods

const userColumns = "id, name, email, created_at, updated_at"

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	var id int64
	if err := row.Scan(&id, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.ID = formatID(id)
	return &u, nil
}

func (s *SQLStore) GetUser(id string) (*models.User, error) {
	row := s.db.QueryRow(s.bind("SELECT "+userColumns+" FROM users WHERE id = ?"), idNum(id))
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *SQLStore) LoginUser(email string) (*models.User, error) {
	row := s.db.QueryRow(s.bind("SELECT "+userColumns+" FROM users WHERE email = ?"), email)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *SQLStore) RegisterUser(name, email string) (*models.User, error) {
	if name == "" || email == "" {
		return nil, invalid("Name and email are required")
	}

	// Read-before-write uniqueness check; see package doc for the race.
	existing, err := s.LoginUser(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, conflict("User with this email already exists")
	}

	now := time.Now().UTC()
	id, err := s.insertID(
		"INSERT INTO users (name, email, created_at, updated_at) VALUES (?, ?, ?, ?)",
		name, email, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return s.GetUser(formatID(id))
}

// Task methods

const taskColumns = "id, user_id, text, completed, created_at, updated_at"

func scanTask(row rowScanner) (*models.Task, error) {
	var t models.Task
	var id, userID int64
	if err := row.Scan(&id, &userID, &t.Text, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.ID = formatID(id)
	t.UserID = formatID(userID)
	return &t, nil
}

func (s *SQLStore) GetTasks(userID string) ([]models.Task, error) {
	rows, err := s.db.Query(s.bind(
		"SELECT "+taskColumns+" FROM tasks WHERE user_id = ? ORDER BY created_at DESC"), idNum(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (s *SQLStore) AddTask(userID, text string) (*models.Task, error) {
	now := time.Now().UTC()
	id, err := s.insertID(
		"INSERT INTO tasks (user_id, text, completed, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		idNum(userID), text, false, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	row := s.db.QueryRow(s.bind("SELECT "+taskColumns+" FROM tasks WHERE id = ?"), id)
	task, err := scanTask(row)
	if err != nil {
		return nil, fmt.Errorf("failed to query task: %w", err)
	}
	return task, nil
}

// UpdateTask does not check that the task exists; updating an absent id is
// a silent no-op. Inherited behavior, unlike events/courses/lessons.
func (s *SQLStore) UpdateTask(id, text string, completed bool) error {
	_, err := s.db.Exec(s.bind(
		"UPDATE tasks SET text = ?, completed = ?, updated_at = ? WHERE id = ?"),
		text, completed, time.Now().UTC(), idNum(id))
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (s *SQLStore) DeleteTask(id string) error {
	_, err := s.db.Exec(s.bind("DELETE FROM tasks WHERE id = ?"), idNum(id))
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Event methods

const eventColumns = "id, user_id, title, event_date, event_time, description, created_at, updated_at"

func scanEvent(row rowScanner) (*models.Event, error) {
	var e models.Event
	var id, userID int64
	var desc sql.NullString
	if err := row.Scan(&id, &userID, &e.Title, &e.EventDate, &e.EventTime, &desc, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.ID = formatID(id)
	e.UserID = formatID(userID)
	if desc.Valid {
		e.Description = &desc.String
	}
	return &e, nil
}

func (s *SQLStore) GetEvents(userID string) ([]models.Event, error) {
	rows, err := s.db.Query(s.bind(
		"SELECT "+eventColumns+" FROM events WHERE user_id = ? ORDER BY event_date ASC, event_time ASC"), idNum(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func (s *SQLStore) AddEvent(data models.EventData) (*models.Event, error) {
	now := time.Now().UTC()
	id, err := s.insertID(
		"INSERT INTO events (user_id, title, event_date, event_time, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		idNum(data.UserID), data.Title, data.EventDate, data.EventTime, data.Description, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	row := s.db.QueryRow(s.bind("SELECT "+eventColumns+" FROM events WHERE id = ?"), id)
	event, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}
	return event, nil
}

func (s *SQLStore) UpdateEvent(id string, data models.EventData) error {
	res, err := s.db.Exec(s.bind(
		"UPDATE events SET title = ?, event_date = ?, event_time = ?, description = ?, updated_at = ? WHERE id = ?"),
		data.Title, data.EventDate, data.EventTime, data.Description, time.Now().UTC(), idNum(id))
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if affected == 0 {
		return notFound("Event not found")
	}
	return nil
}

func (s *SQLStore) DeleteEvent(id string) error {
	res, err := s.db.Exec(s.bind("DELETE FROM events WHERE id = ?"), idNum(id))
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if affected == 0 {
		return notFound("Event not found")
	}
	return nil
}

// Note methods

const noteColumns = "id, user_id, content, created_at, updated_at"

func scanNote(row rowScanner) (*models.Note, error) {
	var n models.Note
	var id, userID int64
	if err := row.Scan(&id, &userID, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	n.ID = formatID(id)
	n.UserID = formatID(userID)
	return &n, nil
}

// GetNote returns the user's most recently updated note; there should only
// ever be one.
func (s *SQLStore) GetNote(userID string) (*models.Note, error) {
	row := s.db.QueryRow(s.bind(
		"SELECT "+noteColumns+" FROM notes WHERE user_id = ? ORDER BY updated_at DESC LIMIT 1"), idNum(userID))
	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query note: %w", err)
	}
	return note, nil
}

func (s *SQLStore) SaveNote(userID, content string) (string, error) {
	existing, err := s.GetNote(userID)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if existing != nil {
		_, err := s.db.Exec(s.bind(
			"UPDATE notes SET content = ?, updated_at = ? WHERE user_id = ?"),
			content, now, idNum(userID))
		if err != nil {
			return "", fmt.Errorf("failed to update note: %w", err)
		}
		return MsgNoteUpdated, nil
	}

	_, err = s.db.Exec(s.bind(
		"INSERT INTO notes (user_id, content, created_at, updated_at) VALUES (?, ?, ?, ?)"),
		idNum(userID), content, now, now)
	if err != nil {
		return "", fmt.Errorf("failed to insert note: %w", err)
	}
	return MsgNoteSaved, nil
}

// Stats methods

func (s *SQLStore) GetStats(userID string) ([]models.Stat, error) {
	rows, err := s.db.Query(s.bind(
		"SELECT id, user_id, label, value, created_at, updated_at FROM stats WHERE user_id = ?"), idNum(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	stats := []models.Stat{}
	for rows.Next() {
		var st models.Stat
		var id, uid int64
		if err := rows.Scan(&id, &uid, &st.Label, &st.Value, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stat: %w", err)
		}
		st.ID = formatID(id)
		st.UserID = formatID(uid)
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// Course methods

const courseColumns = "id, user_id, title, description, is_public, created_at, updated_at"

func scanCourse(row rowScanner) (*models.Course, error) {
	var c models.Course
	var id, userID int64
	var desc sql.NullString
	if err := row.Scan(&id, &userID, &c.Title, &desc, &c.IsPublic, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.ID = formatID(id)
	c.UserID = formatID(userID)
	if desc.Valid {
		c.Description = &desc.String
	}
	return &c, nil
}

func (s *SQLStore) GetCourses(userID string) ([]models.Course, error) {
	rows, err := s.db.Query(s.bind(`
		SELECT c.id, c.user_id, c.title, c.description, c.is_public, c.created_at, c.updated_at,
		       COUNT(l.id) AS total_lessons
		FROM courses c
		LEFT JOIN lessons l ON l.course_id = c.id
		WHERE c.user_id = ?
		GROUP BY c.id
		ORDER BY c.created_at DESC`), idNum(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var c models.Course
		var id, uid int64
		var desc sql.NullString
		if err := rows.Scan(&id, &uid, &c.Title, &desc, &c.IsPublic, &c.CreatedAt, &c.UpdatedAt, &c.TotalLessons); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		c.ID = formatID(id)
		c.UserID = formatID(uid)
		if desc.Valid {
			c.Description = &desc.String
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// GetPublicCourses ignores excludeUserID; the relational backend has never
// implemented exclusion and callers treat it as best-effort.
func (s *SQLStore) GetPublicCourses(excludeUserID string) ([]models.Course, error) {
	rows, err := s.db.Query(s.bind(`
		SELECT c.id, c.user_id, c.title, c.description, c.is_public, c.created_at, c.updated_at,
		       u.name AS author_name, COUNT(l.id) AS total_lessons
		FROM courses c
		JOIN users u ON c.user_id = u.id
		LEFT JOIN lessons l ON l.course_id = c.id
		WHERE c.is_public = ?
		GROUP BY c.id, u.name
		ORDER BY c.created_at DESC`), true)
	if err != nil {
		return nil, fmt.Errorf("failed to query public courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var c models.Course
		var id, uid int64
		var desc sql.NullString
		if err := rows.Scan(&id, &uid, &c.Title, &desc, &c.IsPublic, &c.CreatedAt, &c.UpdatedAt, &c.AuthorName, &c.TotalLessons); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		c.ID = formatID(id)
		c.UserID = formatID(uid)
		if desc.Valid {
			c.Description = &desc.String
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (s *SQLStore) GetCourseWithLessons(courseID string) (*models.CourseWithLessons, error) {
	row := s.db.QueryRow(s.bind("SELECT "+courseColumns+" FROM courses WHERE id = ?"), idNum(courseID))
	course, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query course: %w", err)
	}

	lessons, err := s.GetLessons(courseID)
	if err != nil {
		return nil, err
	}

	return &models.CourseWithLessons{Course: *course, Lessons: lessons}, nil
}

func (s *SQLStore) AddCourse(userID, title string, description *string, isPublic bool) (*models.Course, error) {
	now := time.Now().UTC()
	id, err := s.insertID(
		"INSERT INTO courses (user_id, title, description, is_public, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		idNum(userID), title, description, isPublic, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert course: %w", err)
	}

	row := s.db.QueryRow(s.bind("SELECT "+courseColumns+" FROM courses WHERE id = ?"), id)
	course, err := scanCourse(row)
	if err != nil {
		return nil, fmt.Errorf("failed to query course: %w", err)
	}
	return course, nil
}

func (s *SQLStore) UpdateCourse(id, title string, description *string, isPublic bool) error {
	res, err := s.db.Exec(s.bind(
		"UPDATE courses SET title = ?, description = ?, is_public = ?, updated_at = ? WHERE id = ?"),
		title, description, isPublic, time.Now().UTC(), idNum(id))
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	if affected == 0 {
		return notFound("Course not found")
	}
	return nil
}

// DeleteCourse removes the course row only; its lessons stay behind.
func (s *SQLStore) DeleteCourse(id string) error {
	res, err := s.db.Exec(s.bind("DELETE FROM courses WHERE id = ?"), idNum(id))
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if affected == 0 {
		return notFound("Course not found")
	}
	return nil
}

// Lesson methods

const lessonColumns = "id, course_id, title, content, lesson_order, created_at, updated_at"

func scanLesson(row rowScanner) (*models.Lesson, error) {
	var l models.Lesson
	var id, courseID int64
	var content sql.NullString
	if err := row.Scan(&id, &courseID, &l.Title, &content, &l.LessonOrder, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.ID = formatID(id)
	l.CourseID = formatID(courseID)
	if content.Valid {
		l.Content = &content.String
	}
	return &l, nil
}

func (s *SQLStore) GetLessons(courseID string) ([]models.Lesson, error) {
	rows, err := s.db.Query(s.bind(
		"SELECT "+lessonColumns+" FROM lessons WHERE course_id = ? ORDER BY lesson_order ASC"), idNum(courseID))
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := []models.Lesson{}
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, *lesson)
	}
	return lessons, rows.Err()
}

func (s *SQLStore) GetLesson(courseID, lessonID string) (*models.Lesson, error) {
	row := s.db.QueryRow(s.bind(
		"SELECT "+lessonColumns+" FROM lessons WHERE id = ? AND course_id = ?"),
		idNum(lessonID), idNum(courseID))
	lesson, err := scanLesson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query lesson: %w", err)
	}
	return lesson, nil
}

func (s *SQLStore) AddLesson(courseID, title string, content *string, lessonOrder int) (*models.Lesson, error) {
	now := time.Now().UTC()
	id, err := s.insertID(
		"INSERT INTO lessons (course_id, title, content, lesson_order, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		idNum(courseID), title, content, lessonOrder, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert lesson: %w", err)
	}

	row := s.db.QueryRow(s.bind("SELECT "+lessonColumns+" FROM lessons WHERE id = ?"), id)
	lesson, err := scanLesson(row)
	if err != nil {
		return nil, fmt.Errorf("failed to query lesson: %w", err)
	}
	return lesson, nil
}

func (s *SQLStore) UpdateLesson(id, title string, content *string, lessonOrder int) error {
	res, err := s.db.Exec(s.bind(
		"UPDATE lessons SET title = ?, content = ?, lesson_order = ?, updated_at = ? WHERE id = ?"),
		title, content, lessonOrder, time.Now().UTC(), idNum(id))
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}
	if affected == 0 {
		return notFound("Lesson not found")
	}
	return nil
}

func (s *SQLStore) DeleteLesson(id string) error {
	res, err := s.db.Exec(s.bind("DELETE FROM lessons WHERE id = ?"), idNum(id))
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	if affected == 0 {
		return notFound("Lesson not found")
	}
	return nil
}
