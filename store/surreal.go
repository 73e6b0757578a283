// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"strings"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/danielhkuo/my-dashboard/cliparse"
	"github.com/danielhkuo/my-dashboard/models"
)

// SurrealStore is the document implementation of Store. Records are
// schemaless, ids are server-generated strings, and timestamps are stamped
// by the server with time::now(). There are no joins; derived values like
// lesson counts come from sequential follow-up queries.
type SurrealStore struct {
	db *surrealdb.DB
}

// OpenSurreal connects to SurrealDB over websocket, signs in and selects
// the configured namespace and database.
func OpenSurreal(cfg cliparse.Config) (*SurrealStore, error) {
	conn, err := surrealdb.New(cfg.SurrealURL)
	if err != nil {
		return nil, fmt.Errorf("surrealdb connection failed: %w", err)
	}

	if _, err := conn.Signin(map[string]any{
		"user": cfg.SurrealUser,
		"pass": cfg.SurrealPass,
	}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("surrealdb signin failed: %w", err)
	}

	if _, err := conn.Use(cfg.SurrealNS, cfg.SurrealDB); err != nil {
		conn.Close()
		return nil, fmt.Errorf("surrealdb use failed: %w", err)
	}

	return &SurrealStore{db: conn}, nil
}

// DB exposes the underlying client for tests.
func (s *SurrealStore) DB() *surrealdb.DB { return s.db }

func (s *SurrealStore) Close() error {
	s.db.Close()
	return nil
}

// queryRows runs one statement and returns its result rows.
func (s *SurrealStore) queryRows(sql string, vars map[string]any) ([]any, error) {
	res, err := s.db.Query(sql, vars)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	statements, ok := res.([]any)
	if !ok || len(statements) == 0 {
		return nil, fmt.Errorf("unexpected query response: %T", res)
	}
	stmt, ok := statements[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected statement shape: %T", statements[0])
	}
	if status, _ := stmt["status"].(string); status != "OK" {
		return nil, fmt.Errorf("query failed: %v: %v", stmt["status"], stmt["detail"])
	}

	rows, ok := stmt["result"].([]any)
	if !ok {
		return []any{}, nil
	}
	return rows, nil
}

// selectInto runs a statement and unmarshals its rows into dest, which must
// be a pointer to a slice.
func (s *SurrealStore) selectInto(dest any, sql string, vars map[string]any) error {
	rows, err := s.queryRows(sql, vars)
	if err != nil {
		return err
	}
	if err := surrealdb.Unmarshal(rows, dest); err != nil {
		return fmt.Errorf("failed to decode rows: %w", err)
	}
	return nil
}

// localID strips the table prefix from a record id ("tasks:abc" -> "abc") so
// callers see bare keys regardless of backend.
func localID(id string) string {
	if _, rest, ok := strings.Cut(id, ":"); ok {
		return rest
	}
	return id
}

// countRows returns the number of records matching field = value in table.
func (s *SurrealStore) countRows(table, field, value string) (int, error) {
	rows, err := s.queryRows(
		fmt.Sprintf("SELECT count() FROM %s WHERE %s = $value GROUP ALL", table, field),
		map[string]any{"value": value})
	if err != nil {
		return 0, err
	}

	var counts []struct {
		Count int `json:"count"`
	}
	if err := surrealdb.Unmarshal(rows, &counts); err != nil {
		return 0, fmt.Errorf("failed to decode count: %w", err)
	}
	if len(counts) == 0 {
		return 0, nil
	}
	return counts[0].Count, nil
}

// User methods

func (s *SurrealStore) GetUser(id string) (*models.User, error) {
	var users []models.User
	err := s.selectInto(&users, "SELECT * FROM type::thing($tb, $id)",
		map[string]any{"tb": "users", "id": localID(id)})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	users[0].ID = localID(users[0].ID)
	return &users[0], nil
}

func (s *SurrealStore) LoginUser(email string) (*models.User, error) {
	var users []models.User
	err := s.selectInto(&users, "SELECT * FROM users WHERE email = $email",
		map[string]any{"email": email})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	users[0].ID = localID(users[0].ID)
	return &users[0], nil
}

func (s *SurrealStore) RegisterUser(name, email string) (*models.User, error) {
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

	var users []models.User
	err = s.selectInto(&users, `
		CREATE users SET
			name = $name, email = $email,
			created_at = time::now(), updated_at = time::now()`,
		map[string]any{"name": name, "email": email})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("create returned no user")
	}
	users[0].ID = localID(users[0].ID)
	return &users[0], nil
}

// Task methods

func (s *SurrealStore) GetTasks(userID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.selectInto(&tasks,
		"SELECT * FROM tasks WHERE user_id = $user_id ORDER BY created_at DESC",
		map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	for i := range tasks {
		tasks[i].ID = localID(tasks[i].ID)
	}
	return tasks, nil
}

func (s *SurrealStore) AddTask(userID, text string) (*models.Task, error) {
	var tasks []models.Task
	err := s.selectInto(&tasks, `
		CREATE tasks SET
			user_id = $user_id, text = $text, completed = false,
			created_at = time::now(), updated_at = time::now()`,
		map[string]any{"user_id": userID, "text": text})
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("create returned no task")
	}
	tasks[0].ID = localID(tasks[0].ID)
	return &tasks[0], nil
}

// Mutations in this backend never report a missing id; updating or deleting
// an absent record is a silent no-op. The WHERE form avoids UPDATE's
// create-if-absent behavior on direct record ids.
func (s *SurrealStore) UpdateTask(id, text string, completed bool) error {
	_, err := s.queryRows(`
		UPDATE tasks SET
			text = $text, completed = $completed, updated_at = time::now()
		WHERE id = type::thing($tb, $id)`,
		map[string]any{"tb": "tasks", "id": localID(id), "text": text, "completed": completed})
	return err
}

func (s *SurrealStore) DeleteTask(id string) error {
	_, err := s.db.Query("DELETE type::thing($tb, $id)",
		map[string]any{"tb": "tasks", "id": localID(id)})
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	return nil
}

// Event methods

func (s *SurrealStore) GetEvents(userID string) ([]models.Event, error) {
	var events []models.Event
	err := s.selectInto(&events, `
		SELECT * FROM events WHERE user_id = $user_id
		ORDER BY event_date ASC, event_time ASC`,
		map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	for i := range events {
		events[i].ID = localID(events[i].ID)
	}
	return events, nil
}

func (s *SurrealStore) AddEvent(data models.EventData) (*models.Event, error) {
	var events []models.Event
	err := s.selectInto(&events, `
		CREATE events SET
			user_id = $user_id, title = $title,
			event_date = $event_date, event_time = $event_time,
			description = $description,
			created_at = time::now(), updated_at = time::now()`,
		map[string]any{
			"user_id":     data.UserID,
			"title":       data.Title,
			"event_date":  data.EventDate,
			"event_time":  data.EventTime,
			"description": data.Description,
		})
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("create returned no event")
	}
	events[0].ID = localID(events[0].ID)
	return &events[0], nil
}

func (s *SurrealStore) UpdateEvent(id string, data models.EventData) error {
	_, err := s.queryRows(`
		UPDATE events SET
			title = $title, event_date = $event_date, event_time = $event_time,
			description = $description, updated_at = time::now()
		WHERE id = type::thing($tb, $id)`,
		map[string]any{
			"tb":          "events",
			"id":          localID(id),
			"title":       data.Title,
			"event_date":  data.EventDate,
			"event_time":  data.EventTime,
			"description": data.Description,
		})
	return err
}

func (s *SurrealStore) DeleteEvent(id string) error {
	_, err := s.db.Query("DELETE type::thing($tb, $id)",
		map[string]any{"tb": "events", "id": localID(id)})
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	return nil
}

// Note methods

func (s *SurrealStore) GetNote(userID string) (*models.Note, error) {
	var notes []models.Note
	err := s.selectInto(&notes, `
		SELECT * FROM notes WHERE user_id = $user_id
		ORDER BY updated_at DESC LIMIT 1`,
		map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, nil
	}
	notes[0].ID = localID(notes[0].ID)
	return &notes[0], nil
}

func (s *SurrealStore) SaveNote(userID, content string) (string, error) {
	existing, err := s.GetNote(userID)
	if err != nil {
		return "", err
	}

	if existing != nil {
		_, err := s.queryRows(`
			UPDATE notes SET content = $content, updated_at = time::now()
			WHERE id = type::thing($tb, $id)`,
			map[string]any{"tb": "notes", "id": existing.ID, "content": content})
		if err != nil {
			return "", err
		}
		return MsgNoteUpdated, nil
	}

	_, err = s.queryRows(`
		CREATE notes SET
			user_id = $user_id, content = $content,
			created_at = time::now(), updated_at = time::now()`,
		map[string]any{"user_id": userID, "content": content})
	if err != nil {
		return "", err
	}
	return MsgNoteSaved, nil
}

// Stats methods

func (s *SurrealStore) GetStats(userID string) ([]models.Stat, error) {
	var stats []models.Stat
	err := s.selectInto(&stats, "SELECT * FROM stats WHERE user_id = $user_id",
		map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []models.Stat{}
	}
	for i := range stats {
		stats[i].ID = localID(stats[i].ID)
	}
	return stats, nil
}

// Course methods

func (s *SurrealStore) GetCourses(userID string) ([]models.Course, error) {
	var courses []models.Course
	err := s.selectInto(&courses, `
		SELECT * FROM courses WHERE user_id = $user_id
		ORDER BY created_at DESC`,
		map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}

	// One count query per course; no joins here.
	for i := range courses {
		courses[i].ID = localID(courses[i].ID)
		total, err := s.countRows("lessons", "course_id", courses[i].ID)
		if err != nil {
			return nil, err
		}
		courses[i].TotalLessons = total
	}
	return courses, nil
}

func (s *SurrealStore) GetPublicCourses(excludeUserID string) ([]models.Course, error) {
	var fetched []models.Course
	err := s.selectInto(&fetched, `
		SELECT * FROM courses WHERE is_public = true
		ORDER BY created_at DESC`, nil)
	if err != nil {
		return nil, err
	}

	courses := []models.Course{}
	for _, c := range fetched {
		c.ID = localID(c.ID)

		if c.UserID != "" {
			author, err := s.GetUser(c.UserID)
			if err != nil {
				return nil, err
			}
			if author != nil {
				c.AuthorName = author.Name
			}
		}

		total, err := s.countRows("lessons", "course_id", c.ID)
		if err != nil {
			return nil, err
		}
		c.TotalLessons = total

		// Exclusion is applied here, after the fetch.
		if excludeUserID == "" || c.UserID != excludeUserID {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (s *SurrealStore) GetCourseWithLessons(courseID string) (*models.CourseWithLessons, error) {
	var courses []models.Course
	err := s.selectInto(&courses, "SELECT * FROM type::thing($tb, $id)",
		map[string]any{"tb": "courses", "id": localID(courseID)})
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}
	courses[0].ID = localID(courses[0].ID)

	lessons, err := s.GetLessons(courses[0].ID)
	if err != nil {
		return nil, err
	}

	return &models.CourseWithLessons{Course: courses[0], Lessons: lessons}, nil
}

func (s *SurrealStore) AddCourse(userID, title string, description *string, isPublic bool) (*models.Course, error) {
	var courses []models.Course
	err := s.selectInto(&courses, `
		CREATE courses SET
			user_id = $user_id, title = $title, description = $description,
			is_public = $is_public,
			created_at = time::now(), updated_at = time::now()`,
		map[string]any{
			"user_id":     userID,
			"title":       title,
			"description": description,
			"is_public":   isPublic,
		})
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("create returned no course")
	}
	courses[0].ID = localID(courses[0].ID)
	return &courses[0], nil
}

func (s *SurrealStore) UpdateCourse(id, title string, description *string, isPublic bool) error {
	_, err := s.queryRows(`
		UPDATE courses SET
			title = $title, description = $description, is_public = $is_public,
			updated_at = time::now()
		WHERE id = type::thing($tb, $id)`,
		map[string]any{
			"tb":          "courses",
			"id":          localID(id),
			"title":       title,
			"description": description,
			"is_public":   isPublic,
		})
	return err
}

// DeleteCourse removes the course record only; its lessons stay behind.
func (s *SurrealStore) DeleteCourse(id string) error {
	_, err := s.db.Query("DELETE type::thing($tb, $id)",
		map[string]any{"tb": "courses", "id": localID(id)})
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	return nil
}

// Lesson methods

func (s *SurrealStore) GetLessons(courseID string) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := s.selectInto(&lessons, `
		SELECT * FROM lessons WHERE course_id = $course_id
		ORDER BY lesson_order ASC`,
		map[string]any{"course_id": localID(courseID)})
	if err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []models.Lesson{}
	}
	for i := range lessons {
		lessons[i].ID = localID(lessons[i].ID)
	}
	return lessons, nil
}

func (s *SurrealStore) GetLesson(courseID, lessonID string) (*models.Lesson, error) {
	var lessons []models.Lesson
	err := s.selectInto(&lessons, "SELECT * FROM type::thing($tb, $id)",
		map[string]any{"tb": "lessons", "id": localID(lessonID)})
	if err != nil {
		return nil, err
	}
	// The lesson must belong to the named course.
	if len(lessons) == 0 || lessons[0].CourseID != localID(courseID) {
		return nil, nil
	}
	lessons[0].ID = localID(lessons[0].ID)
	return &lessons[0], nil
}

func (s *SurrealStore) AddLesson(courseID, title string, content *string, lessonOrder int) (*models.Lesson, error) {
	var lessons []models.Lesson
	err := s.selectInto(&lessons, `
		CREATE lessons SET
			course_id = $course_id, title = $title, content = $content,
			lesson_order = $lesson_order,
			created_at = time::now(), updated_at = time::now()`,
		map[string]any{
			"course_id":    localID(courseID),
			"title":        title,
			"content":      content,
			"lesson_order": lessonOrder,
		})
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, fmt.Errorf("create returned no lesson")
	}
	lessons[0].ID = localID(lessons[0].ID)
	return &lessons[0], nil
}

func (s *SurrealStore) UpdateLesson(id, title string, content *string, lessonOrder int) error {
	_, err := s.queryRows(`
		UPDATE lessons SET
			title = $title, content = $content, lesson_order = $lesson_order,
			updated_at = time::now()
		WHERE id = type::thing($tb, $id)`,
		map[string]any{
			"tb":           "lessons",
			"id":           localID(id),
			"title":        title,
			"content":      content,
			"lesson_order": lessonOrder,
		})
	return err
}

func (s *SurrealStore) DeleteLesson(id string) error {
	_, err := s.db.Query("DELETE type::thing($tb, $id)",
		map[string]any{"tb": "lessons", "id": localID(id)})
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	return nil
}
