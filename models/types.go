package models

import "time"

// Entity types
//
// IDs are strings at the API boundary. The relational backend formats its
// auto-increment integer keys as decimal strings; the document backend uses
// the store-generated record ids (e.g. "tasks:x7k2...") as-is.

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Task struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Event struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	EventDate   string    `json:"event_date"`
	EventTime   string    `json:"event_time"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventData carries the caller-supplied fields of an event for add and
// update operations. Required-field checks happen in the HTTP layer.
type EventData struct {
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	EventDate   string  `json:"event_date"`
	EventTime   string  `json:"event_time"`
	Description *string `json:"description"`
}

type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Stat struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Label     string    `json:"label"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Course struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"is_public"`
	// TotalLessons is derived on read, never stored.
	TotalLessons int `json:"total_lessons"`
	// AuthorName is only populated by the public course listing.
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CourseWithLessons struct {
	Course
	Lessons []Lesson `json:"lessons"`
}

type Lesson struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Content     *string   `json:"content"`
	LessonOrder int       `json:"lesson_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Request types

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

type AddTaskRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type UpdateTaskRequest struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type SaveNoteRequest struct {
	UserID  string `json:"user_id"`
	Content string `json:"content"`
}

type AddCourseRequest struct {
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"is_public"`
}

type UpdateCourseRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"is_public"`
}

type AddLessonRequest struct {
	CourseID    string  `json:"course_id"`
	Title       string  `json:"title"`
	Content     *string `json:"content"`
	LessonOrder int     `json:"lesson_order"`
}

type UpdateLessonRequest struct {
	Title       string  `json:"title"`
	Content     *string `json:"content"`
	LessonOrder int     `json:"lesson_order"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type DatabaseInfoResponse struct {
	DatabaseType string `json:"databaseType"`
	Message      string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
