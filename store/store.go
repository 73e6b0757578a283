// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "github.com/danielhkuo/my-dashboard/models"

// Store is the data-access contract shared by the relational and document
// backends. Both implementations must be observably equivalent to callers,
// up to key representation (integer-derived vs store-generated string ids).
//
// Lookup methods return nil without error when the target is absent.
// List methods return empty non-nil slices when there are no results.
// Mutations re-stamp updated_at. Update and delete signal ErrNotFound for
// events, courses and lessons only; task mutations succeed silently when
// the id does not exist, and the document backend never reports absence on
// mutations. This asymmetry is inherited behavior, kept deliberately.
type Store interface {
	// Users
	GetUser(id string) (*models.User, error)
	LoginUser(email string) (*models.User, error)
	RegisterUser(name, email string) (*models.User, error)

	// Tasks
	GetTasks(userID string) ([]models.Task, error)
	AddTask(userID, text string) (*models.Task, error)
	UpdateTask(id, text string, completed bool) error
	DeleteTask(id string) error

	// Events
	GetEvents(userID string) ([]models.Event, error)
	AddEvent(data models.EventData) (*models.Event, error)
	UpdateEvent(id string, data models.EventData) error
	DeleteEvent(id string) error

	// Notes
	GetNote(userID string) (*models.Note, error)
	// SaveNote updates the user's note if one exists, otherwise inserts
	// it. The returned confirmation message distinguishes the two paths.
	SaveNote(userID, content string) (string, error)

	// Stats
	GetStats(userID string) ([]models.Stat, error)

	// Courses
	GetCourses(userID string) ([]models.Course, error)
	// GetPublicCourses lists all public courses with author_name and
	// total_lessons attached. Exclusion of a given owner is best-effort:
	// the document backend filters client-side, the relational backend
	// does not implement it.
	GetPublicCourses(excludeUserID string) ([]models.Course, error)
	GetCourseWithLessons(courseID string) (*models.CourseWithLessons, error)
	AddCourse(userID, title string, description *string, isPublic bool) (*models.Course, error)
	UpdateCourse(id, title string, description *string, isPublic bool) error
	DeleteCourse(id string) error

	// Lessons
	GetLessons(courseID string) ([]models.Lesson, error)
	// GetLesson returns nil when lessonID exists but belongs to a
	// different course.
	GetLesson(courseID, lessonID string) (*models.Lesson, error)
	AddLesson(courseID, title string, content *string, lessonOrder int) (*models.Lesson, error)
	UpdateLesson(id, title string, content *string, lessonOrder int) error
	DeleteLesson(id string) error

	Close() error
}

// Confirmation messages shared by both backends.
const (
	MsgTaskUpdated   = "Task updated successfully"
	MsgTaskDeleted   = "Task deleted successfully"
	MsgEventUpdated  = "Event updated successfully"
	MsgEventDeleted  = "Event deleted successfully"
	MsgNoteUpdated   = "Note updated successfully"
	MsgNoteSaved     = "Note saved successfully"
	MsgCourseUpdated = "Course updated successfully"
	MsgCourseDeleted = "Course deleted successfully"
	MsgLessonUpdated = "Lesson updated successfully"
	MsgLessonDeleted = "Lesson deleted successfully"
)
