// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/my-dashboard/models"
	"github.com/danielhkuo/my-dashboard/store"
)

// testStoreContract runs the behavior shared by both backends. Backend-only
// behavior (relational not-found signaling, document-side exclusion) is
// asserted in the per-backend test files.
func testStoreContract(t *testing.T, st store.Store) {
	t.Run("users", func(t *testing.T) { testUsers(t, st) })
	t.Run("tasks", func(t *testing.T) { testTasks(t, st) })
	t.Run("events", func(t *testing.T) { testEvents(t, st) })
	t.Run("notes", func(t *testing.T) { testNotes(t, st) })
	t.Run("stats", func(t *testing.T) { testStats(t, st) })
	t.Run("courses", func(t *testing.T) { testCourses(t, st) })
	t.Run("lessons", func(t *testing.T) { testLessons(t, st) })
}

// pause keeps server-side timestamps of consecutive writes distinct so
// ordering assertions hold on every backend.
func pause() { time.Sleep(5 * time.Millisecond) }

func mustRegister(t *testing.T, st store.Store, name, email string) *models.User {
	t.Helper()
	user, err := st.RegisterUser(name, email)
	if err != nil {
		t.Fatalf("RegisterUser(%q): %v", email, err)
	}
	return user
}

func testUsers(t *testing.T, st store.Store) {
	user := mustRegister(t, st, "Alice", "alice@contract.test")
	if user.ID == "" {
		t.Fatal("expected generated user id")
	}
	if user.Name != "Alice" || user.Email != "alice@contract.test" {
		t.Errorf("unexpected user fields: %+v", user)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	fetched, err := st.GetUser(user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if fetched == nil || fetched.ID != user.ID || fetched.Email != user.Email {
		t.Errorf("GetUser mismatch: %+v", fetched)
	}

	absent, err := st.GetUser("99999999")
	if err != nil {
		t.Fatalf("GetUser absent: %v", err)
	}
	if absent != nil {
		t.Errorf("expected nil for unknown id, got %+v", absent)
	}

	loggedIn, err := st.LoginUser("alice@contract.test")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if loggedIn == nil || loggedIn.ID != user.ID {
		t.Errorf("LoginUser mismatch: %+v", loggedIn)
	}

	unknown, err := st.LoginUser("nobody@contract.test")
	if err != nil {
		t.Fatalf("LoginUser unknown: %v", err)
	}
	if unknown != nil {
		t.Errorf("expected nil for unknown email, got %+v", unknown)
	}

	if _, err := st.RegisterUser("Alice Again", "alice@contract.test"); !errors.Is(err, store.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate email, got %v", err)
	}
	if _, err := st.RegisterUser("", "noname@contract.test"); !errors.Is(err, store.ErrValidation) {
		t.Errorf("expected ErrValidation for empty name, got %v", err)
	}
	if _, err := st.RegisterUser("No Email", ""); !errors.Is(err, store.ErrValidation) {
		t.Errorf("expected ErrValidation for empty email, got %v", err)
	}
}

func testTasks(t *testing.T, st store.Store) {
	user := mustRegister(t, st, "Tasker", "tasker@contract.test")

	empty, err := st.GetTasks(user.ID)
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", empty)
	}

	var ids []string
	for _, text := range []string{"first", "second", "third"} {
		task, err := st.AddTask(user.ID, text)
		if err != nil {
			t.Fatalf("AddTask(%q): %v", text, err)
		}
		if task.ID == "" || task.Completed {
			t.Errorf("unexpected new task: %+v", task)
		}
		ids = append(ids, task.ID)
		pause()
	}

	tasks, err := st.GetTasks(user.ID)
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	// Newest first
	if tasks[0].Text != "third" || tasks[2].Text != "first" {
		t.Errorf("expected newest-first ordering, got %q, %q, %q",
			tasks[0].Text, tasks[1].Text, tasks[2].Text)
	}

	if err := st.UpdateTask(ids[0], "first (done)", true); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	tasks, err = st.GetTasks(user.ID)
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	var updated *models.Task
	for i := range tasks {
		if tasks[i].ID == ids[0] {
			updated = &tasks[i]
		}
	}
	if updated == nil || updated.Text != "first (done)" || !updated.Completed {
		t.Errorf("update not applied: %+v", updated)
	}

	if err := st.DeleteTask(ids[1]); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	tasks, err = st.GetTasks(user.ID)
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks after delete, got %d", len(tasks))
	}

	// Task mutations never report a missing id
	if err := st.UpdateTask("99999999", "ghost", false); err != nil {
		t.Errorf("expected silent update of absent task, got %v", err)
	}
	if err := st.DeleteTask("99999999"); err != nil {
		t.Errorf("expected silent delete of absent task, got %v", err)
	}
}

func testEvents(t *testing.T, st store.Store) {
	user := mustRegister(t, st, "Planner", "planner@contract.test")

	desc := "bring slides"
	later, err := st.AddEvent(models.EventData{
		UserID:      user.ID,
		Title:       "Review",
		EventDate:   "2026-09-02",
		EventTime:   "14:00",
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if later.Description == nil || *later.Description != desc {
		t.Errorf("description not stored: %+v", later)
	}
	pause()

	earlier, err := st.AddEvent(models.EventData{
		UserID:    user.ID,
		Title:     "Standup",
		EventDate: "2026-09-01",
		EventTime: "09:30",
	})
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if earlier.Description != nil {
		t.Errorf("expected nil description, got %v", *earlier.Description)
	}
	pause()

	sameDay, err := st.AddEvent(models.EventData{
		UserID:    user.ID,
		Title:     "Lunch",
		EventDate: "2026-09-01",
		EventTime: "12:00",
	})
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	events, err := st.GetEvents(user.ID)
	if err != nil {
		t.Fatalf("GetEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// Chronological: date asc, then time asc
	if events[0].Title != "Standup" || events[1].Title != "Lunch" || events[2].Title != "Review" {
		t.Errorf("expected chronological ordering, got %q, %q, %q",
			events[0].Title, events[1].Title, events[2].Title)
	}

	if err := st.UpdateEvent(sameDay.ID, models.EventData{
		Title:     "Team lunch",
		EventDate: "2026-09-01",
		EventTime: "12:30",
	}); err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}

	events, err = st.GetEvents(user.ID)
	if err != nil {
		t.Fatalf("GetEvents: %v", err)
	}
	var renamed *models.Event
	for i := range events {
		if events[i].ID == sameDay.ID {
			renamed = &events[i]
		}
	}
	if renamed == nil || renamed.Title != "Team lunch" || renamed.EventTime != "12:30" {
		t.Errorf("update not applied: %+v", renamed)
	}

	if err := st.DeleteEvent(earlier.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	events, err = st.GetEvents(user.ID)
	if err != nil {
		t.Fatalf("GetEvents: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 events after delete, got %d", len(events))
	}
}

func testNotes(t *testing.T, st store.Store) {
	user := mustRegister(t, st, "Writer", "writer@contract.test")

	note, err := st.GetNote(user.ID)
	if err != nil {
		t.Fatalf("GetNote: %v", err)
	}
	if note != nil {
		t.Fatalf("expected no note yet, got %+v", note)
	}

	msg, err := st.SaveNote(user.ID, "initial scribble")
	if err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	if msg != store.MsgNoteSaved {
		t.Errorf("expected %q, got %q", store.MsgNoteSaved, msg)
	}

	note, err = st.GetNote(user.ID)
	if err != nil {
		t.Fatalf("GetNote: %v", err)
	}
	if note == nil || note.Content != "initial scribble" {
		t.Fatalf("note not saved: %+v", note)
	}
	firstID := note.ID
	pause()

	// Second save replaces the same note instead of creating another
	msg, err = st.SaveNote(user.ID, "revised scribble")
	if err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	if msg != store.MsgNoteUpdated {
		t.Errorf("expected %q, got %q", store.MsgNoteUpdated, msg)
	}

	note, err = st.GetNote(user.ID)
	if err != nil {
		t.Fatalf("GetNote: %v", err)
	}
	if note == nil || note.Content != "revised scribble" {
		t.Errorf("note not updated: %+v", note)
	}
	if note.ID != firstID {
		t.Errorf("expected the same note record, got %s then %s", firstID, note.ID)
	}
}

func testStats(t *testing.T, st store.Store) {
	user := mustRegister(t, st, "Counter", "counter@contract.test")

	stats, err := st.GetStats(user.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats == nil || len(stats) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", stats)
	}
}

func testCourses(t *testing.T, st store.Store) {
	owner := mustRegister(t, st, "Instructor", "instructor@contract.test")
	other := mustRegister(t, st, "Author", "author@contract.test")

	desc := "An introduction"
	private, err := st.AddCourse(owner.ID, "Private Notes", nil, false)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}
	pause()
	public, err := st.AddCourse(owner.ID, "Shared Course", &desc, true)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}
	pause()
	otherPublic, err := st.AddCourse(other.ID, "Guest Lecture", nil, true)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}

	if public.Description == nil || *public.Description != desc {
		t.Errorf("description not stored: %+v", public)
	}
	if private.IsPublic || !public.IsPublic {
		t.Error("is_public flags wrong")
	}

	courses, err := st.GetCourses(owner.ID)
	if err != nil {
		t.Fatalf("GetCourses: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	// Newest first
	if courses[0].ID != public.ID || courses[1].ID != private.ID {
		t.Errorf("expected newest-first ordering, got %q, %q", courses[0].Title, courses[1].Title)
	}
	for _, c := range courses {
		if c.TotalLessons != 0 {
			t.Errorf("expected 0 lessons on %q, got %d", c.Title, c.TotalLessons)
		}
	}

	// Lesson counts are derived per course
	for i := 0; i < 2; i++ {
		if _, err := st.AddLesson(public.ID, "Lesson", nil, i+1); err != nil {
			t.Fatalf("AddLesson: %v", err)
		}
	}
	courses, err = st.GetCourses(owner.ID)
	if err != nil {
		t.Fatalf("GetCourses: %v", err)
	}
	for _, c := range courses {
		want := 0
		if c.ID == public.ID {
			want = 2
		}
		if c.TotalLessons != want {
			t.Errorf("course %q: expected %d lessons, got %d", c.Title, want, c.TotalLessons)
		}
	}

	full, err := st.GetCourseWithLessons(public.ID)
	if err != nil {
		t.Fatalf("GetCourseWithLessons: %v", err)
	}
	if full == nil || full.ID != public.ID || len(full.Lessons) != 2 {
		t.Fatalf("unexpected course detail: %+v", full)
	}

	missing, err := st.GetCourseWithLessons("99999999")
	if err != nil {
		t.Fatalf("GetCourseWithLessons absent: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown course, got %+v", missing)
	}

	if err := st.UpdateCourse(private.ID, "Private Notes v2", nil, true); err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	updated, err := st.GetCourseWithLessons(private.ID)
	if err != nil {
		t.Fatalf("GetCourseWithLessons: %v", err)
	}
	if updated == nil || updated.Title != "Private Notes v2" || !updated.IsPublic {
		t.Errorf("update not applied: %+v", updated)
	}
	// Flip it back so the public listing below stays predictable
	if err := st.UpdateCourse(private.ID, "Private Notes", nil, false); err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}

	publics, err := st.GetPublicCourses("")
	if err != nil {
		t.Fatalf("GetPublicCourses: %v", err)
	}
	byID := map[string]models.Course{}
	for _, c := range publics {
		byID[c.ID] = c
		if c.ID == private.ID {
			t.Error("private course leaked into public listing")
		}
	}
	got, ok := byID[public.ID]
	if !ok {
		t.Fatalf("public course missing from listing: %v", publics)
	}
	if got.AuthorName != "Instructor" {
		t.Errorf("expected author_name Instructor, got %q", got.AuthorName)
	}
	if got.TotalLessons != 2 {
		t.Errorf("expected 2 lessons in listing, got %d", got.TotalLessons)
	}
	if other, ok := byID[otherPublic.ID]; !ok || other.AuthorName != "Author" {
		t.Errorf("expected Guest Lecture by Author in listing, got %+v", other)
	}

	// Deleting a course leaves its lessons behind
	if err := st.DeleteCourse(public.ID); err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}
	gone, err := st.GetCourseWithLessons(public.ID)
	if err != nil {
		t.Fatalf("GetCourseWithLessons: %v", err)
	}
	if gone != nil {
		t.Errorf("course still present after delete: %+v", gone)
	}
	orphans, err := st.GetLessons(public.ID)
	if err != nil {
		t.Fatalf("GetLessons: %v", err)
	}
	if len(orphans) != 2 {
		t.Errorf("expected orphaned lessons to remain, got %d", len(orphans))
	}
}

func testLessons(t *testing.T, st store.Store) {
	owner := mustRegister(t, st, "Lecturer", "lecturer@contract.test")
	course, err := st.AddCourse(owner.ID, "Ordering 101", nil, false)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}
	decoy, err := st.AddCourse(owner.ID, "Decoy", nil, false)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}

	content := "read chapter two"
	// Insert out of order; lesson_order drives the listing
	third, err := st.AddLesson(course.ID, "Third", nil, 3)
	if err != nil {
		t.Fatalf("AddLesson: %v", err)
	}
	first, err := st.AddLesson(course.ID, "First", &content, 1)
	if err != nil {
		t.Fatalf("AddLesson: %v", err)
	}
	if _, err := st.AddLesson(course.ID, "Second", nil, 2); err != nil {
		t.Fatalf("AddLesson: %v", err)
	}

	lessons, err := st.GetLessons(course.ID)
	if err != nil {
		t.Fatalf("GetLessons: %v", err)
	}
	if len(lessons) != 3 {
		t.Fatalf("expected 3 lessons, got %d", len(lessons))
	}
	if lessons[0].Title != "First" || lessons[1].Title != "Second" || lessons[2].Title != "Third" {
		t.Errorf("expected lesson_order ascending, got %q, %q, %q",
			lessons[0].Title, lessons[1].Title, lessons[2].Title)
	}
	if lessons[0].Content == nil || *lessons[0].Content != content {
		t.Errorf("content not stored: %+v", lessons[0])
	}

	fetched, err := st.GetLesson(course.ID, first.ID)
	if err != nil {
		t.Fatalf("GetLesson: %v", err)
	}
	if fetched == nil || fetched.ID != first.ID {
		t.Errorf("GetLesson mismatch: %+v", fetched)
	}

	// A lesson id under the wrong course is treated as absent
	crossed, err := st.GetLesson(decoy.ID, first.ID)
	if err != nil {
		t.Fatalf("GetLesson crossed: %v", err)
	}
	if crossed != nil {
		t.Errorf("expected nil for lesson under wrong course, got %+v", crossed)
	}

	if err := st.UpdateLesson(third.ID, "Third (revised)", &content, 4); err != nil {
		t.Fatalf("UpdateLesson: %v", err)
	}
	revised, err := st.GetLesson(course.ID, third.ID)
	if err != nil {
		t.Fatalf("GetLesson: %v", err)
	}
	if revised == nil || revised.Title != "Third (revised)" || revised.LessonOrder != 4 {
		t.Errorf("update not applied: %+v", revised)
	}

	if err := st.DeleteLesson(third.ID); err != nil {
		t.Fatalf("DeleteLesson: %v", err)
	}
	lessons, err = st.GetLessons(course.ID)
	if err != nil {
		t.Fatalf("GetLessons: %v", err)
	}
	if len(lessons) != 2 {
		t.Errorf("expected 2 lessons after delete, got %d", len(lessons))
	}
}
