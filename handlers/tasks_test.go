// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/my-dashboard/models"
	"github.com/danielhkuo/my-dashboard/store"
	"github.com/danielhkuo/my-dashboard/testutil"
)

func TestTaskLifecycle(t *testing.T) {
	mux, st := setupServer(t)
	user := testutil.CreateTestUser(t, st, "Tasker", "tasker@example.com")

	// Add responds 200, not 201
	w := doRequest(mux, "POST", "/api/tasks", models.AddTaskRequest{
		UserID: user.ID,
		Text:   "write report",
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	var task models.Task
	testutil.AssertJSON(t, w, &task)
	if task.ID == "" || task.Text != "write report" || task.Completed {
		t.Fatalf("unexpected task: %+v", task)
	}

	// List
	w = doRequest(mux, "GET", "/api/tasks/"+user.ID, nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	var tasks []models.Task
	testutil.AssertJSON(t, w, &tasks)
	if len(tasks) != 1 || tasks[0].ID != task.ID {
		t.Fatalf("unexpected task list: %+v", tasks)
	}

	// Update
	w = doRequest(mux, "PUT", "/api/tasks/"+task.ID, models.UpdateTaskRequest{
		Text:      "write report",
		Completed: true,
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	var msg models.MessageResponse
	testutil.AssertJSON(t, w, &msg)
	if msg.Message != store.MsgTaskUpdated {
		t.Errorf("expected %q, got %q", store.MsgTaskUpdated, msg.Message)
	}

	w = doRequest(mux, "GET", "/api/tasks/"+user.ID, nil)
	testutil.AssertJSON(t, w, &tasks)
	if !tasks[0].Completed {
		t.Error("expected task to be completed")
	}

	// Delete
	w = doRequest(mux, "DELETE", "/api/tasks/"+task.ID, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &msg)
	if msg.Message != store.MsgTaskDeleted {
		t.Errorf("expected %q, got %q", store.MsgTaskDeleted, msg.Message)
	}

	w = doRequest(mux, "GET", "/api/tasks/"+user.ID, nil)
	testutil.AssertJSON(t, w, &tasks)
	if len(tasks) != 0 {
		t.Errorf("expected no tasks after delete, got %+v", tasks)
	}
}

func TestTaskMutationsOnAbsentID(t *testing.T) {
	mux, _ := setupServer(t)

	// Updating or deleting a task that does not exist still succeeds
	w := doRequest(mux, "PUT", "/api/tasks/424242", models.UpdateTaskRequest{Text: "ghost"})
	testutil.AssertStatus(t, w, http.StatusOK)

	w = doRequest(mux, "DELETE", "/api/tasks/424242", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestGetTasksEmpty(t *testing.T) {
	mux, st := setupServer(t)
	user := testutil.CreateTestUser(t, st, "Idle", "idle@example.com")

	w := doRequest(mux, "GET", "/api/tasks/"+user.ID, nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Empty list must serialize as [], not null
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}
