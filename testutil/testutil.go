// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/my-dashboard/cliparse"
	"github.com/danielhkuo/my-dashboard/models"
	"github.com/danielhkuo/my-dashboard/store"
)

// GetTestConfig returns a standard test configuration backed by an
// in-memory sqlite database.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3001,
		DatabaseType: cliparse.TypeSQLite,
		DatabaseURL:  ":memory:",
	}
}

// SetupTestStore opens a fresh in-memory relational store with the full
// schema. The store is closed when the test finishes.
func SetupTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	st, err := store.OpenSQL(GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return st
}

// CreateTestUser registers a user and returns it
func CreateTestUser(t *testing.T, st store.Store, name, email string) *models.User {
	t.Helper()

	user, err := st.RegisterUser(name, email)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateTestCourse adds a course for a user and returns it
func CreateTestCourse(t *testing.T, st store.Store, userID, title string, isPublic bool) *models.Course {
	t.Helper()

	course, err := st.AddCourse(userID, title, nil, isPublic)
	if err != nil {
		t.Fatalf("Failed to create test course: %v", err)
	}
	return course
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
