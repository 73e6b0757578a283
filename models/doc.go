// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Entities stored by both backends:

  - User: name, email
  - Task: per-user todo item with completed flag
  - Event: per-user calendar entry (event_date, event_time as strings)
  - Note: the user's single scratch note
  - Stat: labeled counter shown on the dashboard
  - Course: per-user course, optionally public; TotalLessons is derived
  - Lesson: ordered content belonging to a course

All ids are strings at the API boundary; the relational backend formats
its integer keys, the document backend uses generated record ids.
Nullable text columns (descriptions, lesson content) are *string.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest, LoginRequest
  - AddTaskRequest, UpdateTaskRequest
  - EventData (shared by add and update)
  - SaveNoteRequest
  - AddCourseRequest, UpdateCourseRequest
  - AddLessonRequest, UpdateLessonRequest

# Response Types

  - MessageResponse: {"message": ...} confirmations for mutations
  - DatabaseInfoResponse: active backend for /api/database-info
  - ErrorResponse: {"error": ...}
*/
package models
