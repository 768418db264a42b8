package models

import (
	"encoding/json"
	"time"
)

// Priority is the urgency level of a task.
type Priority string

// Supported task priorities. PriorityMedium is the default applied when a
// task is created without a priority or with a value outside this set.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the supported priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Status is the kanban column a task currently belongs to.
type Status string

// Supported task statuses. StatusTodo is the default applied when a task is
// created without a status or with a value outside this set.
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the supported status values.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a single kanban card owned by exactly one user.
// A task is only readable, writable, and deletable by the user whose ID
// equals UserID; any other identity gets an authorization failure.
type Task struct {
	// ID is the unique identifier of the task (UUIDv7), immutable.
	ID string `json:"id"`

	// UserID is the owning user's ID. Set at creation time and never
	// changed afterwards.
	UserID string `json:"userId"`

	// Title is the required card caption. Must be non-empty after trimming.
	Title string `json:"title"`

	// Description is optional free-form text; defaults to the empty string.
	Description string `json:"description"`

	Priority Priority `json:"priority"`
	Status   Status   `json:"status"`

	// DueDate is the optional deadline; nil when the task has none.
	DueDate *time.Time `json:"dueDate"`

	// CreatedAt and UpdatedAt are maintained by the persistence layer.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskCreate is the request payload for creating a task. Out-of-enum
// Priority/Status values are coerced to their defaults rather than rejected.
type TaskCreate struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    Priority     `json:"priority"`
	Status      Status       `json:"status"`
	DueDate     OptionalTime `json:"dueDate"`
}

// TaskUpdate is the partial-update payload for a task. A nil pointer means
// the field was absent from the request and must be left unchanged. Unlike
// TaskCreate, out-of-enum Priority/Status values are rejected here.
type TaskUpdate struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Priority    *Priority    `json:"priority"`
	Status      *Status      `json:"status"`
	DueDate     OptionalTime `json:"dueDate"`
}

// Empty reports whether the update carries no fields at all.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil &&
		u.Status == nil && !u.DueDate.Set
}

// OptionalTime is a nullable timestamp that also distinguishes an absent
// JSON field from an explicit null. Decoding "null" or "" leaves Time nil
// with Set true; an absent field leaves Set false; any other value must be
// an RFC 3339 timestamp or a plain "2006-01-02" date.
type OptionalTime struct {
	// Set is true when the field was present in the request body at all,
	// including an explicit null.
	Set bool

	// Time is the parsed timestamp, nil for an explicit null.
	Time *time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Time = nil

	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return err
		}
	}

	o.Time = &parsed
	return nil
}

// MarshalJSON implements json.Marshaler so that request payloads containing
// an OptionalTime survive a round trip in tests and client code.
func (o OptionalTime) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Time == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Time.Format(time.RFC3339))
}
