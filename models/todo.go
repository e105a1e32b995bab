package models

import "time"

// Todo is a single todo item owned by exactly one user and optionally
// filed under one of that user's groups. A Todo may never reference a
// group owned by a different user.
type Todo struct {
	// ID is the server-assigned unique identifier of the todo.
	ID int64 `json:"id"`

	// UserID references the owning user. Immutable after creation.
	UserID int64 `json:"user_id"`

	// GroupID optionally references a group owned by the same user.
	// Nil means the todo is not filed under any group.
	GroupID *int64 `json:"group_id,omitempty"`

	// Text is the todo content.
	Text string `json:"text"`

	// Done reports whether the todo has been completed.
	Done bool `json:"done"`

	// DueDate is an optional deadline for the todo.
	DueDate *time.Time `json:"due_date,omitempty"`

	// CompletedAt records when the todo was marked done.
	// Nil while Done is false.
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// CreatedAt is the timestamp when the todo was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoCreate carries the caller-supplied fields of a new todo.
type TodoCreate struct {
	// Text is the todo content. Must be non-empty.
	Text string `json:"text"`

	// GroupID optionally files the todo under a group owned by the caller.
	GroupID *int64 `json:"group_id,omitempty"`

	// DueDate is an optional deadline.
	DueDate *time.Time `json:"due_date,omitempty"`
}

// TodoPatch describes a partial update of a todo. Nil fields are left
// unchanged. A non-nil GroupID with value 0 clears the group reference;
// any other value is re-validated against the caller's groups.
type TodoPatch struct {
	Text    *string    `json:"text,omitempty"`
	Done    *bool      `json:"done,omitempty"`
	GroupID *int64     `json:"group_id,omitempty"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

// IsEmpty reports whether the patch carries no changes at all.
func (p TodoPatch) IsEmpty() bool {
	return p.Text == nil && p.Done == nil && p.GroupID == nil && p.DueDate == nil
}
