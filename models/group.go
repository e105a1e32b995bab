package models

import "time"

// Group is a named todo category owned by exactly one user.
// Groups are visible and mutable only by their owner.
type Group struct {
	// ID is the server-assigned unique identifier of the group.
	ID int64 `json:"id"`

	// UserID references the owning user. Immutable after creation.
	UserID int64 `json:"user_id"`

	// Name is the display name of the group.
	Name string `json:"name"`

	// Removable reports whether the group may be deleted.
	// The default group created at registration is not removable.
	Removable bool `json:"removable"`

	// CreatedAt is the timestamp when the group was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Group model.
func (g Group) TableName() string {
	return "todo_groups"
}

// GroupPatch describes a partial update of a group. Only the name
// can change: the owner reference and the removable flag are fixed.
type GroupPatch struct {
	// Name replaces the group name when non-nil.
	Name *string `json:"name,omitempty"`
}
