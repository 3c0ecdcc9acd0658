package models

import "time"

// Task is a unit of work assigned to a moderator.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	AssigneeID  string    `json:"assignee_id"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
}

// TaskInput is the create/update form payload for a task.
type TaskInput struct {
	Title       string    `json:"title" validate:"required,min=2,max=200"`
	Description string    `json:"description,omitempty" validate:"max=1000"`
	AssigneeID  string    `json:"assignee_id" validate:"required"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status,omitempty"`
}
