package models

import "time"

// Priority classifies how urgently a follow-up needs attention.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// FollowUpStatusCompleted marks a finished follow-up; the remaining values
// mirror the order workflow the follow-up is attached to.
const FollowUpStatusCompleted = "Completed"

// FollowUp is a scheduled customer contact attached to an order.
type FollowUp struct {
	FollowUpID   string    `json:"followup_id"`
	OrderID      string    `json:"order_id"`
	FollowUpDate time.Time `json:"followup_date"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	ModeratorID  string    `json:"moderator_id,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	Priority     Priority  `json:"priority,omitempty"`
}

// FollowUpInput is the create/update form payload for a follow-up.
type FollowUpInput struct {
	OrderID      string    `json:"order_id" validate:"required"`
	FollowUpDate time.Time `json:"followup_date" validate:"required"`
	Notes        string    `json:"notes,omitempty" validate:"max=1000"`
	Status       string    `json:"status,omitempty"`
	Priority     Priority  `json:"priority,omitempty" validate:"omitempty,oneof=High Medium Low"`
}
