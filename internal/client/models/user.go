// Package models defines the server-owned record types handled by the client
// and the client-side validation applied to form input before it reaches the
// network. The backend stays the authority on every field; these types are a
// read-mostly cached shape plus input normalization.
package models

// Role gates which screens and actions are permitted.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleModerator Role = "Moderator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleModerator
}

// User is the backend's account record. The client holds a cached copy tied
// to the session lifecycle.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	MobileNumber   string `json:"mobile_number"`
	Status         string `json:"status"`
	TelegramChatID string `json:"telegram_chat_id,omitempty"`
	BotToken       string `json:"bot_token,omitempty"`
}

// UserInput is the create/update form payload for a user.
type UserInput struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password,omitempty" validate:"omitempty,min=8"`
	MobileNumber string `json:"mobile_number" validate:"required,bdphone"`
	Role         Role   `json:"role" validate:"required,oneof=Admin Moderator"`
	Status       string `json:"status,omitempty"`
}
