package user

import "time"

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type RegisterCommand struct {
	UserID         string
	Username       string
	MobileNumber   string
	Password       string // plaintext, hashed before storage
	AdminAccess    bool
	ProfilePicture string
	StatusMessage  string
}

// Output DTOs
type UserDTO struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	MobileNumber   string    `json:"mobile_number"`
	AdminAccess    bool      `json:"admin_access"`
	IsActive       bool      `json:"is_active"`
	LastSeenAt     time.Time `json:"last_seen_at"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	StatusMessage  string    `json:"status_message,omitempty"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   int      `json:"expires_in"`
	TokenType   string   `json:"token_type"`
	User        *UserDTO `json:"user"`
}
