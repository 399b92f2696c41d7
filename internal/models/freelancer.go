// Package models defines the transport DTOs exchanged with the paybatch
// backend. The backend owns every entity; nothing here has a lifecycle
// beyond fetched, displayed, optionally re-fetched.
package models

import "time"

// Freelancer is the public view of a freelancer account.
type Freelancer struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	HourlyRate float64   `json:"hourly_rate"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginResponse is the token payload returned by both portal login endpoints.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest creates a new freelancer account.
type RegisterRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	HourlyRate float64 `json:"hourly_rate"`
}

// UpdateProfileRequest patches the authenticated freelancer's profile.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name       *string  `json:"name,omitempty"`
	Email      *string  `json:"email,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
