package auth

import "time"

type RegisterRequest struct {
	Name       string `json:"name" form:"name" binding:"required,notblank"`
	Email      string `json:"email" form:"email" binding:"required,email"`
	Password   string `json:"password" form:"password" binding:"required"`
	RedirectTo string `json:"redirect_to" form:"redirect_to"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

type SessionResponse struct {
	SessionID string       `json:"session_id"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type SignInResult struct {
	AccessToken string          `json:"access_token"`
	Session     SessionResponse `json:"session"`
}

const (
	EventSignedIn  = "signed_in"
	EventSignedOut = "signed_out"
)

// SessionEvent is published on the user's session channel.
type SessionEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	At        time.Time `json:"at"`
}
