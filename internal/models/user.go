package models

// AuthMode selects which identity the login modal authenticates.
type AuthMode string

// Auth modes.
const (
	AuthModeUser  AuthMode = "USER"
	AuthModeAdmin AuthMode = "ADMIN"
)

// UserProfile is a simulated visitor identity. It lives only in memory for
// the duration of the session.
type UserProfile struct {
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	AvatarColor string `json:"avatar_color"`
}
