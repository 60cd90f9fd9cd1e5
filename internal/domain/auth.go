package domain

// Auth request/response shapes for /api/auth.

// RegisterRequest creates a new account. Role defaults to "founder".
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginRequest authenticates by username + password.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and register. The session itself
// travels in an HTTP-only cookie, not in the body.
type AuthResponse struct {
	User *User `json:"user"`
}
