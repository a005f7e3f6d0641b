package auth

// LoginRequest is the login payload for the single admin account.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminUser is the principal embedded in login and verify responses.
type AdminUser struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    AdminUser `json:"user"`
}
