package auth

type SignupRequest struct {
	Username string `json:"username" example:"dungeonmaster"`
	Password string `json:"password" example:"password123"`
	Email    string `json:"email" binding:"omitempty,email,max=254" example:"dm@example.com"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"dungeonmaster"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AccessTokenResponse struct {
	Access string `json:"access"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// SignupErrorResponse keeps the signup endpoint's {"error": ...} body.
type SignupErrorResponse struct {
	Error string `json:"error"`
}
