package dto

// LoginReq represents the request body for /api/v1/auth/login.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenOut carries the issued access token. The same token is also set as an
// http-only cookie on the response.
type TokenOut struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
