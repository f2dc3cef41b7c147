// Package dto defines data transfer objects for the auth HTTP API.
package dto

// RegisterReq represents the request body for /api/v1/auth/register.
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserOut is the public view of a created user.
type UserOut struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}
