package dto

import "time"

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the authenticated employee and their access token.
type LoginResponse struct {
	Employee    EmployeeResponse `json:"employee"`
	AccessToken string           `json:"accessToken"`
	ExpiresAt   time.Time        `json:"expiresAt"`
}
