package auth

import "github.com/ParthVaghani-7/crickbase/internal/admin"

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"clubadmin"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	Token string              `json:"token"`
	Admin admin.AdminResponse `json:"admin"`
}

type VerifyResponse struct {
	Admin admin.AdminResponse `json:"admin"`
}
