package admin

import (
	"time"

	"gorm.io/gorm"
)

// Admin roles. SUPERADMIN additionally manages admin accounts.
const (
	RoleAdmin      = "ADMIN"
	RoleSuperadmin = "SUPERADMIN"
)

// Admin is a back-office account. Public visitors never get one; team owners
// use tournament-scoped access tokens instead.
type Admin struct {
	gorm.Model
	Username    string     `json:"username" gorm:"uniqueIndex;not null"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null"`
	Password    string     `json:"-" gorm:"not null"`
	Role        string     `json:"role" gorm:"not null;default:'ADMIN'"`
	Active      bool       `json:"active" gorm:"default:true"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// Session is a server-side login record backing the auth-token cookie. A JWT
// is only honoured while its session row is live.
type Session struct {
	gorm.Model
	AdminID   uint      `json:"admin_id" gorm:"index;not null"`
	Admin     Admin     `json:"-" gorm:"foreignKey:AdminID"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	Revoked   bool      `json:"revoked" gorm:"default:false"`
	UserAgent string    `json:"user_agent,omitempty"`
	IP        string    `json:"ip,omitempty"`
}

// --- DTOs ---

type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3,max=40"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN SUPERADMIN"`
}

type UpdateAdminRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8,max=72"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=ADMIN SUPERADMIN"`
	Active   *bool   `json:"active,omitempty"`
}

type AdminResponse struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Active      bool       `json:"active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FilterAdminRecord(a *Admin) AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		Role:        a.Role,
		Active:      a.Active,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
	}
}
