package auth

import (
	"errors"
	"log"

	"github.com/ParthVaghani-7/crickbase/internal/admin"
	"github.com/ParthVaghani-7/crickbase/utils"
	"gorm.io/gorm"
)

// AuthRepository covers the credential and session operations the login flow
// needs. Account management lives in the admin package.
type AuthRepository interface {
	GetAdminByUsername(username string) (*admin.Admin, error)
	GetAdminByID(id uint) (*admin.Admin, error)
	UpdateAdmin(a *admin.Admin) error

	CreateSession(s *admin.Session) error
	GetSessionByToken(token string) (*admin.Session, error)
	RevokeSession(token string) error
}

type authRepository struct {
	admins admin.AdminRepository
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{admins: admin.NewAdminRepository(db)}
}

func (r *authRepository) GetAdminByUsername(username string) (*admin.Admin, error) {
	return r.admins.GetAdminByUsername(username)
}

func (r *authRepository) GetAdminByID(id uint) (*admin.Admin, error) {
	return r.admins.GetAdminByID(id)
}

func (r *authRepository) UpdateAdmin(a *admin.Admin) error {
	return r.admins.UpdateAdmin(a)
}

func (r *authRepository) CreateSession(s *admin.Session) error {
	return r.admins.CreateSession(s)
}

func (r *authRepository) GetSessionByToken(token string) (*admin.Session, error) {
	return r.admins.GetSessionByToken(token)
}

func (r *authRepository) RevokeSession(token string) error {
	return r.admins.RevokeSession(token)
}

// EnsureSuperadmin creates the bootstrap SUPERADMIN account on first run if
// no superadmin exists and a bootstrap password is configured.
func EnsureSuperadmin(db *gorm.DB, username, email, password string) error {
	var count int64
	if err := db.Model(&admin.Admin{}).Where("role = ?", admin.RoleSuperadmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if password == "" {
		return errors.New("no superadmin exists and SUPERADMIN_PASSWORD is not set")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	sa := &admin.Admin{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     admin.RoleSuperadmin,
		Active:   true,
	}
	if err := db.Create(sa).Error; err != nil {
		return err
	}
	log.Printf("Bootstrapped superadmin account %q", username)
	return nil
}
