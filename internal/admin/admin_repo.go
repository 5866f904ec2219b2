package admin

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// AdminRepository defines data operations for admin accounts and sessions.
type AdminRepository interface {
	CreateAdmin(a *Admin) error
	GetAdminByID(id uint) (*Admin, error)
	GetAdminByUsername(username string) (*Admin, error)
	GetAdminByEmail(email string) (*Admin, error)
	GetAllAdmins(page, limit int) ([]Admin, int64, error)
	UpdateAdmin(a *Admin) error

	CreateSession(s *Session) error
	GetSessionByToken(token string) (*Session, error)
	RevokeSession(token string) error
	RevokeAllSessionsForAdmin(adminID uint) error
	PurgeExpiredSessions() (int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CreateAdmin(a *Admin) error {
	return r.db.Create(a).Error
}

func (r *adminRepository) GetAdminByID(id uint) (*Admin, error) {
	var a Admin
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetAdminByUsername(username string) (*Admin, error) {
	var a Admin
	if err := r.db.Where("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username))).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetAdminByEmail(email string) (*Admin, error) {
	var a Admin
	if err := r.db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetAllAdmins(page, limit int) ([]Admin, int64, error) {
	var admins []Admin
	var total int64
	query := r.db.Model(&Admin{})
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at asc").Find(&admins).Error; err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

func (r *adminRepository) UpdateAdmin(a *Admin) error {
	return r.db.Save(a).Error
}

func (r *adminRepository) CreateSession(s *Session) error {
	return r.db.Create(s).Error
}

func (r *adminRepository) GetSessionByToken(token string) (*Session, error) {
	var s Session
	if err := r.db.Preload("Admin").Where("token = ?", token).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *adminRepository) RevokeSession(token string) error {
	return r.db.Model(&Session{}).Where("token = ?", token).Update("revoked", true).Error
}

func (r *adminRepository) RevokeAllSessionsForAdmin(adminID uint) error {
	return r.db.Model(&Session{}).Where("admin_id = ?", adminID).Update("revoked", true).Error
}

func (r *adminRepository) PurgeExpiredSessions() (int64, error) {
	res := r.db.Unscoped().Where("expires_at < ? OR revoked = ?", time.Now(), true).Delete(&Session{})
	return res.RowsAffected, res.Error
}
