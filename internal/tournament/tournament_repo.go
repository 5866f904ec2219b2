package tournament

import (
	"strings"

	"gorm.io/gorm"
)

// TournamentRepository defines the interface for tournament data operations
type TournamentRepository interface {
	CreateTournament(t *Tournament) error
	GetTournamentByID(id uint) (*Tournament, error)
	GetTournamentBySlug(slug string) (*Tournament, error)
	GetTournamentByName(name string) (*Tournament, error)
	GetAllTournaments(page, limit int, filters map[string]interface{}) ([]Tournament, int64, error)
	UpdateTournament(t *Tournament) error
	DeleteTournament(id uint) error
	CloseExpiredRegistrations() (int64, error)
}

type tournamentRepository struct {
	db *gorm.DB
}

func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) CreateTournament(t *Tournament) error {
	return r.db.Create(t).Error
}

func (r *tournamentRepository) GetTournamentByID(id uint) (*Tournament, error) {
	var t Tournament
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tournamentRepository) GetTournamentBySlug(slug string) (*Tournament, error) {
	var t Tournament
	if err := r.db.Where("slug = ?", slug).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tournamentRepository) GetTournamentByName(name string) (*Tournament, error) {
	var t Tournament
	if err := r.db.Where("LOWER(TRIM(name)) = ?", strings.ToLower(strings.TrimSpace(name))).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tournamentRepository) GetAllTournaments(page, limit int, filters map[string]interface{}) ([]Tournament, int64, error) {
	var tournaments []Tournament
	var total int64

	query := r.db.Model(&Tournament{})

	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if auction, ok := filters["is_auction_based"]; ok {
		query = query.Where("is_auction_based = ?", auction)
	}
	if name, ok := filters["name"]; ok {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name.(string))+"%")
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&tournaments).Error; err != nil {
		return nil, 0, err
	}
	return tournaments, total, nil
}

func (r *tournamentRepository) UpdateTournament(t *Tournament) error {
	return r.db.Save(t).Error
}

// DeleteTournament removes a tournament and everything owned by it in one
// transaction. Dependents are removed by tournament_id so the cascade does
// not depend on database-level foreign keys.
func (r *tournamentRepository) DeleteTournament(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		dependents := []string{
			"matches",
			"players",
			"teams",
			"registrations",
			"auction_players",
			"auction_teams",
			"payment_methods",
			"email_logs",
		}
		for _, table := range dependents {
			if err := tx.Exec("DELETE FROM "+table+" WHERE tournament_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&Tournament{}, id).Error
	})
}

// CloseExpiredRegistrations flips registration_open off for tournaments whose
// deadline has passed. Called by the background scheduler.
func (r *tournamentRepository) CloseExpiredRegistrations() (int64, error) {
	res := r.db.Model(&Tournament{}).
		Where("registration_open = ? AND registration_deadline IS NOT NULL AND registration_deadline < CURRENT_TIMESTAMP", true).
		Update("registration_open", false)
	return res.RowsAffected, res.Error
}
