package team

import (
	"errors"
	"strings"
	"time"

	"github.com/ParthVaghani-7/crickbase/internal/tournament"
	"gorm.io/gorm"
)

// Registration intake failure modes. The controller maps these onto HTTP
// statuses (403 window, 409 capacity/duplicate).
var (
	ErrRegistrationClosed = errors.New("registration window is closed for this tournament")
	ErrCapacityReached    = errors.New("tournament has reached its maximum number of teams")
	ErrDuplicateTeamName  = errors.New("a team with this name is already registered in this tournament")
)

// TeamRepository defines the interface for team and registration data operations
type TeamRepository interface {
	RegisterTeam(tournamentID uint, req *RegisterTeamRequest) (*Team, *Registration, error)
	GetTeamByID(id uint) (*Team, error)
	GetTeamsByTournament(tournamentID uint, page, limit int) ([]Team, int64, error)
	DeleteTeam(id uint) error

	GetRegistrationByID(id uint) (*Registration, error)
	GetRegistrationsByTournament(tournamentID uint, status string, page, limit int) ([]Registration, int64, error)
	UpdateRegistration(reg *Registration) error
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// RegisterTeam creates the team, its players and the registration record in
// one transaction. Window, capacity and duplicate checks run inside the
// transaction; they catch retries and double submits, not two truly
// simultaneous inserts under read committed. Duplicates that slip through a
// race are surfaced to admins in the registration review queue.
func (r *teamRepository) RegisterTeam(tournamentID uint, req *RegisterTeamRequest) (*Team, *Registration, error) {
	var createdTeam *Team
	var createdReg *Registration

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var t tournament.Tournament
		if err := tx.First(&t, tournamentID).Error; err != nil {
			return err
		}
		if !t.RegistrationWindowOpen(time.Now()) {
			return ErrRegistrationClosed
		}

		if t.MaxTeams > 0 {
			var count int64
			if err := tx.Model(&Team{}).Where("tournament_id = ?", tournamentID).Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(t.MaxTeams) {
				return ErrCapacityReached
			}
		}

		// Duplicate team name is scoped per tournament, case-insensitive and trimmed.
		normalized := strings.ToLower(strings.TrimSpace(req.TeamName))
		var dupes int64
		if err := tx.Model(&Team{}).
			Where("tournament_id = ? AND LOWER(TRIM(name)) = ?", tournamentID, normalized).
			Count(&dupes).Error; err != nil {
			return err
		}
		if dupes > 0 {
			return ErrDuplicateTeamName
		}

		team := &Team{
			TournamentID: tournamentID,
			Name:         strings.TrimSpace(req.TeamName),
			CaptainName:  req.CaptainName,
			ContactEmail: strings.ToLower(strings.TrimSpace(req.ContactEmail)),
			ContactPhone: req.ContactPhone,
			City:         req.City,
		}
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		players := make([]Player, 0, len(req.Players))
		for _, p := range req.Players {
			role := p.Role
			if role == "" {
				role = "batsman"
			}
			players = append(players, Player{
				TournamentID: tournamentID,
				TeamID:       team.ID,
				Name:         p.Name,
				Role:         role,
				JerseyNumber: p.JerseyNumber,
				Email:        strings.ToLower(strings.TrimSpace(p.Email)),
				Phone:        p.Phone,
			})
		}
		if err := tx.Create(&players).Error; err != nil {
			return err
		}
		team.Players = players

		reg := &Registration{
			TournamentID: tournamentID,
			TeamID:       team.ID,
			Status:       RegistrationPending,
			PaymentStatus: func() PaymentStatus {
				if req.PaymentRef != "" {
					return PaymentPaid
				}
				return PaymentPending
			}(),
			PaymentRef: req.PaymentRef,
		}
		if err := tx.Create(reg).Error; err != nil {
			return err
		}

		createdTeam = team
		createdReg = reg
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return createdTeam, createdReg, nil
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var t Team
	if err := r.db.Preload("Players").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetTeamsByTournament(tournamentID uint, page, limit int) ([]Team, int64, error) {
	var teams []Team
	var total int64
	query := r.db.Model(&Team{}).Where("tournament_id = ?", tournamentID)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Preload("Players").Offset(offset).Limit(limit).Order("created_at asc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) DeleteTeam(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&Player{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&Registration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Team{}, id).Error
	})
}

func (r *teamRepository) GetRegistrationByID(id uint) (*Registration, error) {
	var reg Registration
	if err := r.db.Preload("Team").Preload("Team.Players").First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *teamRepository) GetRegistrationsByTournament(tournamentID uint, status string, page, limit int) ([]Registration, int64, error) {
	var regs []Registration
	var total int64
	query := r.db.Model(&Registration{}).Where("tournament_id = ?", tournamentID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Preload("Team").Offset(offset).Limit(limit).Order("created_at desc").Find(&regs).Error; err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (r *teamRepository) UpdateRegistration(reg *Registration) error {
	return r.db.Save(reg).Error
}
