package match

import (
	"errors"

	"github.com/ParthVaghani-7/crickbase/internal/team"
	"gorm.io/gorm"
)

var (
	ErrSameTeam       = errors.New("a match needs two different teams")
	ErrTeamNotInEvent = errors.New("both teams must belong to the match's tournament")
)

// MatchRepository defines fixture data operations.
type MatchRepository interface {
	CreateMatch(tournamentID uint, req *CreateMatchRequest) (*Match, error)
	GetMatchByID(tournamentID, matchID uint) (*Match, error)
	GetMatchesByTournament(tournamentID uint, status string, page, limit int) ([]Match, int64, error)
	UpdateMatch(tournamentID, matchID uint, req *UpdateMatchRequest) (*Match, error)
	DeleteMatch(tournamentID, matchID uint) error
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CreateMatch(tournamentID uint, req *CreateMatchRequest) (*Match, error) {
	if req.HomeTeamID == req.AwayTeamID {
		return nil, ErrSameTeam
	}

	var created *Match
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&team.Team{}).
			Where("tournament_id = ? AND id IN ?", tournamentID, []uint{req.HomeTeamID, req.AwayTeamID}).
			Count(&count).Error; err != nil {
			return err
		}
		if count != 2 {
			return ErrTeamNotInEvent
		}

		m := &Match{
			TournamentID: tournamentID,
			HomeTeamID:   req.HomeTeamID,
			AwayTeamID:   req.AwayTeamID,
			ScheduledAt:  req.ScheduledAt,
			Venue:        req.Venue,
			Round:        req.Round,
			Status:       MatchScheduled,
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetMatchByID(tournamentID, created.ID)
}

func (r *matchRepository) GetMatchByID(tournamentID, matchID uint) (*Match, error) {
	var m Match
	if err := r.db.Preload("HomeTeam").Preload("AwayTeam").
		Where("tournament_id = ?", tournamentID).First(&m, matchID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) GetMatchesByTournament(tournamentID uint, status string, page, limit int) ([]Match, int64, error) {
	var matches []Match
	var total int64
	query := r.db.Model(&Match{}).Where("tournament_id = ?", tournamentID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Preload("HomeTeam").Preload("AwayTeam").
		Offset(offset).Limit(limit).Order("scheduled_at asc").Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *matchRepository) UpdateMatch(tournamentID, matchID uint, req *UpdateMatchRequest) (*Match, error) {
	var m Match
	if err := r.db.Where("tournament_id = ?", tournamentID).First(&m, matchID).Error; err != nil {
		return nil, err
	}

	if req.ScheduledAt != nil {
		m.ScheduledAt = *req.ScheduledAt
	}
	if req.Venue != nil {
		m.Venue = *req.Venue
	}
	if req.Round != nil {
		m.Round = *req.Round
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
	if req.HomeScore != nil {
		m.HomeScore = *req.HomeScore
	}
	if req.AwayScore != nil {
		m.AwayScore = *req.AwayScore
	}
	if req.Result != nil {
		m.Result = *req.Result
	}

	if err := r.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return r.GetMatchByID(tournamentID, m.ID)
}

func (r *matchRepository) DeleteMatch(tournamentID, matchID uint) error {
	res := r.db.Where("tournament_id = ?", tournamentID).Delete(&Match{}, matchID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
