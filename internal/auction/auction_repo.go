package auction

import (
	"errors"
	"strings"
	"time"

	"github.com/ParthVaghani-7/crickbase/internal/tournament"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotAuctionTournament = errors.New("tournament is not auction based")
	ErrRegistrationClosed   = errors.New("registration window is closed for this tournament")
	ErrCapacityReached      = errors.New("tournament has reached its maximum number of auction teams")
	ErrDuplicateTeamName    = errors.New("a team with this name is already registered in this tournament")
	ErrDuplicateOwnerEmail  = errors.New("an owner with this email is already registered in this tournament")

	ErrTeamAndPriceRequired = errors.New("MARK_SOLD requires auction_team_id and a non-negative sold_price")
	ErrInsufficientBudget   = errors.New("sold price exceeds the team's remaining budget")
	ErrSquadFull            = errors.New("team has reached its maximum squad size")
	ErrTeamNotInTournament  = errors.New("auction team does not belong to this tournament")
)

// AuctionRepository defines data operations for the auction subsystem.
type AuctionRepository interface {
	RegisterOwner(tournamentID uint, req *RegisterOwnerRequest) (*AuctionTeam, error)
	RegisterPlayer(tournamentID uint, req *RegisterPlayerRequest) (*AuctionPlayer, error)

	TransitionPlayer(tournamentID, playerID uint, req *TransitionRequest) (*AuctionPlayer, error)

	GetPlayerByID(tournamentID, playerID uint) (*AuctionPlayer, error)
	GetPlayersByTournament(tournamentID uint, status string, page, limit int) ([]AuctionPlayer, int64, error)
	GetTeamByID(tournamentID, teamID uint) (*AuctionTeam, error)
	GetTeamsByTournament(tournamentID uint, page, limit int) ([]AuctionTeam, int64, error)
	VerifyTeam(tournamentID, teamID uint, verified bool) (*AuctionTeam, error)

	GetDashboardByAccessToken(accessToken string) (*OwnerDashboard, error)
	TeamSpend(teamID uint) (int64, error)
}

type auctionRepository struct {
	db *gorm.DB
}

func NewAuctionRepository(db *gorm.DB) AuctionRepository {
	return &auctionRepository{db: db}
}

// RegisterOwner creates an auction team inside one transaction, granting it
// the tournament's per-team budget and a fresh portal access token.
func (r *auctionRepository) RegisterOwner(tournamentID uint, req *RegisterOwnerRequest) (*AuctionTeam, error) {
	var created *AuctionTeam

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var t tournament.Tournament
		if err := tx.First(&t, tournamentID).Error; err != nil {
			return err
		}
		if !t.IsAuctionBased {
			return ErrNotAuctionTournament
		}
		if !t.RegistrationWindowOpen(time.Now()) {
			return ErrRegistrationClosed
		}

		if t.MaxTeams > 0 {
			var count int64
			if err := tx.Model(&AuctionTeam{}).Where("tournament_id = ?", tournamentID).Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(t.MaxTeams) {
				return ErrCapacityReached
			}
		}

		name := strings.ToLower(strings.TrimSpace(req.TeamName))
		email := strings.ToLower(strings.TrimSpace(req.OwnerEmail))

		// These counts catch retries and double submits, not two truly
		// simultaneous inserts; those surface in the verification queue.
		var dupes int64
		if err := tx.Model(&AuctionTeam{}).
			Where("tournament_id = ? AND LOWER(TRIM(team_name)) = ?", tournamentID, name).
			Count(&dupes).Error; err != nil {
			return err
		}
		if dupes > 0 {
			return ErrDuplicateTeamName
		}
		if err := tx.Model(&AuctionTeam{}).
			Where("tournament_id = ? AND LOWER(TRIM(owner_email)) = ?", tournamentID, email).
			Count(&dupes).Error; err != nil {
			return err
		}
		if dupes > 0 {
			return ErrDuplicateOwnerEmail
		}

		team := &AuctionTeam{
			TournamentID:    tournamentID,
			TeamName:        strings.TrimSpace(req.TeamName),
			OwnerName:       req.OwnerName,
			OwnerEmail:      email,
			OwnerPhone:      req.OwnerPhone,
			TotalBudget:     t.AuctionBudget,
			RemainingBudget: t.AuctionBudget,
			MaxSquadSize:    t.MaxSquadSize,
			AccessToken:     uuid.NewString(),
		}
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		created = team
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RegisterPlayer enlists a player into the auction pool in PENDING state.
func (r *auctionRepository) RegisterPlayer(tournamentID uint, req *RegisterPlayerRequest) (*AuctionPlayer, error) {
	var created *AuctionPlayer

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var t tournament.Tournament
		if err := tx.First(&t, tournamentID).Error; err != nil {
			return err
		}
		if !t.IsAuctionBased {
			return ErrNotAuctionTournament
		}
		if !t.RegistrationWindowOpen(time.Now()) {
			return ErrRegistrationClosed
		}

		role := req.Role
		if role == "" {
			role = "batsman"
		}
		player := &AuctionPlayer{
			TournamentID:  tournamentID,
			Name:          req.Name,
			Email:         strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:         req.Phone,
			Role:          role,
			BattingStyle:  req.BattingStyle,
			BowlingStyle:  req.BowlingStyle,
			AuctionStatus: StatusPending,
			BasePrice:     req.BasePrice,
		}
		if err := tx.Create(player).Error; err != nil {
			return err
		}
		created = player
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// TransitionPlayer applies one auction action to a player. The whole thing is
// a single transaction: state-machine check, budget credit for a team losing
// the player, conditional budget debit for a team gaining them, player row
// update. The debit is a single conditional UPDATE, so two concurrent sales
// can never push a team past its budget or squad cap; the final player write
// is guarded on the status the transaction read, so a concurrent transition
// on the same player rolls the loser back, debit included.
func (r *auctionRepository) TransitionPlayer(tournamentID, playerID uint, req *TransitionRequest) (*AuctionPlayer, error) {
	var result *AuctionPlayer

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var p AuctionPlayer
		if err := tx.Where("tournament_id = ?", tournamentID).First(&p, playerID).Error; err != nil {
			return err
		}
		prevStatus := p.AuctionStatus

		next, err := Next(p.AuctionStatus, req.Action)
		if err != nil {
			return err
		}

		if next == StatusSold {
			if req.AuctionTeamID == nil || req.SoldPrice == nil || *req.SoldPrice < 0 {
				return ErrTeamAndPriceRequired
			}
		}

		// Leaving SOLD refunds the buying team before anything else.
		if p.AuctionStatus == StatusSold && p.AuctionTeamID != nil && p.SoldPrice != nil {
			if err := r.creditTeam(tx, *p.AuctionTeamID, *p.SoldPrice); err != nil {
				return err
			}
		}

		switch next {
		case StatusSold:
			if err := r.debitTeam(tx, tournamentID, *req.AuctionTeamID, *req.SoldPrice); err != nil {
				return err
			}
			p.AuctionTeamID = req.AuctionTeamID
			p.SoldPrice = req.SoldPrice
		case StatusAvailable, StatusUnsold, StatusRejected, StatusApproved:
			// Every non-SOLD state carries no team and no price. UNSOLD clears
			// the sold price too, matching MARK_AVAILABLE.
			p.AuctionTeamID = nil
			p.SoldPrice = nil
		}
		p.AuctionStatus = next

		// Guard the write on the status we read. If another transaction moved
		// the player in the meantime, zero rows match and the rollback undoes
		// any credit or debit made above.
		res := tx.Model(&AuctionPlayer{}).
			Where("id = ? AND auction_status = ?", p.ID, prevStatus).
			Updates(map[string]interface{}{
				"auction_status":  p.AuctionStatus,
				"auction_team_id": p.AuctionTeamID,
				"sold_price":      p.SoldPrice,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		result = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// debitTeam atomically takes price from the team's remaining budget and a
// slot from its squad, failing if either would go negative.
func (r *auctionRepository) debitTeam(tx *gorm.DB, tournamentID, teamID uint, price int64) error {
	res := tx.Model(&AuctionTeam{}).
		Where("id = ? AND tournament_id = ? AND remaining_budget >= ? AND (max_squad_size = 0 OR squad_size < max_squad_size)",
			teamID, tournamentID, price).
		Updates(map[string]interface{}{
			"remaining_budget": gorm.Expr("remaining_budget - ?", price),
			"squad_size":       gorm.Expr("squad_size + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	// The guarded update matched nothing; find out why for a precise error.
	var team AuctionTeam
	if err := tx.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotInTournament
		}
		return err
	}
	if team.TournamentID != tournamentID {
		return ErrTeamNotInTournament
	}
	if team.MaxSquadSize > 0 && team.SquadSize >= team.MaxSquadSize {
		return ErrSquadFull
	}
	return ErrInsufficientBudget
}

func (r *auctionRepository) creditTeam(tx *gorm.DB, teamID uint, price int64) error {
	return tx.Model(&AuctionTeam{}).
		Where("id = ?", teamID).
		Updates(map[string]interface{}{
			"remaining_budget": gorm.Expr("remaining_budget + ?", price),
			"squad_size":       gorm.Expr("squad_size - 1"),
		}).Error
}

func (r *auctionRepository) GetPlayerByID(tournamentID, playerID uint) (*AuctionPlayer, error) {
	var p AuctionPlayer
	if err := r.db.Preload("AuctionTeam").Where("tournament_id = ?", tournamentID).First(&p, playerID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *auctionRepository) GetPlayersByTournament(tournamentID uint, status string, page, limit int) ([]AuctionPlayer, int64, error) {
	var players []AuctionPlayer
	var total int64
	query := r.db.Model(&AuctionPlayer{}).Where("tournament_id = ?", tournamentID)
	if status != "" {
		query = query.Where("auction_status = ?", status)
	}
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Preload("AuctionTeam").Offset(offset).Limit(limit).Order("created_at asc").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *auctionRepository) GetTeamByID(tournamentID, teamID uint) (*AuctionTeam, error) {
	var team AuctionTeam
	if err := r.db.Where("tournament_id = ?", tournamentID).First(&team, teamID).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *auctionRepository) GetTeamsByTournament(tournamentID uint, page, limit int) ([]AuctionTeam, int64, error) {
	var teams []AuctionTeam
	var total int64
	query := r.db.Model(&AuctionTeam{}).Where("tournament_id = ?", tournamentID)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at asc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *auctionRepository) VerifyTeam(tournamentID, teamID uint, verified bool) (*AuctionTeam, error) {
	team, err := r.GetTeamByID(tournamentID, teamID)
	if err != nil {
		return nil, err
	}
	team.Verified = verified
	if err := r.db.Save(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

// GetDashboardByAccessToken resolves an owner-portal token into the team's
// roster and budget stats. Spent is aggregated from sold players rather than
// read off the stored column, so the two are cross-checkable.
func (r *auctionRepository) GetDashboardByAccessToken(accessToken string) (*OwnerDashboard, error) {
	var team AuctionTeam
	if err := r.db.Where("access_token = ?", accessToken).First(&team).Error; err != nil {
		return nil, err
	}

	var players []AuctionPlayer
	if err := r.db.Where("auction_team_id = ? AND auction_status = ?", team.ID, StatusSold).
		Order("sold_price desc").Find(&players).Error; err != nil {
		return nil, err
	}

	spent, err := r.TeamSpend(team.ID)
	if err != nil {
		return nil, err
	}

	dashboard := &OwnerDashboard{
		Team:      team,
		Players:   players,
		Spent:     spent,
		Remaining: team.RemainingBudget,
	}
	if team.MaxSquadSize > 0 {
		slots := team.MaxSquadSize - team.SquadSize
		dashboard.SlotsRemaining = &slots
	}
	return dashboard, nil
}

// TeamSpend sums sold prices over the team's SOLD players.
func (r *auctionRepository) TeamSpend(teamID uint) (int64, error) {
	var spent int64
	err := r.db.Model(&AuctionPlayer{}).
		Where("auction_team_id = ? AND auction_status = ?", teamID, StatusSold).
		Select("COALESCE(SUM(sold_price), 0)").
		Scan(&spent).Error
	return spent, err
}
