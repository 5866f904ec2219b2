package tournament

import (
	"time"

	"gorm.io/gorm"
)

type TournamentStatus string

const (
	StatusUpcoming  TournamentStatus = "upcoming"
	StatusOngoing   TournamentStatus = "ongoing"
	StatusCompleted TournamentStatus = "completed"
	StatusCancelled TournamentStatus = "cancelled"
)

// Tournament is the aggregate root: teams, players, matches, auction records
// and payment settings all hang off it and are removed with it.
type Tournament struct {
	gorm.Model
	Name        string           `json:"name" gorm:"not null"`
	Slug        string           `json:"slug" gorm:"uniqueIndex;not null"`
	Season      string           `json:"season"`
	Venue       string           `json:"venue"`
	Description string           `json:"description" gorm:"type:text"`
	Format      string           `json:"format" gorm:"default:'T20'"`
	Status      TournamentStatus `json:"status" gorm:"index;default:'upcoming'"`
	BannerImage string           `json:"banner_image"`

	StartDate            *time.Time `json:"start_date,omitempty"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	RegistrationOpen     bool       `json:"registration_open" gorm:"default:true"`
	MaxTeams             int        `json:"max_teams" gorm:"default:0"` // 0 = unlimited

	EntryFee         float64 `json:"entry_fee" gorm:"default:0"`
	EntryFeeCurrency string  `json:"entry_fee_currency" gorm:"default:'INR'"`

	IsAuctionBased bool  `json:"is_auction_based" gorm:"default:false"`
	AuctionBudget  int64 `json:"auction_budget" gorm:"default:0"` // points granted to each auction team
	MaxSquadSize   int   `json:"max_squad_size" gorm:"default:0"` // 0 = unlimited
}

// --- DTOs ---

type CreateTournamentRequest struct {
	Name                 string     `json:"name" binding:"required,min=3,max=200"`
	Season               string     `json:"season,omitempty"`
	Venue                string     `json:"venue,omitempty"`
	Description          string     `json:"description,omitempty" binding:"max=4000"`
	Format               string     `json:"format,omitempty" binding:"omitempty,oneof=T20 ODI Test tennis-ball box-cricket"`
	BannerImage          string     `json:"banner_image,omitempty"`
	StartDate            *time.Time `json:"start_date,omitempty"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	MaxTeams             int        `json:"max_teams,omitempty" binding:"omitempty,min=2"`
	EntryFee             float64    `json:"entry_fee,omitempty" binding:"omitempty,min=0"`
	EntryFeeCurrency     string     `json:"entry_fee_currency,omitempty"`
	IsAuctionBased       bool       `json:"is_auction_based,omitempty"`
	AuctionBudget        int64      `json:"auction_budget,omitempty" binding:"omitempty,min=0"`
	MaxSquadSize         int        `json:"max_squad_size,omitempty" binding:"omitempty,min=1"`
}

type UpdateTournamentRequest struct {
	Name                 *string           `json:"name,omitempty" binding:"omitempty,min=3,max=200"`
	Season               *string           `json:"season,omitempty"`
	Venue                *string           `json:"venue,omitempty"`
	Description          *string           `json:"description,omitempty" binding:"omitempty,max=4000"`
	Format               *string           `json:"format,omitempty" binding:"omitempty,oneof=T20 ODI Test tennis-ball box-cricket"`
	Status               *TournamentStatus `json:"status,omitempty" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
	BannerImage          *string           `json:"banner_image,omitempty"`
	StartDate            *time.Time        `json:"start_date,omitempty"`
	EndDate              *time.Time        `json:"end_date,omitempty"`
	RegistrationDeadline *time.Time        `json:"registration_deadline,omitempty"`
	RegistrationOpen     *bool             `json:"registration_open,omitempty"`
	MaxTeams             *int              `json:"max_teams,omitempty" binding:"omitempty,min=2"`
	EntryFee             *float64          `json:"entry_fee,omitempty" binding:"omitempty,min=0"`
	EntryFeeCurrency     *string           `json:"entry_fee_currency,omitempty"`
	AuctionBudget        *int64            `json:"auction_budget,omitempty" binding:"omitempty,min=0"`
	MaxSquadSize         *int              `json:"max_squad_size,omitempty" binding:"omitempty,min=1"`
}

// RegistrationWindowOpen reports whether new registrations are currently accepted.
func (t *Tournament) RegistrationWindowOpen(now time.Time) bool {
	if !t.RegistrationOpen {
		return false
	}
	if t.RegistrationDeadline != nil && now.After(*t.RegistrationDeadline) {
		return false
	}
	return true
}
