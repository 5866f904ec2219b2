package auction

import (
	"github.com/ParthVaghani-7/crickbase/internal/tournament"
	"gorm.io/gorm"
)

// PlayerStatus is the auction lifecycle state of a registered player.
type PlayerStatus string

const (
	StatusPending   PlayerStatus = "PENDING"   // registered, awaiting admin approval
	StatusApproved  PlayerStatus = "APPROVED"  // approved, not yet in the pool
	StatusAvailable PlayerStatus = "AVAILABLE" // in the auction pool
	StatusSold      PlayerStatus = "SOLD"      // assigned to a team at sold_price
	StatusUnsold    PlayerStatus = "UNSOLD"    // went through a round without a buyer
	StatusRejected  PlayerStatus = "REJECTED"
)

// Action is an admin transition request against a player.
type Action string

const (
	ActionApprove       Action = "APPROVE"
	ActionReject        Action = "REJECT"
	ActionMarkAvailable Action = "MARK_AVAILABLE"
	ActionMarkSold      Action = "MARK_SOLD"
	ActionMarkUnsold    Action = "MARK_UNSOLD"
)

// AuctionTeam is a team-owner entry in an auction tournament. remaining_budget
// and squad_size are the single source of truth for spend; both are mutated
// only through conditional atomic updates inside the transition transaction.
type AuctionTeam struct {
	gorm.Model
	TournamentID uint                  `json:"tournament_id" gorm:"index;not null"`
	Tournament   tournament.Tournament `json:"-" gorm:"foreignKey:TournamentID"`
	TeamName     string                `json:"team_name" gorm:"index;not null"`
	OwnerName    string                `json:"owner_name" gorm:"not null"`
	OwnerEmail   string                `json:"owner_email" gorm:"index;not null"`
	OwnerPhone   string                `json:"owner_phone"`
	Logo         string                `json:"logo"`

	TotalBudget     int64 `json:"total_budget" gorm:"not null"`
	RemainingBudget int64 `json:"remaining_budget" gorm:"not null"`
	SquadSize       int   `json:"squad_size" gorm:"default:0"`
	MaxSquadSize    int   `json:"max_squad_size" gorm:"default:0"` // 0 = unlimited

	Verified    bool   `json:"verified" gorm:"default:false"`
	AccessToken string `json:"-" gorm:"uniqueIndex;not null"` // opaque owner-portal token, shared via email only
}

// AuctionPlayer is a player registered into an auction tournament's pool.
type AuctionPlayer struct {
	gorm.Model
	TournamentID uint                  `json:"tournament_id" gorm:"index;not null"`
	Tournament   tournament.Tournament `json:"-" gorm:"foreignKey:TournamentID"`
	Name         string                `json:"name" gorm:"not null"`
	Email        string                `json:"email"`
	Phone        string                `json:"phone"`
	Role         string                `json:"role" gorm:"default:'batsman'"`
	BattingStyle string                `json:"batting_style,omitempty"`
	BowlingStyle string                `json:"bowling_style,omitempty"`
	Photo        string                `json:"photo"`

	AuctionStatus PlayerStatus `json:"auction_status" gorm:"index;default:'PENDING'"`
	BasePrice     int64        `json:"base_price" gorm:"default:0"`
	SoldPrice     *int64       `json:"sold_price,omitempty"`
	AuctionTeamID *uint        `json:"auction_team_id,omitempty" gorm:"index"`
	AuctionTeam   *AuctionTeam `json:"auction_team,omitempty" gorm:"foreignKey:AuctionTeamID"`
}

// --- DTOs ---

type RegisterOwnerRequest struct {
	TeamName   string `json:"team_name" binding:"required,min=2,max=100"`
	OwnerName  string `json:"owner_name" binding:"required,min=2,max=100"`
	OwnerEmail string `json:"owner_email" binding:"required,email"`
	OwnerPhone string `json:"owner_phone,omitempty"`
}

type RegisterPlayerRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role,omitempty" binding:"omitempty,oneof=batsman bowler all-rounder wicket-keeper"`
	BattingStyle string `json:"batting_style,omitempty"`
	BowlingStyle string `json:"bowling_style,omitempty"`
	BasePrice    int64  `json:"base_price,omitempty" binding:"omitempty,min=0"`
}

// TransitionRequest is the single payload for every auction action. Team and
// price are required for MARK_SOLD and ignored otherwise.
type TransitionRequest struct {
	Action        Action `json:"action" binding:"required,oneof=APPROVE REJECT MARK_AVAILABLE MARK_SOLD MARK_UNSOLD"`
	AuctionTeamID *uint  `json:"auction_team_id,omitempty"`
	SoldPrice     *int64 `json:"sold_price,omitempty" binding:"omitempty,min=0"`
}

// OwnerDashboard is the owner-portal view: roster plus budget arithmetic.
type OwnerDashboard struct {
	Team           AuctionTeam     `json:"team"`
	Players        []AuctionPlayer `json:"players"`
	Spent          int64           `json:"spent"`
	Remaining      int64           `json:"remaining"`
	SlotsRemaining *int            `json:"slots_remaining,omitempty"` // nil when squad size is unlimited
}
