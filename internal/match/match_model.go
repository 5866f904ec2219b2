package match

import (
	"time"

	"github.com/ParthVaghani-7/crickbase/internal/team"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchLive      MatchStatus = "live"
	MatchCompleted MatchStatus = "completed"
	MatchAbandoned MatchStatus = "abandoned"
)

// Match is a single fixture between two registered teams of a tournament.
type Match struct {
	gorm.Model
	TournamentID uint        `gorm:"not null;index" json:"tournament_id"`
	HomeTeamID   uint        `gorm:"not null" json:"home_team_id"`
	AwayTeamID   uint        `gorm:"not null" json:"away_team_id"`
	HomeTeam     *team.Team  `gorm:"foreignKey:HomeTeamID" json:"home_team,omitempty"`
	AwayTeam     *team.Team  `gorm:"foreignKey:AwayTeamID" json:"away_team,omitempty"`
	ScheduledAt  time.Time   `gorm:"not null;index" json:"scheduled_at"`
	Venue        string      `json:"venue,omitempty"`
	Round        string      `json:"round,omitempty"` // e.g. "League", "Semi Final"
	Status       MatchStatus `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	HomeScore    string      `json:"home_score,omitempty"` // free-form, e.g. "156/7 (20)"
	AwayScore    string      `json:"away_score,omitempty"`
	Result       string      `json:"result,omitempty"` // e.g. "Home won by 12 runs"
}

type CreateMatchRequest struct {
	HomeTeamID  uint      `json:"home_team_id" binding:"required"`
	AwayTeamID  uint      `json:"away_team_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Venue       string    `json:"venue,omitempty"`
	Round       string    `json:"round,omitempty"`
}

type UpdateMatchRequest struct {
	ScheduledAt *time.Time   `json:"scheduled_at,omitempty"`
	Venue       *string      `json:"venue,omitempty"`
	Round       *string      `json:"round,omitempty"`
	Status      *MatchStatus `json:"status,omitempty" binding:"omitempty,oneof=scheduled live completed abandoned"`
	HomeScore   *string      `json:"home_score,omitempty"`
	AwayScore   *string      `json:"away_score,omitempty"`
	Result      *string      `json:"result,omitempty"`
}
