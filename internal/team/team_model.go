package team

import (
	"github.com/ParthVaghani-7/crickbase/internal/tournament"
	"gorm.io/gorm"
)

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "PENDING"
	RegistrationApproved RegistrationStatus = "APPROVED"
	RegistrationRejected RegistrationStatus = "REJECTED"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// Team is a classic (non-auction) tournament entry with a fixed roster,
// created as one unit from the public registration form.
type Team struct {
	gorm.Model
	TournamentID uint                  `json:"tournament_id" gorm:"index;not null"`
	Tournament   tournament.Tournament `json:"-" gorm:"foreignKey:TournamentID"`
	Name         string                `json:"name" gorm:"index;not null"`
	CaptainName  string                `json:"captain_name" gorm:"not null"`
	ContactEmail string                `json:"contact_email" gorm:"not null"`
	ContactPhone string                `json:"contact_phone"`
	City         string                `json:"city"`
	Logo         string                `json:"logo"`
	Players      []Player              `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

// Player is a roster member of a classic team.
type Player struct {
	gorm.Model
	TournamentID uint   `json:"tournament_id" gorm:"index;not null"`
	TeamID       uint   `json:"team_id" gorm:"index;not null"`
	Name         string `json:"name" gorm:"not null"`
	Role         string `json:"role" gorm:"default:'batsman'"`
	JerseyNumber int    `json:"jersey_number"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// Registration tracks the intake record for a team: approval workflow and
// entry-fee payment status.
type Registration struct {
	gorm.Model
	TournamentID  uint               `json:"tournament_id" gorm:"index;not null"`
	TeamID        uint               `json:"team_id" gorm:"uniqueIndex;not null"`
	Team          Team               `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Status        RegistrationStatus `json:"status" gorm:"index;default:'PENDING'"`
	PaymentStatus PaymentStatus      `json:"payment_status" gorm:"default:'PENDING'"`
	PaymentRef    string             `json:"payment_ref,omitempty"`
	Notes         string             `json:"notes,omitempty" gorm:"type:text"`
}

// --- DTOs ---

type PlayerInput struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Role         string `json:"role,omitempty" binding:"omitempty,oneof=batsman bowler all-rounder wicket-keeper"`
	JerseyNumber int    `json:"jersey_number,omitempty" binding:"omitempty,min=0,max=999"`
	Email        string `json:"email,omitempty" binding:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
}

type RegisterTeamRequest struct {
	TeamName     string        `json:"team_name" binding:"required,min=2,max=100"`
	CaptainName  string        `json:"captain_name" binding:"required,min=2,max=100"`
	ContactEmail string        `json:"contact_email" binding:"required,email"`
	ContactPhone string        `json:"contact_phone,omitempty"`
	City         string        `json:"city,omitempty"`
	Players      []PlayerInput `json:"players" binding:"required,min=1,max=25,dive"`
	PaymentRef   string        `json:"payment_ref,omitempty"`
}

type ReviewRegistrationRequest struct {
	Reason string `json:"reason,omitempty" binding:"max=1000"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus PaymentStatus `json:"payment_status" binding:"required,oneof=PENDING PAID"`
	PaymentRef    string        `json:"payment_ref,omitempty"`
}
