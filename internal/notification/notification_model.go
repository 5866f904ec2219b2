package notification

import "gorm.io/gorm"

type DeliveryStatus string

const (
	StatusSent   DeliveryStatus = "SENT"
	StatusFailed DeliveryStatus = "FAILED"
)

// EmailLog records every delivery attempt. Mutations that trigger mail never
// fail because of it; this table is where the outcome lands instead.
type EmailLog struct {
	gorm.Model
	TournamentID *uint          `json:"tournament_id,omitempty" gorm:"index"`
	Recipient    string         `json:"recipient" gorm:"not null;index"`
	Subject      string         `json:"subject" gorm:"not null"`
	TemplateKey  string         `json:"template_key" gorm:"index"`
	Status       DeliveryStatus `json:"status" gorm:"index;not null"`
	ErrorMessage string         `json:"error_message,omitempty" gorm:"type:text"`
}
