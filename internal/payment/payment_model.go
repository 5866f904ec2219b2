package payment

import "gorm.io/gorm"

type MethodType string

const (
	MethodUPI   MethodType = "upi"
	MethodBank  MethodType = "bank_transfer"
	MethodQR    MethodType = "qr_code"
	MethodOther MethodType = "other"
)

// PaymentMethod is an admin-configured way to pay a tournament's entry fee.
// Registrants see only enabled methods; settlement happens entirely off-site.
type PaymentMethod struct {
	gorm.Model
	TournamentID  uint       `gorm:"not null;index" json:"tournament_id"`
	Label         string     `gorm:"not null" json:"label"`
	Type          MethodType `gorm:"type:varchar(20);not null" json:"type"`
	UPIID         string     `json:"upi_id,omitempty"`
	AccountName   string     `json:"account_name,omitempty"`
	AccountNumber string     `json:"account_number,omitempty"`
	IFSCCode      string     `json:"ifsc_code,omitempty"`
	QRImage       string     `json:"qr_image,omitempty"` // path under the public uploads dir
	Instructions  string     `gorm:"type:text" json:"instructions,omitempty"`
	Enabled       bool       `gorm:"default:true" json:"enabled"`
	SortOrder     int        `gorm:"default:0" json:"sort_order"`
}

type CreatePaymentMethodRequest struct {
	Label         string     `json:"label" binding:"required,min=2,max=100"`
	Type          MethodType `json:"type" binding:"required,oneof=upi bank_transfer qr_code other"`
	UPIID         string     `json:"upi_id,omitempty"`
	AccountName   string     `json:"account_name,omitempty"`
	AccountNumber string     `json:"account_number,omitempty"`
	IFSCCode      string     `json:"ifsc_code,omitempty"`
	QRImage       string     `json:"qr_image,omitempty"`
	Instructions  string     `json:"instructions,omitempty"`
	SortOrder     int        `json:"sort_order,omitempty"`
}

type UpdatePaymentMethodRequest struct {
	Label         *string     `json:"label,omitempty" binding:"omitempty,min=2,max=100"`
	Type          *MethodType `json:"type,omitempty" binding:"omitempty,oneof=upi bank_transfer qr_code other"`
	UPIID         *string     `json:"upi_id,omitempty"`
	AccountName   *string     `json:"account_name,omitempty"`
	AccountNumber *string     `json:"account_number,omitempty"`
	IFSCCode      *string     `json:"ifsc_code,omitempty"`
	QRImage       *string     `json:"qr_image,omitempty"`
	Instructions  *string     `json:"instructions,omitempty"`
	Enabled       *bool       `json:"enabled,omitempty"`
	SortOrder     *int        `json:"sort_order,omitempty"`
}
