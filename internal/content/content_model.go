package content

import "gorm.io/gorm"

// Section is one block of the public landing page (hero, about, contact...).
// Admins edit these through the CMS endpoints; the frontend renders visible
// sections in sort order.
type Section struct {
	gorm.Model
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	Body      string `gorm:"type:text" json:"body,omitempty"`
	Image     string `json:"image,omitempty"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	Visible   bool   `gorm:"default:true" json:"visible"`
}

// Person is a committee member or coach featured on the landing page.
type Person struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Title     string `json:"title,omitempty"` // e.g. "Club President"
	Bio       string `gorm:"type:text" json:"bio,omitempty"`
	Photo     string `json:"photo,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	Visible   bool   `gorm:"default:true" json:"visible"`
}

// SiteImage tracks a file stored under the public uploads directory so the
// admin UI can list and reuse uploaded assets.
type SiteImage struct {
	gorm.Model
	FileName     string `gorm:"not null" json:"file_name"`
	OriginalName string `json:"original_name,omitempty"`
	Path         string `gorm:"not null" json:"path"` // URL path served from /public
	ContentType  string `json:"content_type,omitempty"`
	SizeBytes    int64  `json:"size_bytes"`
	UploadedBy   uint   `json:"uploaded_by,omitempty"`
}

type UpsertSectionRequest struct {
	Slug      string `json:"slug" binding:"required,min=2,max=60"`
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	Body      string `json:"body,omitempty"`
	Image     string `json:"image,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
	Visible   *bool  `json:"visible,omitempty"`
}

type UpsertPersonRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Title     string `json:"title,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Photo     string `json:"photo,omitempty"`
	Email     string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
	Visible   *bool  `json:"visible,omitempty"`
}
