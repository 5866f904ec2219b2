package content

import (
	"strings"

	"gorm.io/gorm"
)

// ContentRepository defines data operations for the landing-page CMS.
type ContentRepository interface {
	GetSections(visibleOnly bool) ([]Section, error)
	GetSectionBySlug(slug string) (*Section, error)
	UpsertSection(req *UpsertSectionRequest) (*Section, error)
	DeleteSection(sectionID uint) error

	GetPeople(visibleOnly bool) ([]Person, error)
	CreatePerson(req *UpsertPersonRequest) (*Person, error)
	UpdatePerson(personID uint, req *UpsertPersonRequest) (*Person, error)
	DeletePerson(personID uint) error

	RecordImage(image *SiteImage) error
	GetImages(page, limit int) ([]SiteImage, int64, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) GetSections(visibleOnly bool) ([]Section, error) {
	var sections []Section
	query := r.db.Order("sort_order asc, id asc")
	if visibleOnly {
		query = query.Where("visible = ?", true)
	}
	if err := query.Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *contentRepository) GetSectionBySlug(slug string) (*Section, error) {
	var section Section
	if err := r.db.Where("slug = ?", strings.ToLower(strings.TrimSpace(slug))).First(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// UpsertSection creates the section for a new slug and updates it otherwise.
// Slugs are stable identifiers the frontend keys off, so they are normalized.
func (r *contentRepository) UpsertSection(req *UpsertSectionRequest) (*Section, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var section Section
	err := r.db.Where("slug = ?", slug).First(&section).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	section.Slug = slug
	section.Title = req.Title
	section.Subtitle = req.Subtitle
	section.Body = req.Body
	section.Image = req.Image
	section.SortOrder = req.SortOrder
	if req.Visible != nil {
		section.Visible = *req.Visible
	} else if section.ID == 0 {
		section.Visible = true
	}

	if err := r.db.Save(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *contentRepository) DeleteSection(sectionID uint) error {
	res := r.db.Delete(&Section{}, sectionID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contentRepository) GetPeople(visibleOnly bool) ([]Person, error) {
	var people []Person
	query := r.db.Order("sort_order asc, id asc")
	if visibleOnly {
		query = query.Where("visible = ?", true)
	}
	if err := query.Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (r *contentRepository) CreatePerson(req *UpsertPersonRequest) (*Person, error) {
	person := &Person{
		Name:      req.Name,
		Title:     req.Title,
		Bio:       req.Bio,
		Photo:     req.Photo,
		Email:     req.Email,
		Phone:     req.Phone,
		SortOrder: req.SortOrder,
		Visible:   true,
	}
	if req.Visible != nil {
		person.Visible = *req.Visible
	}
	if err := r.db.Create(person).Error; err != nil {
		return nil, err
	}
	return person, nil
}

func (r *contentRepository) UpdatePerson(personID uint, req *UpsertPersonRequest) (*Person, error) {
	var person Person
	if err := r.db.First(&person, personID).Error; err != nil {
		return nil, err
	}

	person.Name = req.Name
	person.Title = req.Title
	person.Bio = req.Bio
	person.Photo = req.Photo
	person.Email = req.Email
	person.Phone = req.Phone
	person.SortOrder = req.SortOrder
	if req.Visible != nil {
		person.Visible = *req.Visible
	}

	if err := r.db.Save(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *contentRepository) DeletePerson(personID uint) error {
	res := r.db.Delete(&Person{}, personID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contentRepository) RecordImage(image *SiteImage) error {
	return r.db.Create(image).Error
}

func (r *contentRepository) GetImages(page, limit int) ([]SiteImage, int64, error) {
	var images []SiteImage
	var total int64
	r.db.Model(&SiteImage{}).Count(&total)
	offset := (page - 1) * limit
	if err := r.db.Offset(offset).Limit(limit).Order("created_at desc").Find(&images).Error; err != nil {
		return nil, 0, err
	}
	return images, total, nil
}
