package notification

import (
	"log"

	"gorm.io/gorm"
)

// Service renders a keyed template, attempts delivery and records the outcome
// in email_logs. Delivery failures are logged, never propagated.
type Service struct {
	db     *gorm.DB
	mailer Mailer
}

func NewService(db *gorm.DB, mailer Mailer) *Service {
	return &Service{db: db, mailer: mailer}
}

// Dispatch sends one templated email synchronously and returns whether it was
// delivered. The EmailLog row is written either way.
func (s *Service) Dispatch(tournamentID *uint, to, templateKey string, vars map[string]interface{}) bool {
	entry := EmailLog{
		TournamentID: tournamentID,
		Recipient:    to,
		TemplateKey:  templateKey,
	}

	subject, html, text, err := Render(templateKey, vars)
	if err != nil {
		entry.Status = StatusFailed
		entry.ErrorMessage = err.Error()
		s.persist(&entry)
		log.Printf("notification: render %s for %s failed: %v", templateKey, to, err)
		return false
	}
	entry.Subject = subject

	if err := s.mailer.Send(to, subject, html, text); err != nil {
		entry.Status = StatusFailed
		entry.ErrorMessage = err.Error()
		s.persist(&entry)
		log.Printf("notification: send %s to %s failed: %v", templateKey, to, err)
		return false
	}

	entry.Status = StatusSent
	s.persist(&entry)
	return true
}

// DispatchAsync fires Dispatch in a goroutine. Used by mutations where mail
// is a best-effort side effect.
func (s *Service) DispatchAsync(tournamentID *uint, to, templateKey string, vars map[string]interface{}) {
	go s.Dispatch(tournamentID, to, templateKey, vars)
}

func (s *Service) persist(entry *EmailLog) {
	if err := s.db.Create(entry).Error; err != nil {
		log.Printf("notification: failed to persist email log for %s: %v", entry.Recipient, err)
	}
}
