package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	html    string
	text    string
}

func (f *fakeMailer) Send(to, subject, htmlBody, textBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: htmlBody, text: textBody})
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&EmailLog{}))
	return db
}

func TestDispatchSendsAndLogs(t *testing.T) {
	db := setupTestDB(t)
	mailer := &fakeMailer{}
	service := NewService(db, mailer)

	tournamentID := uint(7)
	ok := service.Dispatch(&tournamentID, "captain@example.test", TemplateRegistrationApproved, map[string]interface{}{
		"Name":           "Cap Tain",
		"TeamName":       "Village Greens",
		"TournamentName": "Summer Cup",
	})
	assert.True(t, ok)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "captain@example.test", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].html, "Village Greens")
	assert.Contains(t, mailer.sent[0].text, "Village Greens")

	var entry EmailLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, StatusSent, entry.Status)
	assert.Equal(t, TemplateRegistrationApproved, entry.TemplateKey)
	require.NotNil(t, entry.TournamentID)
	assert.Equal(t, tournamentID, *entry.TournamentID)
	assert.NotEmpty(t, entry.Subject)
}

func TestDispatchFailureIsLoggedNotPropagated(t *testing.T) {
	db := setupTestDB(t)
	mailer := &fakeMailer{err: errors.New("smtp down")}
	service := NewService(db, mailer)

	ok := service.Dispatch(nil, "captain@example.test", TemplateRegistrationRejected, map[string]interface{}{
		"Name":           "Cap Tain",
		"TeamName":       "Village Greens",
		"TournamentName": "Summer Cup",
		"Reason":         "Incomplete squad",
	})
	assert.False(t, ok)

	var entry EmailLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, StatusFailed, entry.Status)
	assert.Equal(t, "smtp down", entry.ErrorMessage)
	assert.Nil(t, entry.TournamentID)
}

func TestDispatchUnknownTemplate(t *testing.T) {
	db := setupTestDB(t)
	mailer := &fakeMailer{}
	service := NewService(db, mailer)

	ok := service.Dispatch(nil, "captain@example.test", "no-such-template", nil)
	assert.False(t, ok)

	assert.Empty(t, mailer.sent)

	var entry EmailLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, StatusFailed, entry.Status)
}
