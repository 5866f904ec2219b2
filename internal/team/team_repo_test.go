package team

import (
	"fmt"
	"testing"
	"time"

	"github.com/ParthVaghani-7/crickbase/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory DB")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&tournament.Tournament{}, &Team{}, &Player{}, &Registration{}))
	return db
}

func createTournament(t *testing.T, db *gorm.DB, mutate func(*tournament.Tournament)) *tournament.Tournament {
	t.Helper()
	tn := &tournament.Tournament{
		Name:             "Summer Cup",
		Slug:             fmt.Sprintf("summer-cup-%d", time.Now().UnixNano()),
		Format:           "T20",
		Status:           tournament.StatusUpcoming,
		RegistrationOpen: true,
	}
	if mutate != nil {
		mutate(tn)
	}
	require.NoError(t, db.Create(tn).Error)
	return tn
}

func registrationRequest(teamName string) *RegisterTeamRequest {
	return &RegisterTeamRequest{
		TeamName:     teamName,
		CaptainName:  "Cap Tain",
		ContactEmail: "captain@example.test",
		Players: []PlayerInput{
			{Name: "Player One", Role: "batsman"},
			{Name: "Player Two", Role: "bowler"},
		},
	}
}

func TestRegisterTeam(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tn := createTournament(t, db, nil)

	team, reg, err := repo.RegisterTeam(tn.ID, registrationRequest("Village Greens"))
	require.NoError(t, err)

	assert.Equal(t, "Village Greens", team.Name)
	assert.Len(t, team.Players, 2)
	assert.Equal(t, RegistrationPending, reg.Status)
	assert.Equal(t, PaymentPending, reg.PaymentStatus)

	// Supplying a payment reference marks the registration paid up front.
	req := registrationRequest("Paid Up XI")
	req.PaymentRef = "UPI-12345"
	_, paidReg, err := repo.RegisterTeam(tn.ID, req)
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, paidReg.PaymentStatus)
}

func TestRegisterTeamDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tn := createTournament(t, db, nil)

	_, _, err := repo.RegisterTeam(tn.ID, registrationRequest("Village Greens"))
	require.NoError(t, err)

	// Same name, different case and padding.
	_, _, err = repo.RegisterTeam(tn.ID, registrationRequest("  VILLAGE greens "))
	assert.ErrorIs(t, err, ErrDuplicateTeamName)

	// The same name in another tournament is fine.
	other := createTournament(t, db, func(tn *tournament.Tournament) { tn.Name = "Winter Cup" })
	_, _, err = repo.RegisterTeam(other.ID, registrationRequest("Village Greens"))
	assert.NoError(t, err)
}

func TestRegisterTeamCapacity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tn := createTournament(t, db, func(tn *tournament.Tournament) { tn.MaxTeams = 1 })

	_, _, err := repo.RegisterTeam(tn.ID, registrationRequest("First"))
	require.NoError(t, err)

	_, _, err = repo.RegisterTeam(tn.ID, registrationRequest("Second"))
	assert.ErrorIs(t, err, ErrCapacityReached)
}

func TestRegisterTeamClosedWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)

	closed := createTournament(t, db, func(tn *tournament.Tournament) { tn.RegistrationOpen = false })
	_, _, err := repo.RegisterTeam(closed.ID, registrationRequest("Too Late"))
	assert.ErrorIs(t, err, ErrRegistrationClosed)

	// An explicit deadline in the past closes the window even when the flag is on.
	past := time.Now().Add(-24 * time.Hour)
	expired := createTournament(t, db, func(tn *tournament.Tournament) { tn.RegistrationDeadline = &past })
	_, _, err = repo.RegisterTeam(expired.ID, registrationRequest("Also Late"))
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestRegisterTeamUnknownTournament(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)

	_, _, err := repo.RegisterTeam(999, registrationRequest("Ghost Team"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteTeamRemovesDependents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tn := createTournament(t, db, nil)

	team, reg, err := repo.RegisterTeam(tn.ID, registrationRequest("Village Greens"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTeam(team.ID))

	_, err = repo.GetTeamByID(team.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.GetRegistrationByID(reg.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var playerCount int64
	db.Model(&Player{}).Where("team_id = ?", team.ID).Count(&playerCount)
	assert.Zero(t, playerCount)
}
