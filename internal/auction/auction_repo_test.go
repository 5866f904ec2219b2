package auction

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ParthVaghani-7/crickbase/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with the auction schema.
// A single connection keeps the shared in-memory database alive and
// serializes transactions the way a real database's row locks would.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory DB")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&tournament.Tournament{}, &AuctionTeam{}, &AuctionPlayer{}))
	return db
}

func createAuctionTournament(t *testing.T, db *gorm.DB, budget int64, maxSquad int) *tournament.Tournament {
	t.Helper()
	tn := &tournament.Tournament{
		Name:             fmt.Sprintf("Premier League %d", budget),
		Slug:             fmt.Sprintf("premier-league-%d-%d", budget, maxSquad),
		Format:           "T20",
		Status:           tournament.StatusUpcoming,
		RegistrationOpen: true,
		IsAuctionBased:   true,
		AuctionBudget:    budget,
		MaxSquadSize:     maxSquad,
	}
	require.NoError(t, db.Create(tn).Error)
	return tn
}

func registerTeam(t *testing.T, repo AuctionRepository, tournamentID uint, name, email string) *AuctionTeam {
	t.Helper()
	team, err := repo.RegisterOwner(tournamentID, &RegisterOwnerRequest{
		TeamName:   name,
		OwnerName:  "Owner of " + name,
		OwnerEmail: email,
	})
	require.NoError(t, err)
	return team
}

// availablePlayer registers a player and walks them to AVAILABLE through the
// normal approval flow.
func availablePlayer(t *testing.T, repo AuctionRepository, tournamentID uint, name string) *AuctionPlayer {
	t.Helper()
	p, err := repo.RegisterPlayer(tournamentID, &RegisterPlayerRequest{
		Name:  name,
		Email: fmt.Sprintf("%s@players.test", name),
	})
	require.NoError(t, err)
	require.Equal(t, StatusPending, p.AuctionStatus)

	p, err = repo.TransitionPlayer(tournamentID, p.ID, &TransitionRequest{Action: ActionApprove})
	require.NoError(t, err)
	p, err = repo.TransitionPlayer(tournamentID, p.ID, &TransitionRequest{Action: ActionMarkAvailable})
	require.NoError(t, err)
	require.Equal(t, StatusAvailable, p.AuctionStatus)
	return p
}

func sell(repo AuctionRepository, tournamentID, playerID, teamID uint, price int64) (*AuctionPlayer, error) {
	return repo.TransitionPlayer(tournamentID, playerID, &TransitionRequest{
		Action:        ActionMarkSold,
		AuctionTeamID: &teamID,
		SoldPrice:     &price,
	})
}

func TestRegisterOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)
	tn := createAuctionTournament(t, db, 50000, 0)

	team := registerTeam(t, repo, tn.ID, "Thunder XI", "owner@thunder.test")
	assert.Equal(t, int64(50000), team.TotalBudget)
	assert.Equal(t, int64(50000), team.RemainingBudget)
	assert.Equal(t, 0, team.SquadSize)
	assert.NotEmpty(t, team.AccessToken)

	// Duplicate team names are rejected case- and whitespace-insensitively.
	_, err := repo.RegisterOwner(tn.ID, &RegisterOwnerRequest{
		TeamName:   "  thunder xi ",
		OwnerName:  "Someone Else",
		OwnerEmail: "other@thunder.test",
	})
	assert.ErrorIs(t, err, ErrDuplicateTeamName)

	// Same owner email cannot register twice in one tournament.
	_, err = repo.RegisterOwner(tn.ID, &RegisterOwnerRequest{
		TeamName:   "Lightning XI",
		OwnerName:  "Owner Again",
		OwnerEmail: "OWNER@thunder.test",
	})
	assert.ErrorIs(t, err, ErrDuplicateOwnerEmail)
}

func TestRegisterOwnerCapacity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)

	tn := createAuctionTournament(t, db, 10000, 0)
	tn.MaxTeams = 1
	require.NoError(t, db.Save(tn).Error)

	registerTeam(t, repo, tn.ID, "First In", "first@owners.test")
	_, err := repo.RegisterOwner(tn.ID, &RegisterOwnerRequest{
		TeamName:   "Too Late",
		OwnerName:  "Late Owner",
		OwnerEmail: "late@owners.test",
	})
	assert.ErrorIs(t, err, ErrCapacityReached)
}

func TestRegisterOwnerRejectsNonAuctionTournament(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)

	tn := &tournament.Tournament{
		Name:             "Knockout Cup",
		Slug:             "knockout-cup",
		RegistrationOpen: true,
	}
	require.NoError(t, db.Create(tn).Error)

	_, err := repo.RegisterOwner(tn.ID, &RegisterOwnerRequest{
		TeamName:   "Hopefuls",
		OwnerName:  "Hopeful Owner",
		OwnerEmail: "hopeful@owners.test",
	})
	assert.ErrorIs(t, err, ErrNotAuctionTournament)
}

func TestSellingDebitsBudget(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)
	tn := createAuctionTournament(t, db, 50000, 0)
	team := registerTeam(t, repo, tn.ID, "Thunder XI", "owner@thunder.test")

	p1 := availablePlayer(t, repo, tn.ID, "opener")
	p2 := availablePlayer(t, repo, tn.ID, "seamer")

	sold, err := sell(repo, tn.ID, p1.ID, team.ID, 20000)
	require.NoError(t, err)
	assert.Equal(t, StatusSold, sold.AuctionStatus)
	require.NotNil(t, sold.SoldPrice)
	assert.Equal(t, int64(20000), *sold.SoldPrice)

	fresh, err := repo.GetTeamByID(tn.ID, team.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), fresh.RemainingBudget)
	assert.Equal(t, 1, fresh.SquadSize)

	// 35000 exceeds the 30000 left.
	_, err = sell(repo, tn.ID, p2.ID, team.ID, 35000)
	assert.ErrorIs(t, err, ErrInsufficientBudget)

	// The failed sale must not change the team or the player.
	fresh, err = repo.GetTeamByID(tn.ID, team.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), fresh.RemainingBudget)
	assert.Equal(t, 1, fresh.SquadSize)

	p2Fresh, err := repo.GetPlayerByID(tn.ID, p2.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, p2Fresh.AuctionStatus)
	assert.Nil(t, p2Fresh.AuctionTeamID)
}

func TestLeavingSoldRefundsTeam(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)
	tn := createAuctionTournament(t, db, 50000, 0)
	teamA := registerTeam(t, repo, tn.ID, "Team A", "a@owners.test")
	teamB := registerTeam(t, repo, tn.ID, "Team B", "b@owners.test")

	p := availablePlayer(t, repo, tn.ID, "allrounder")

	_, err := sell(repo, tn.ID, p.ID, teamA.ID, 20000)
	require.NoError(t, err)

	// Undo the sale: player back in the pool, team A refunded in full.
	back, err := repo.TransitionPlayer(tn.ID, p.ID, &TransitionRequest{Action: ActionMarkAvailable})
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, back.AuctionStatus)
	assert.Nil(t, back.AuctionTeamID)
	assert.Nil(t, back.SoldPrice)

	freshA, err := repo.GetTeamByID(tn.ID, teamA.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), freshA.RemainingBudget)
	assert.Equal(t, 0, freshA.SquadSize)

	// Resell to team B at a different price.
	_, err = sell(repo, tn.ID, p.ID, teamB.ID, 45000)
	require.NoError(t, err)

	freshB, err := repo.GetTeamByID(tn.ID, teamB.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), freshB.RemainingBudget)
	assert.Equal(t, 1, freshB.SquadSize)
}

func TestMarkUnsoldClearsAssignment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)
	tn := createAuctionTournament(t, db, 50000, 0)
	team := registerTeam(t, repo, tn.ID, "Thunder XI", "owner@thunder.test")

	p := availablePlayer(t, repo, tn.ID, "keeper")
	_, err := sell(repo, tn.ID, p.ID, team.ID, 10000)
	require.NoError(t, err)

	unsold, err := repo.TransitionPlayer(tn.ID, p.ID, &TransitionRequest{Action: ActionMarkUnsold})
	require.NoError(t, err)
	assert.Equal(t, StatusUnsold, unsold.AuctionStatus)
	assert.Nil(t, unsold.AuctionTeamID)
	assert.Nil(t, unsold.SoldPrice)

	fresh, err := repo.GetTeamByID(tn.ID, team.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), fresh.RemainingBudget)
	assert.Equal(t, 0, fresh.SquadSize)
}

func TestSoldRequiresTeamAndPrice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)
	tn := createAuctionTournament(t, db, 50000, 0)

	p := availablePlayer(t, repo, tn.ID, "spinner")

	_, err := repo.TransitionPlayer(tn.ID, p.ID, &TransitionRequest{Action: ActionMarkSold})
	assert.ErrorIs(t, err, ErrTeamAndPriceRequired)
}

func TestInvalidTransitionIsRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)
	tn := createAuctionTournament(t, db, 50000, 0)
	team := registerTeam(t, repo, tn.ID, "Thunder XI", "owner@thunder.test")

	p, err := repo.RegisterPlayer(tn.ID, &RegisterPlayerRequest{
		Name:  "pending player",
		Email: "pending@players.test",
	})
	require.NoError(t, err)

	// A PENDING player cannot be sold directly.
	_, err = sell(repo, tn.ID, p.ID, team.ID, 1000)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSquadSizeCap(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)
	tn := createAuctionTournament(t, db, 100000, 1)
	team := registerTeam(t, repo, tn.ID, "Tiny Squad", "tiny@owners.test")
	require.Equal(t, 1, team.MaxSquadSize)

	p1 := availablePlayer(t, repo, tn.ID, "one")
	p2 := availablePlayer(t, repo, tn.ID, "two")

	_, err := sell(repo, tn.ID, p1.ID, team.ID, 1000)
	require.NoError(t, err)

	_, err = sell(repo, tn.ID, p2.ID, team.ID, 1000)
	assert.ErrorIs(t, err, ErrSquadFull)
}

func TestConcurrentSalesNeverOverspend(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)
	tn := createAuctionTournament(t, db, 30000, 0)
	team := registerTeam(t, repo, tn.ID, "Thunder XI", "owner@thunder.test")

	p1 := availablePlayer(t, repo, tn.ID, "first")
	p2 := availablePlayer(t, repo, tn.ID, "second")

	// Two 20000 sales against a 30000 budget: exactly one can land.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, playerID := range []uint{p1.ID, p2.ID} {
		wg.Add(1)
		go func(i int, playerID uint) {
			defer wg.Done()
			_, errs[i] = sell(repo, tn.ID, playerID, team.ID, 20000)
		}(i, playerID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrInsufficientBudget)
		}
	}
	assert.Equal(t, 1, succeeded)

	fresh, err := repo.GetTeamByID(tn.ID, team.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), fresh.RemainingBudget)
	assert.Equal(t, 1, fresh.SquadSize)

	// The stored budget agrees with the sum over sold players.
	spent, err := repo.TeamSpend(team.ID)
	require.NoError(t, err)
	assert.Equal(t, fresh.TotalBudget-fresh.RemainingBudget, spent)
}

func TestConcurrentSalesOfSamePlayer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)
	tn := createAuctionTournament(t, db, 50000, 0)
	alpha := registerTeam(t, repo, tn.ID, "Alpha", "owner@alpha.test")
	beta := registerTeam(t, repo, tn.ID, "Beta", "owner@beta.test")

	p := availablePlayer(t, repo, tn.ID, "contested")

	// Both teams bid on the same player at once. Only one sale may land:
	// the loser's transition must roll back whole, debit included.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, teamID := range []uint{alpha.ID, beta.ID} {
		wg.Add(1)
		go func(i int, teamID uint) {
			defer wg.Done()
			_, errs[i] = sell(repo, tn.ID, p.ID, teamID, 20000)
		}(i, teamID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, succeeded)

	fresh, err := repo.GetPlayerByID(tn.ID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.AuctionTeamID)
	winnerID := *fresh.AuctionTeamID

	// The winning team was debited exactly once, the loser not at all.
	for _, teamID := range []uint{alpha.ID, beta.ID} {
		team, err := repo.GetTeamByID(tn.ID, teamID)
		require.NoError(t, err)
		spent, err := repo.TeamSpend(teamID)
		require.NoError(t, err)
		assert.Equal(t, team.TotalBudget-team.RemainingBudget, spent)
		if teamID == winnerID {
			assert.Equal(t, int64(30000), team.RemainingBudget)
			assert.Equal(t, 1, team.SquadSize)
		} else {
			assert.Equal(t, int64(50000), team.RemainingBudget)
			assert.Equal(t, 0, team.SquadSize)
		}
	}
}

func TestOwnerDashboard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuctionRepository(db)
	tn := createAuctionTournament(t, db, 50000, 5)
	team := registerTeam(t, repo, tn.ID, "Thunder XI", "owner@thunder.test")

	p1 := availablePlayer(t, repo, tn.ID, "opener")
	p2 := availablePlayer(t, repo, tn.ID, "seamer")
	_, err := sell(repo, tn.ID, p1.ID, team.ID, 20000)
	require.NoError(t, err)
	_, err = sell(repo, tn.ID, p2.ID, team.ID, 5000)
	require.NoError(t, err)

	dashboard, err := repo.GetDashboardByAccessToken(team.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, team.ID, dashboard.Team.ID)
	assert.Len(t, dashboard.Players, 2)
	// Roster is ordered by price, highest first.
	assert.Equal(t, p1.ID, dashboard.Players[0].ID)
	assert.Equal(t, int64(25000), dashboard.Spent)
	assert.Equal(t, int64(25000), dashboard.Remaining)
	require.NotNil(t, dashboard.SlotsRemaining)
	assert.Equal(t, 3, *dashboard.SlotsRemaining)

	_, err = repo.GetDashboardByAccessToken("not-a-token")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
