package jobs

import (
	"log"
	"time"

	"github.com/ParthVaghani-7/crickbase/internal/admin"
	"github.com/ParthVaghani-7/crickbase/internal/tournament"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// StartScheduler runs the background maintenance jobs: closing registration
// for tournaments past their deadline and purging dead admin sessions. The
// returned scheduler should be shut down when the process exits.
func StartScheduler(db *gorm.DB) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	tournamentRepo := tournament.NewTournamentRepository(db)
	adminRepo := admin.NewAdminRepository(db)

	// Every 10 minutes: close registration where the deadline has passed.
	_, err = sched.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(func() {
			closed, err := tournamentRepo.CloseExpiredRegistrations()
			if err != nil {
				log.Printf("[Scheduler] closing expired registrations failed: %v", err)
				return
			}
			if closed > 0 {
				log.Printf("[Scheduler] closed registration for %d tournament(s)", closed)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	// Hourly: drop expired and revoked sessions.
	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			purged, err := adminRepo.PurgeExpiredSessions()
			if err != nil {
				log.Printf("[Scheduler] purging expired sessions failed: %v", err)
				return
			}
			if purged > 0 {
				log.Printf("[Scheduler] purged %d dead session(s)", purged)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
