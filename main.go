package main

import (
	"log"

	"github.com/ParthVaghani-7/crickbase/config"
	_ "github.com/ParthVaghani-7/crickbase/docs"
	"github.com/ParthVaghani-7/crickbase/internal/admin"
	"github.com/ParthVaghani-7/crickbase/internal/auction"
	"github.com/ParthVaghani-7/crickbase/internal/auth"
	"github.com/ParthVaghani-7/crickbase/internal/content"
	"github.com/ParthVaghani-7/crickbase/internal/jobs"
	"github.com/ParthVaghani-7/crickbase/internal/match"
	"github.com/ParthVaghani-7/crickbase/internal/notification"
	"github.com/ParthVaghani-7/crickbase/internal/payment"
	"github.com/ParthVaghani-7/crickbase/internal/team"
	"github.com/ParthVaghani-7/crickbase/internal/tournament"
	"github.com/ParthVaghani-7/crickbase/routes"
)

// @title CrickBase REST API
// @version 1.0
// @description Cricket club management: tournaments, team registration and player auctions 🏏
// @host localhost:8090
// @BasePath /api
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	err = db.AutoMigrate(
		&admin.Admin{}, &admin.Session{},
		&tournament.Tournament{},
		&team.Team{}, &team.Player{}, &team.Registration{},
		&auction.AuctionTeam{}, &auction.AuctionPlayer{},
		&match.Match{},
		&payment.PaymentMethod{},
		&content.Section{}, &content.Person{}, &content.SiteImage{},
		&notification.EmailLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := auth.EnsureSuperadmin(db, cfg.Bootstrap.SuperadminUsername, cfg.Bootstrap.SuperadminEmail, cfg.Bootstrap.SuperadminPassword); err != nil {
		log.Fatalf("Superadmin bootstrap failed: %v", err)
	}

	notifier := notification.NewService(db, notification.NewSMTPMailer(cfg))

	sched, err := jobs.StartScheduler(db)
	if err != nil {
		log.Fatalf("Failed to start background scheduler: %v", err)
	}
	defer func() {
		if err := sched.Shutdown(); err != nil {
			log.Printf("Error shutting down scheduler: %v", err)
		}
	}()

	r := routes.SetupRoutes(db, cfg, notifier)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
