package auction

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ParthVaghani-7/crickbase/config"
	"github.com/ParthVaghani-7/crickbase/internal/notification"
	"github.com/ParthVaghani-7/crickbase/internal/tournament"
	"github.com/ParthVaghani-7/crickbase/pkg/responses"
	"github.com/ParthVaghani-7/crickbase/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuctionController handles auction registration, transitions and the owner portal.
type AuctionController struct {
	repo           AuctionRepository
	tournamentRepo tournament.TournamentRepository
	notifier       *notification.Service
	appConfig      *config.Config
}

func NewAuctionController(repo AuctionRepository, tournamentRepo tournament.TournamentRepository, notifier *notification.Service, appConfig *config.Config) *AuctionController {
	return &AuctionController{
		repo:           repo,
		tournamentRepo: tournamentRepo,
		notifier:       notifier,
		appConfig:      appConfig,
	}
}

// RegisterOwner godoc
// @Summary Register a team owner for an auction tournament
// @Description Creates the auction team with the tournament's per-team budget and emails the owner their portal link.
// @Tags auction
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param owner body RegisterOwnerRequest true "Owner details"
// @Success 201 {object} AuctionTeam
// @Failure 403 {object} responses.ErrorResponse "Registration window closed"
// @Failure 409 {object} responses.ErrorResponse "Capacity reached or duplicate"
// @Router /tournaments/{tournament_id}/owner-registration [post]
func (ac *AuctionController) RegisterOwner(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}

	var req RegisterOwnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid owner payload", validator.ParseError(err))
		return
	}

	team, err := ac.repo.RegisterOwner(uint(tournamentID), &req)
	if err != nil {
		ac.writeRegistrationError(ctx, err)
		return
	}

	tournamentName := ""
	if t, err := ac.tournamentRepo.GetTournamentByID(team.TournamentID); err == nil {
		tournamentName = t.Name
	}
	portalURL := fmt.Sprintf("%s/owner-portal/%s", ac.appConfig.App.FrontendURL, team.AccessToken)
	ac.notifier.DispatchAsync(&team.TournamentID, team.OwnerEmail, notification.TemplateOwnerWelcome, map[string]interface{}{
		"Name":           team.OwnerName,
		"TeamName":       team.TeamName,
		"TournamentName": tournamentName,
		"Budget":         team.TotalBudget,
		"PortalURL":      portalURL,
	})

	ctx.JSON(http.StatusCreated, team)
}

// RegisterPlayer godoc
// @Summary Register a player into an auction pool
// @Description Player enters the pool in PENDING state awaiting admin approval.
// @Tags auction
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param player body RegisterPlayerRequest true "Player details"
// @Success 201 {object} AuctionPlayer
// @Failure 403 {object} responses.ErrorResponse "Registration window closed"
// @Router /tournaments/{tournament_id}/player-registration [post]
func (ac *AuctionController) RegisterPlayer(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}

	var req RegisterPlayerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid player payload", validator.ParseError(err))
		return
	}

	player, err := ac.repo.RegisterPlayer(uint(tournamentID), &req)
	if err != nil {
		ac.writeRegistrationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, player)
}

func (ac *AuctionController) writeRegistrationError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		responses.NotFoundJSON(ctx, "Tournament")
	case errors.Is(err, ErrNotAuctionTournament):
		responses.BadRequestJSON(ctx, err.Error())
	case errors.Is(err, ErrRegistrationClosed):
		responses.ForbiddenJSON(ctx, err.Error())
	case errors.Is(err, ErrCapacityReached),
		errors.Is(err, ErrDuplicateTeamName),
		errors.Is(err, ErrDuplicateOwnerEmail):
		responses.ConflictJSON(ctx, err.Error())
	default:
		responses.InternalErrorJSON(ctx, err)
	}
}

// TransitionPlayer godoc
// @Summary Apply an auction action to a player
// @Description action is one of APPROVE, REJECT, MARK_AVAILABLE, MARK_SOLD, MARK_UNSOLD. MARK_SOLD requires auction_team_id and sold_price and debits the team's budget atomically. SOLD/UNSOLD trigger a best-effort email to the player.
// @Tags auction
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param player_id path int true "Auction player ID"
// @Param transition body TransitionRequest true "Action"
// @Success 200 {object} AuctionPlayer
// @Failure 400 {object} responses.ErrorResponse "Unknown action or invalid transition"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 409 {object} responses.ErrorResponse "Budget exceeded or squad full"
// @Failure 422 {object} responses.ValidationErrorResponse "Missing team or price on MARK_SOLD"
// @Router /admin/tournaments/{tournament_id}/players/{player_id} [patch]
// @Security Bearer
func (ac *AuctionController) TransitionPlayer(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}
	playerID, err := strconv.ParseUint(ctx.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid player ID")
		return
	}

	var req TransitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid transition payload", validator.ParseError(err))
		return
	}

	player, err := ac.repo.TransitionPlayer(uint(tournamentID), uint(playerID), &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			responses.NotFoundJSON(ctx, "Auction player")
		case errors.Is(err, ErrInvalidTransition):
			responses.BadRequestJSON(ctx, err.Error())
		case errors.Is(err, ErrTeamAndPriceRequired):
			responses.ValidationErrorJSON(ctx, err.Error(), nil)
		case errors.Is(err, ErrInsufficientBudget), errors.Is(err, ErrSquadFull):
			responses.ConflictJSON(ctx, err.Error())
		case errors.Is(err, ErrTeamNotInTournament):
			responses.BadRequestJSON(ctx, err.Error())
		default:
			responses.InternalErrorJSON(ctx, err)
		}
		return
	}

	ac.notifyTransition(player, req.Action)

	responses.SuccessJSON(ctx, http.StatusOK, "Player updated", player)
}

// notifyTransition fires the best-effort player email for SOLD/UNSOLD outcomes.
func (ac *AuctionController) notifyTransition(player *AuctionPlayer, action Action) {
	if player.Email == "" {
		return
	}
	if action != ActionMarkSold && action != ActionMarkUnsold {
		return
	}

	tournamentName := ""
	if t, err := ac.tournamentRepo.GetTournamentByID(player.TournamentID); err == nil {
		tournamentName = t.Name
	}

	if action == ActionMarkSold {
		teamName := ""
		if player.AuctionTeamID != nil {
			if team, err := ac.repo.GetTeamByID(player.TournamentID, *player.AuctionTeamID); err == nil {
				teamName = team.TeamName
			}
		}
		var soldPrice int64
		if player.SoldPrice != nil {
			soldPrice = *player.SoldPrice
		}
		ac.notifier.DispatchAsync(&player.TournamentID, player.Email, notification.TemplatePlayerSold, map[string]interface{}{
			"Name":           player.Name,
			"TeamName":       teamName,
			"TournamentName": tournamentName,
			"SoldPrice":      soldPrice,
		})
		return
	}

	ac.notifier.DispatchAsync(&player.TournamentID, player.Email, notification.TemplatePlayerUnsold, map[string]interface{}{
		"Name":           player.Name,
		"TournamentName": tournamentName,
	})
}

// GetPlayers godoc
// @Summary List auction players of a tournament
// @Tags auction
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param status query string false "Filter by auction status"
// @Success 200 {object} responses.PaginatedResponse
// @Router /tournaments/{tournament_id}/players [get]
func (ac *AuctionController) GetPlayers(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	players, total, err := ac.repo.GetPlayersByTournament(uint(tournamentID), ctx.Query("status"), page, limit)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.PaginatedJSON(ctx, players, page, limit, total)
}

// GetTeams godoc
// @Summary List auction teams of a tournament
// @Tags auction
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.PaginatedResponse
// @Router /tournaments/{tournament_id}/auction-teams [get]
func (ac *AuctionController) GetTeams(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	teams, total, err := ac.repo.GetTeamsByTournament(uint(tournamentID), page, limit)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.PaginatedJSON(ctx, teams, page, limit, total)
}

// VerifyTeam godoc
// @Summary Mark an auction team as verified
// @Tags auction
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param team_id path int true "Auction team ID"
// @Success 200 {object} AuctionTeam
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/tournaments/{tournament_id}/auction-teams/{team_id}/verify [put]
// @Security Bearer
func (ac *AuctionController) VerifyTeam(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}
	teamID, err := strconv.ParseUint(ctx.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid team ID")
		return
	}

	team, err := ac.repo.VerifyTeam(uint(tournamentID), uint(teamID), true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Auction team")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, team)
}

// OwnerDashboard godoc
// @Summary Team-owner portal dashboard
// @Description The access token in the URL stands in for authentication; it is only ever shared with the owner by email.
// @Tags auction
// @Produce json
// @Param access_token path string true "Owner portal access token"
// @Success 200 {object} OwnerDashboard
// @Failure 404 {object} responses.ErrorResponse
// @Router /owner-portal/{access_token} [get]
func (ac *AuctionController) OwnerDashboard(ctx *gin.Context) {
	accessToken := ctx.Param("access_token")
	if accessToken == "" {
		responses.BadRequestJSON(ctx, "missing access token")
		return
	}

	dashboard, err := ac.repo.GetDashboardByAccessToken(accessToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Owner portal")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}
