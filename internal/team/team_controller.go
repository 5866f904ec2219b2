package team

import (
	"errors"
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

// TeamController handles team registration and roster HTTP requests
type TeamController struct {
	repo           TeamRepository
	tournamentRepo tournament.TournamentRepository
	notifier       *notification.Service
	appConfig      *config.Config
}

func NewTeamController(repo TeamRepository, tournamentRepo tournament.TournamentRepository, notifier *notification.Service, appConfig *config.Config) *TeamController {
	return &TeamController{
		repo:           repo,
		tournamentRepo: tournamentRepo,
		notifier:       notifier,
		appConfig:      appConfig,
	}
}

// RegisterTeam godoc
// @Summary Register a team for a tournament
// @Description Creates team, players and the registration record atomically.
// @Tags teams
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param registration body RegisterTeamRequest true "Team and roster"
// @Success 201 {object} Team
// @Failure 403 {object} responses.ErrorResponse "Registration window closed"
// @Failure 409 {object} responses.ErrorResponse "Capacity reached or duplicate name"
// @Router /tournaments/{tournament_id}/team-registration [post]
func (tc *TeamController) RegisterTeam(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}

	var req RegisterTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid registration payload", validator.ParseError(err))
		return
	}

	team, reg, err := tc.repo.RegisterTeam(uint(tournamentID), &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			responses.NotFoundJSON(ctx, "Tournament")
		case errors.Is(err, ErrRegistrationClosed):
			responses.ForbiddenJSON(ctx, err.Error())
		case errors.Is(err, ErrCapacityReached), errors.Is(err, ErrDuplicateTeamName):
			responses.ConflictJSON(ctx, err.Error())
		default:
			responses.InternalErrorJSON(ctx, err)
		}
		return
	}

	responses.SuccessJSON(ctx, http.StatusCreated, "Team registered", gin.H{
		"team":         team,
		"registration": reg,
	})
}

// GetTeamsByTournament godoc
// @Summary List teams of a tournament
// @Tags teams
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} responses.PaginatedResponse
// @Router /tournaments/{tournament_id}/teams [get]
func (tc *TeamController) GetTeamsByTournament(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	teams, total, err := tc.repo.GetTeamsByTournament(uint(tournamentID), page, limit)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.PaginatedJSON(ctx, teams, page, limit, total)
}

// GetTeamByID godoc
// @Summary Get a team with its roster
// @Tags teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} Team
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(ctx *gin.Context) {
	teamID, err := strconv.ParseUint(ctx.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Team")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, team)
}

// GetRegistrations godoc
// @Summary List registrations of a tournament
// @Tags teams
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param status query string false "Filter by status (PENDING/APPROVED/REJECTED)"
// @Success 200 {object} responses.PaginatedResponse
// @Router /admin/tournaments/{tournament_id}/registrations [get]
// @Security Bearer
func (tc *TeamController) GetRegistrations(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	regs, total, err := tc.repo.GetRegistrationsByTournament(uint(tournamentID), ctx.Query("status"), page, limit)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.PaginatedJSON(ctx, regs, page, limit, total)
}

// ReviewRegistration godoc
// @Summary Approve or reject a pending registration
// @Description action is "approve" or "reject". Triggers a best-effort email to the captain.
// @Tags teams
// @Accept json
// @Produce json
// @Param registration_id path int true "Registration ID"
// @Param action path string true "approve or reject"
// @Param review body ReviewRegistrationRequest false "Optional reason"
// @Success 200 {object} Registration
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/registrations/{registration_id}/review/{action} [put]
// @Security Bearer
func (tc *TeamController) ReviewRegistration(ctx *gin.Context) {
	regID, err := strconv.ParseUint(ctx.Param("registration_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid registration ID")
		return
	}
	action := ctx.Param("action")
	if action != "approve" && action != "reject" {
		responses.BadRequestJSON(ctx, "action must be 'approve' or 'reject'")
		return
	}

	var req ReviewRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		responses.ValidationErrorJSON(ctx, "Invalid review payload", validator.ParseError(err))
		return
	}

	reg, err := tc.repo.GetRegistrationByID(uint(regID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Registration")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	if reg.Status != RegistrationPending {
		responses.ConflictJSON(ctx, "registration has already been reviewed")
		return
	}

	templateKey := notification.TemplateRegistrationApproved
	if action == "approve" {
		reg.Status = RegistrationApproved
	} else {
		reg.Status = RegistrationRejected
		templateKey = notification.TemplateRegistrationRejected
	}
	reg.Notes = req.Reason

	if err := tc.repo.UpdateRegistration(reg); err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}

	t, err := tc.tournamentRepo.GetTournamentByID(reg.TournamentID)
	tournamentName := ""
	if err == nil {
		tournamentName = t.Name
	}
	tc.notifier.DispatchAsync(&reg.TournamentID, reg.Team.ContactEmail, templateKey, map[string]interface{}{
		"Name":           reg.Team.CaptainName,
		"TeamName":       reg.Team.Name,
		"TournamentName": tournamentName,
		"Reason":         req.Reason,
	})

	ctx.JSON(http.StatusOK, reg)
}

// UpdatePaymentStatus godoc
// @Summary Mark a registration's entry fee as paid or pending
// @Tags teams
// @Accept json
// @Produce json
// @Param registration_id path int true "Registration ID"
// @Param payment body UpdatePaymentStatusRequest true "Payment status"
// @Success 200 {object} Registration
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/registrations/{registration_id}/payment [put]
// @Security Bearer
func (tc *TeamController) UpdatePaymentStatus(ctx *gin.Context) {
	regID, err := strconv.ParseUint(ctx.Param("registration_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid registration ID")
		return
	}

	var req UpdatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid payment payload", validator.ParseError(err))
		return
	}

	reg, err := tc.repo.GetRegistrationByID(uint(regID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Registration")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}

	reg.PaymentStatus = req.PaymentStatus
	if req.PaymentRef != "" {
		reg.PaymentRef = req.PaymentRef
	}
	if err := tc.repo.UpdateRegistration(reg); err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reg)
}

// DeleteTeam godoc
// @Summary Remove a team, its players and registration
// @Tags teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/teams/{team_id} [delete]
// @Security Bearer
func (tc *TeamController) DeleteTeam(ctx *gin.Context) {
	teamID, err := strconv.ParseUint(ctx.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid team ID")
		return
	}

	if _, err := tc.repo.GetTeamByID(uint(teamID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Team")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}

	if err := tc.repo.DeleteTeam(uint(teamID)); err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.SuccessJSON(ctx, http.StatusOK, "Team deleted", nil)
}
