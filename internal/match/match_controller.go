package match

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ParthVaghani-7/crickbase/pkg/responses"
	"github.com/ParthVaghani-7/crickbase/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchController handles fixture scheduling and results.
type MatchController struct {
	repo MatchRepository
}

func NewMatchController(repo MatchRepository) *MatchController {
	return &MatchController{repo: repo}
}

// CreateMatch godoc
// @Summary Schedule a fixture
// @Tags matches
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param match body CreateMatchRequest true "Fixture details"
// @Success 201 {object} Match
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/tournaments/{tournament_id}/matches [post]
// @Security Bearer
func (mc *MatchController) CreateMatch(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}

	var req CreateMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid match payload", validator.ParseError(err))
		return
	}

	m, err := mc.repo.CreateMatch(uint(tournamentID), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSameTeam), errors.Is(err, ErrTeamNotInEvent):
			responses.BadRequestJSON(ctx, err.Error())
		default:
			responses.InternalErrorJSON(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusCreated, m)
}

// GetMatches godoc
// @Summary List fixtures of a tournament
// @Tags matches
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param status query string false "Filter by status"
// @Success 200 {object} responses.PaginatedResponse
// @Router /tournaments/{tournament_id}/matches [get]
func (mc *MatchController) GetMatches(ctx *gin.Context) {
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

	matches, total, err := mc.repo.GetMatchesByTournament(uint(tournamentID), ctx.Query("status"), page, limit)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.PaginatedJSON(ctx, matches, page, limit, total)
}

// GetMatch godoc
// @Summary Get a single fixture
// @Tags matches
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param match_id path int true "Match ID"
// @Success 200 {object} Match
// @Failure 404 {object} responses.ErrorResponse
// @Router /tournaments/{tournament_id}/matches/{match_id} [get]
func (mc *MatchController) GetMatch(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}
	matchID, err := strconv.ParseUint(ctx.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(tournamentID), uint(matchID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Match")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, m)
}

// UpdateMatch godoc
// @Summary Update a fixture's schedule, status or result
// @Tags matches
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param match_id path int true "Match ID"
// @Param match body UpdateMatchRequest true "Fields to update"
// @Success 200 {object} Match
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/tournaments/{tournament_id}/matches/{match_id} [put]
// @Security Bearer
func (mc *MatchController) UpdateMatch(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}
	matchID, err := strconv.ParseUint(ctx.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid match ID")
		return
	}

	var req UpdateMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid match payload", validator.ParseError(err))
		return
	}

	m, err := mc.repo.UpdateMatch(uint(tournamentID), uint(matchID), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Match")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, m)
}

// DeleteMatch godoc
// @Summary Delete a fixture
// @Tags matches
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/tournaments/{tournament_id}/matches/{match_id} [delete]
// @Security Bearer
func (mc *MatchController) DeleteMatch(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}
	matchID, err := strconv.ParseUint(ctx.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid match ID")
		return
	}

	if err := mc.repo.DeleteMatch(uint(tournamentID), uint(matchID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Match")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.SuccessJSON(ctx, http.StatusOK, "Match deleted successfully", nil)
}
