package tournament

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ParthVaghani-7/crickbase/config"
	"github.com/ParthVaghani-7/crickbase/pkg/responses"
	"github.com/ParthVaghani-7/crickbase/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// TournamentController handles tournament-related HTTP requests
type TournamentController struct {
	repo      TournamentRepository
	appConfig *config.Config
}

func NewTournamentController(repo TournamentRepository, appConfig *config.Config) *TournamentController {
	return &TournamentController{repo: repo, appConfig: appConfig}
}

// CreateTournament godoc
// @Summary Create a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament body CreateTournamentRequest true "Tournament details"
// @Success 201 {object} Tournament
// @Failure 409 {object} responses.ErrorResponse "Duplicate name"
// @Router /admin/tournaments [post]
// @Security Bearer
func (tc *TournamentController) CreateTournament(ctx *gin.Context) {
	var req CreateTournamentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid tournament payload", validator.ParseError(err))
		return
	}

	if _, err := tc.repo.GetTournamentByName(req.Name); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.ConflictJSON(ctx, "Tournament with this name already exists")
		return
	}

	if req.IsAuctionBased && req.AuctionBudget <= 0 {
		responses.ValidationErrorJSON(ctx, "Invalid tournament payload", map[string]string{
			"auction_budget": "auction-based tournaments require a positive auction_budget",
		})
		return
	}

	t := &Tournament{
		Name:                 req.Name,
		Slug:                 tc.uniqueSlug(req.Name),
		Season:               req.Season,
		Venue:                req.Venue,
		Description:          req.Description,
		BannerImage:          req.BannerImage,
		Status:               StatusUpcoming,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		RegistrationDeadline: req.RegistrationDeadline,
		RegistrationOpen:     true,
		MaxTeams:             req.MaxTeams,
		EntryFee:             req.EntryFee,
		IsAuctionBased:       req.IsAuctionBased,
		AuctionBudget:        req.AuctionBudget,
		MaxSquadSize:         req.MaxSquadSize,
	}
	if req.Format != "" {
		t.Format = req.Format
	}
	if req.EntryFeeCurrency != "" {
		t.EntryFeeCurrency = req.EntryFeeCurrency
	}

	if err := tc.repo.CreateTournament(t); err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, t)
}

// uniqueSlug derives a URL slug from the name, suffixing on collision.
func (tc *TournamentController) uniqueSlug(name string) string {
	base := slug.Make(name)
	candidate := base
	for i := 2; ; i++ {
		if _, err := tc.repo.GetTournamentBySlug(candidate); errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// GetAllTournaments godoc
// @Summary List tournaments
// @Tags tournaments
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "Filter by status"
// @Param auction query bool false "Filter auction-based tournaments"
// @Success 200 {object} responses.PaginatedResponse
// @Router /tournaments [get]
func (tc *TournamentController) GetAllTournaments(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filters := make(map[string]interface{})
	if status := ctx.Query("status"); status != "" {
		filters["status"] = status
	}
	if auction := ctx.Query("auction"); auction != "" {
		filters["is_auction_based"] = auction == "true"
	}
	if name := ctx.Query("name"); name != "" {
		filters["name"] = name
	}

	tournaments, total, err := tc.repo.GetAllTournaments(page, limit, filters)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.PaginatedJSON(ctx, tournaments, page, limit, total)
}

// GetTournament godoc
// @Summary Get a tournament by ID or slug
// @Tags tournaments
// @Produce json
// @Param tournament_id path string true "Tournament ID or slug"
// @Success 200 {object} Tournament
// @Failure 404 {object} responses.ErrorResponse
// @Router /tournaments/{tournament_id} [get]
func (tc *TournamentController) GetTournament(ctx *gin.Context) {
	param := ctx.Param("tournament_id")

	var t *Tournament
	var err error
	if id, convErr := strconv.ParseUint(param, 10, 32); convErr == nil {
		t, err = tc.repo.GetTournamentByID(uint(id))
	} else {
		t, err = tc.repo.GetTournamentBySlug(param)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Tournament")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, t)
}

// UpdateTournament godoc
// @Summary Update a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param tournament body UpdateTournamentRequest true "Fields to update"
// @Success 200 {object} Tournament
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/tournaments/{tournament_id} [put]
// @Security Bearer
func (tc *TournamentController) UpdateTournament(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}

	var req UpdateTournamentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid tournament payload", validator.ParseError(err))
		return
	}

	t, err := tc.repo.GetTournamentByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Tournament")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}

	if req.Name != nil && *req.Name != t.Name {
		if existing, err := tc.repo.GetTournamentByName(*req.Name); err == nil && existing.ID != t.ID {
			responses.ConflictJSON(ctx, "Tournament with this name already exists")
			return
		}
		t.Name = *req.Name
	}
	if req.Season != nil {
		t.Season = *req.Season
	}
	if req.Venue != nil {
		t.Venue = *req.Venue
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Format != nil {
		t.Format = *req.Format
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.BannerImage != nil {
		t.BannerImage = *req.BannerImage
	}
	if req.StartDate != nil {
		t.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		t.EndDate = req.EndDate
	}
	if req.RegistrationDeadline != nil {
		t.RegistrationDeadline = req.RegistrationDeadline
	}
	if req.RegistrationOpen != nil {
		t.RegistrationOpen = *req.RegistrationOpen
	}
	if req.MaxTeams != nil {
		t.MaxTeams = *req.MaxTeams
	}
	if req.EntryFee != nil {
		t.EntryFee = *req.EntryFee
	}
	if req.EntryFeeCurrency != nil {
		t.EntryFeeCurrency = *req.EntryFeeCurrency
	}
	if req.AuctionBudget != nil {
		t.AuctionBudget = *req.AuctionBudget
	}
	if req.MaxSquadSize != nil {
		t.MaxSquadSize = *req.MaxSquadSize
	}

	if err := tc.repo.UpdateTournament(t); err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, t)
}

// DeleteTournament godoc
// @Summary Delete a tournament and everything it owns
// @Tags tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/tournaments/{tournament_id} [delete]
// @Security Bearer
func (tc *TournamentController) DeleteTournament(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}

	if _, err := tc.repo.GetTournamentByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Tournament")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}

	if err := tc.repo.DeleteTournament(uint(id)); err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.SuccessJSON(ctx, http.StatusOK, "Tournament deleted", nil)
}
