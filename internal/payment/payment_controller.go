package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ParthVaghani-7/crickbase/pkg/responses"
	"github.com/ParthVaghani-7/crickbase/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaymentController handles payment-method configuration per tournament.
type PaymentController struct {
	repo PaymentRepository
}

func NewPaymentController(repo PaymentRepository) *PaymentController {
	return &PaymentController{repo: repo}
}

// CreateMethod godoc
// @Summary Add a payment method to a tournament
// @Tags payments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param method body CreatePaymentMethodRequest true "Payment method"
// @Success 201 {object} PaymentMethod
// @Router /admin/tournaments/{tournament_id}/payment-methods [post]
// @Security Bearer
func (pc *PaymentController) CreateMethod(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}

	var req CreatePaymentMethodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid payment method payload", validator.ParseError(err))
		return
	}

	method, err := pc.repo.CreateMethod(uint(tournamentID), &req)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, method)
}

// GetMethods godoc
// @Summary List enabled payment methods of a tournament
// @Tags payments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {array} PaymentMethod
// @Router /tournaments/{tournament_id}/payment-methods [get]
func (pc *PaymentController) GetMethods(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}

	methods, err := pc.repo.GetMethodsByTournament(uint(tournamentID), true)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, methods)
}

// GetAllMethods lists every method including disabled ones, for the admin UI.
func (pc *PaymentController) GetAllMethods(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}

	methods, err := pc.repo.GetMethodsByTournament(uint(tournamentID), false)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, methods)
}

// UpdateMethod godoc
// @Summary Update or toggle a payment method
// @Tags payments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param method_id path int true "Payment method ID"
// @Param method body UpdatePaymentMethodRequest true "Fields to update"
// @Success 200 {object} PaymentMethod
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/tournaments/{tournament_id}/payment-methods/{method_id} [put]
// @Security Bearer
func (pc *PaymentController) UpdateMethod(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}
	methodID, err := strconv.ParseUint(ctx.Param("method_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid payment method ID")
		return
	}

	var req UpdatePaymentMethodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid payment method payload", validator.ParseError(err))
		return
	}

	method, err := pc.repo.UpdateMethod(uint(tournamentID), uint(methodID), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Payment method")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, method)
}

// DeleteMethod godoc
// @Summary Delete a payment method
// @Tags payments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param method_id path int true "Payment method ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/tournaments/{tournament_id}/payment-methods/{method_id} [delete]
// @Security Bearer
func (pc *PaymentController) DeleteMethod(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid tournament ID")
		return
	}
	methodID, err := strconv.ParseUint(ctx.Param("method_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid payment method ID")
		return
	}

	if err := pc.repo.DeleteMethod(uint(tournamentID), uint(methodID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Payment method")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.SuccessJSON(ctx, http.StatusOK, "Payment method deleted successfully", nil)
}
