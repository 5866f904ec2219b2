package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ParthVaghani-7/crickbase/config"
	"github.com/ParthVaghani-7/crickbase/pkg/responses"
	"github.com/ParthVaghani-7/crickbase/pkg/validator"
	"github.com/ParthVaghani-7/crickbase/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController handles superadmin-only account management.
type AdminController struct {
	repo      AdminRepository
	appConfig *config.Config
}

func NewAdminController(repo AdminRepository, appConfig *config.Config) *AdminController {
	return &AdminController{repo: repo, appConfig: appConfig}
}

// CreateAdmin godoc
// @Summary Create an admin account
// @Description Create a new back-office admin. Superadmin only.
// @Tags admins
// @Accept json
// @Produce json
// @Param admin body CreateAdminRequest true "Admin details"
// @Success 201 {object} AdminResponse
// @Failure 409 {object} responses.ErrorResponse "Username or email already taken"
// @Router /admin/admins [post]
// @Security Bearer
func (ac *AdminController) CreateAdmin(ctx *gin.Context) {
	var req CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid admin payload", validator.ParseError(err))
		return
	}

	if _, err := ac.repo.GetAdminByUsername(req.Username); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.ConflictJSON(ctx, "Admin with this username already exists")
		return
	}
	if _, err := ac.repo.GetAdminByEmail(req.Email); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.ConflictJSON(ctx, "Admin with this email already exists")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}

	role := req.Role
	if role == "" {
		role = RoleAdmin
	}

	newAdmin := &Admin{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
		Active:   true,
	}
	if err := ac.repo.CreateAdmin(newAdmin); err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, FilterAdminRecord(newAdmin))
}

// GetAllAdmins godoc
// @Summary List admin accounts
// @Tags admins
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} responses.PaginatedResponse
// @Router /admin/admins [get]
// @Security Bearer
func (ac *AdminController) GetAllAdmins(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	admins, total, err := ac.repo.GetAllAdmins(page, limit)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}

	out := make([]AdminResponse, 0, len(admins))
	for i := range admins {
		out = append(out, FilterAdminRecord(&admins[i]))
	}
	responses.PaginatedJSON(ctx, out, page, limit, total)
}

// UpdateAdmin godoc
// @Summary Update an admin account
// @Description Change email, password, role or active flag. Superadmin only.
// @Tags admins
// @Accept json
// @Produce json
// @Param admin_id path int true "Admin ID"
// @Param admin body UpdateAdminRequest true "Fields to update"
// @Success 200 {object} AdminResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/admins/{admin_id} [put]
// @Security Bearer
func (ac *AdminController) UpdateAdmin(ctx *gin.Context) {
	adminID, err := strconv.ParseUint(ctx.Param("admin_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid admin ID")
		return
	}

	var req UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid admin payload", validator.ParseError(err))
		return
	}

	a, err := ac.repo.GetAdminByID(uint(adminID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Admin")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}

	if req.Email != nil {
		a.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			responses.InternalErrorJSON(ctx, err)
			return
		}
		a.Password = hashed
	}
	if req.Role != nil {
		a.Role = *req.Role
	}
	if req.Active != nil {
		a.Active = *req.Active
		if !a.Active {
			// Deactivation kills every live session immediately.
			if err := ac.repo.RevokeAllSessionsForAdmin(a.ID); err != nil {
				responses.InternalErrorJSON(ctx, err)
				return
			}
		}
	}

	if err := ac.repo.UpdateAdmin(a); err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, FilterAdminRecord(a))
}
