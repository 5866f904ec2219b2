package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/ParthVaghani-7/crickbase/config"
	"github.com/ParthVaghani-7/crickbase/internal/admin"
	mw "github.com/ParthVaghani-7/crickbase/internal/middleware"
	"github.com/ParthVaghani-7/crickbase/pkg/responses"
	"github.com/ParthVaghani-7/crickbase/pkg/token"
	"github.com/ParthVaghani-7/crickbase/pkg/validator"
	"github.com/ParthVaghani-7/crickbase/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionTokenLength = 48

type AuthController struct {
	repo      AuthRepository
	appConfig *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, appConfig: cfg}
}

// Login godoc
// @Summary Admin login
// @Description Verifies credentials, creates a session and sets the auth-token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} responses.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(c, "Invalid login payload", validator.ParseError(err))
		return
	}

	a, err := ac.repo.GetAdminByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.ErrorJSON(c, http.StatusUnauthorized, errors.New("invalid username or password"))
			return
		}
		responses.InternalErrorJSON(c, err)
		return
	}
	if !a.Active {
		responses.ErrorJSON(c, http.StatusUnauthorized, errors.New("account is deactivated"))
		return
	}
	if !utils.CheckPassword(a.Password, req.Password) {
		responses.ErrorJSON(c, http.StatusUnauthorized, errors.New("invalid username or password"))
		return
	}

	sessionToken := utils.GenerateRandomToken(sessionTokenLength)
	expiresAt := time.Now().AddDate(0, 0, ac.appConfig.JWT.SessionExpiryDays)
	session := &admin.Session{
		AdminID:   a.ID,
		Token:     sessionToken,
		ExpiresAt: expiresAt,
		UserAgent: c.Request.UserAgent(),
		IP:        c.ClientIP(),
	}
	if err := ac.repo.CreateSession(session); err != nil {
		responses.InternalErrorJSON(c, err)
		return
	}

	jwtString, err := token.GenerateJWT(a.ID, a.Role, sessionToken, ac.appConfig.JWT.Secret, ac.appConfig.JWT.ExpiryMinutes)
	if err != nil {
		responses.InternalErrorJSON(c, err)
		return
	}

	now := time.Now()
	a.LastLoginAt = &now
	if err := ac.repo.UpdateAdmin(a); err != nil {
		responses.InternalErrorJSON(c, err)
		return
	}

	secure := ac.appConfig.App.Env == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(mw.AuthCookieName, jwtString, int(time.Until(expiresAt).Seconds()), "/", "", secure, true)

	c.JSON(http.StatusOK, AuthResponse{
		Token: jwtString,
		Admin: admin.FilterAdminRecord(a),
	})
}

// Verify godoc
// @Summary Validate the current session
// @Description Returns the admin profile behind the auth-token cookie, or 401.
// @Tags auth
// @Produce json
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/verify [get]
// @Security Bearer
func (ac *AuthController) Verify(c *gin.Context) {
	adminID, err := mw.GetAdminIDFromContext(c)
	if err != nil {
		responses.UnauthorizedJSON(c)
		return
	}

	a, err := ac.repo.GetAdminByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.UnauthorizedJSON(c)
			return
		}
		responses.InternalErrorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{Admin: admin.FilterAdminRecord(a)})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the current session and clears the auth-token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /auth/logout [post]
// @Security Bearer
func (ac *AuthController) Logout(c *gin.Context) {
	sessionToken, exists := c.Get(mw.AuthSessionKey)
	if exists {
		if tok, ok := sessionToken.(string); ok && tok != "" {
			if err := ac.repo.RevokeSession(tok); err != nil {
				responses.InternalErrorJSON(c, err)
				return
			}
		}
	}

	c.SetCookie(mw.AuthCookieName, "", -1, "/", "", false, true)
	responses.SuccessJSON(c, http.StatusOK, "Logged out", nil)
}
