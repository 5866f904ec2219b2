package content

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ParthVaghani-7/crickbase/config"
	mw "github.com/ParthVaghani-7/crickbase/internal/middleware"
	"github.com/ParthVaghani-7/crickbase/pkg/responses"
	"github.com/ParthVaghani-7/crickbase/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxUploadBytes = 5 << 20 // 5 MiB

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// ContentController handles landing-page CMS endpoints, image uploads and the
// remote image proxy.
type ContentController struct {
	repo        ContentRepository
	appConfig   *config.Config
	proxyClient *http.Client
}

func NewContentController(repo ContentRepository, appConfig *config.Config) *ContentController {
	return &ContentController{
		repo:      repo,
		appConfig: appConfig,
		proxyClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetLanding godoc
// @Summary Public landing-page content
// @Description Returns visible sections and people in display order.
// @Tags content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /content/landing [get]
func (cc *ContentController) GetLanding(ctx *gin.Context) {
	sections, err := cc.repo.GetSections(true)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	people, err := cc.repo.GetPeople(true)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"sections": sections,
		"people":   people,
	})
}

// GetSections lists every section including hidden ones, for the admin UI.
func (cc *ContentController) GetSections(ctx *gin.Context) {
	sections, err := cc.repo.GetSections(false)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sections)
}

// UpsertSection godoc
// @Summary Create or replace a landing-page section by slug
// @Tags content
// @Accept json
// @Produce json
// @Param section body UpsertSectionRequest true "Section"
// @Success 200 {object} Section
// @Router /admin/content/sections [put]
// @Security Bearer
func (cc *ContentController) UpsertSection(ctx *gin.Context) {
	var req UpsertSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid section payload", validator.ParseError(err))
		return
	}

	section, err := cc.repo.UpsertSection(&req)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, section)
}

// DeleteSection removes a section by numeric ID.
func (cc *ContentController) DeleteSection(ctx *gin.Context) {
	sectionID, err := strconv.ParseUint(ctx.Param("section_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid section ID")
		return
	}
	if err := cc.repo.DeleteSection(uint(sectionID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Section")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.SuccessJSON(ctx, http.StatusOK, "Section deleted successfully", nil)
}

// GetPeople lists every person including hidden ones, for the admin UI.
func (cc *ContentController) GetPeople(ctx *gin.Context) {
	people, err := cc.repo.GetPeople(false)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, people)
}

// CreatePerson godoc
// @Summary Add a committee member or coach to the landing page
// @Tags content
// @Accept json
// @Produce json
// @Param person body UpsertPersonRequest true "Person"
// @Success 201 {object} Person
// @Router /admin/content/people [post]
// @Security Bearer
func (cc *ContentController) CreatePerson(ctx *gin.Context) {
	var req UpsertPersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid person payload", validator.ParseError(err))
		return
	}

	person, err := cc.repo.CreatePerson(&req)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, person)
}

// UpdatePerson replaces a person's details.
func (cc *ContentController) UpdatePerson(ctx *gin.Context) {
	personID, err := strconv.ParseUint(ctx.Param("person_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid person ID")
		return
	}

	var req UpsertPersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(ctx, "Invalid person payload", validator.ParseError(err))
		return
	}

	person, err := cc.repo.UpdatePerson(uint(personID), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Person")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, person)
}

// DeletePerson removes a person from the landing page.
func (cc *ContentController) DeletePerson(ctx *gin.Context) {
	personID, err := strconv.ParseUint(ctx.Param("person_id"), 10, 32)
	if err != nil {
		responses.BadRequestJSON(ctx, "invalid person ID")
		return
	}
	if err := cc.repo.DeletePerson(uint(personID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFoundJSON(ctx, "Person")
			return
		}
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.SuccessJSON(ctx, http.StatusOK, "Person deleted successfully", nil)
}

// UploadImage godoc
// @Summary Upload an image asset
// @Description Accepts a multipart "image" field, stores it under the public uploads directory with a random name, and records it for reuse.
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} SiteImage
// @Failure 422 {object} responses.ErrorResponse "Unsupported file type or too large"
// @Router /admin/content/images [post]
// @Security Bearer
func (cc *ContentController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		responses.BadRequestJSON(ctx, "missing image file")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		ctx.JSON(http.StatusUnprocessableEntity, responses.ErrorResponse{Error: "image exceeds the 5 MiB upload limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		ctx.JSON(http.StatusUnprocessableEntity, responses.ErrorResponse{Error: fmt.Sprintf("unsupported image type '%s'", ext)})
		return
	}

	if err := os.MkdirAll(cc.appConfig.App.UploadDir, 0o755); err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}

	fileName := uuid.NewString() + ext
	destination := filepath.Join(cc.appConfig.App.UploadDir, fileName)
	if err := ctx.SaveUploadedFile(fileHeader, destination); err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}

	image := &SiteImage{
		FileName:     fileName,
		OriginalName: fileHeader.Filename,
		Path:         "/public/uploads/" + fileName,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		SizeBytes:    fileHeader.Size,
	}
	if adminID, err := mw.GetAdminIDFromContext(ctx); err == nil {
		image.UploadedBy = adminID
	}
	if err := cc.repo.RecordImage(image); err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, image)
}

// GetImages lists uploaded assets newest first.
func (cc *ContentController) GetImages(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	images, total, err := cc.repo.GetImages(page, limit)
	if err != nil {
		responses.InternalErrorJSON(ctx, err)
		return
	}
	responses.PaginatedJSON(ctx, images, page, limit, total)
}

// ProxyImage godoc
// @Summary Fetch a remote image through the backend
// @Description Sidesteps browser CORS restrictions for externally-hosted images. The upstream fetch times out after ten seconds.
// @Tags content
// @Produce octet-stream
// @Param url query string true "Remote image URL"
// @Success 200
// @Failure 400 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse "Upstream fetch failed"
// @Router /images/proxy [get]
func (cc *ContentController) ProxyImage(ctx *gin.Context) {
	rawURL := ctx.Query("url")
	if rawURL == "" {
		responses.BadRequestJSON(ctx, "missing url parameter")
		return
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		responses.BadRequestJSON(ctx, "url must be an absolute http(s) URL")
		return
	}

	resp, err := cc.proxyClient.Get(parsed.String())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, responses.ErrorResponse{Error: "failed to fetch remote image"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctx.JSON(http.StatusBadGateway, responses.ErrorResponse{Error: fmt.Sprintf("upstream returned status %d", resp.StatusCode)})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, nil)
}
