package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sorsu-bulan/campus-content-api/internal/models"
	"github.com/sorsu-bulan/campus-content-api/internal/service"
	appErrors "github.com/sorsu-bulan/campus-content-api/pkg/errors"
	"github.com/sorsu-bulan/campus-content-api/pkg/response"
)

// FacultyHandler exposes faculty roster and directory endpoints.
type FacultyHandler struct {
	faculty *service.FacultyService
	exports *service.ExportService
}

// NewFacultyHandler constructs FacultyHandler.
func NewFacultyHandler(faculty *service.FacultyService, exports *service.ExportService) *FacultyHandler {
	return &FacultyHandler{faculty: faculty, exports: exports}
}

// PublicList godoc
// @Summary List the public faculty directory
// @Tags Faculty
// @Produce json
// @Param search query string false "Search name, bio and specializations"
// @Param department query string false "Filter by department"
// @Success 200 {object} response.Envelope
// @Router /faculty [get]
func (h *FacultyHandler) PublicList(c *gin.Context) {
	query := models.FacultyQuery{
		Search:     strings.TrimSpace(c.Query("search")),
		Department: c.Query("department"),
	}
	items := h.faculty.PublicList(c.Request.Context(), query)
	response.JSON(c, http.StatusOK, items)
}

// PublicGet godoc
// @Summary Get a public faculty profile
// @Tags Faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /faculty/{id} [get]
func (h *FacultyHandler) PublicGet(c *gin.Context) {
	item, err := h.faculty.PublicGet(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// List godoc
// @Summary List the full faculty roster
// @Tags Faculty
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/faculty [get]
func (h *FacultyHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.faculty.List())
}

// Get godoc
// @Summary Get faculty detail
// @Tags Faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/faculty/{id} [get]
func (h *FacultyHandler) Get(c *gin.Context) {
	item, err := h.faculty.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Add a faculty member
// @Tags Faculty
// @Accept json
// @Produce json
// @Param payload body service.CreateFacultyRequest true "Faculty payload"
// @Success 201 {object} response.Envelope
// @Router /admin/faculty [post]
func (h *FacultyHandler) Create(c *gin.Context) {
	var req service.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	item, err := h.faculty.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update a faculty member
// @Tags Faculty
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID"
// @Param payload body service.UpdateFacultyRequest true "Faculty payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/faculty/{id} [put]
func (h *FacultyHandler) Update(c *gin.Context) {
	var req service.UpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	// Faculty accounts may only touch their own profile fields; status,
	// department and position stay admin-only.
	if claims := claimsFromContext(c); claims != nil && claims.Role == models.RoleFaculty {
		if claims.FacultyID != c.Param("id") {
			response.Error(c, appErrors.ErrForbidden)
			return
		}
		req.Status = nil
		req.Department = nil
		req.Position = nil
	}

	item, err := h.faculty.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete godoc
// @Summary Remove a faculty member
// @Tags Faculty
// @Param id path string true "Faculty ID"
// @Success 204 {object} response.Envelope
// @Router /admin/faculty/{id} [delete]
func (h *FacultyHandler) Delete(c *gin.Context) {
	h.faculty.Delete(c.Request.Context(), c.Param("id"))
	response.NoContent(c)
}

// Export godoc
// @Summary Export the faculty roster
// @Tags Faculty
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /admin/faculty/export [get]
func (h *FacultyHandler) Export(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	result, err := h.exports.ExportFaculty(format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+result.FileName)
	c.Data(http.StatusOK, result.ContentType, result.Body)
}
