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

// CalendarHandler exposes academic calendar endpoints.
type CalendarHandler struct {
	calendar *service.CalendarService
}

// NewCalendarHandler constructs CalendarHandler.
func NewCalendarHandler(calendar *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// PublicList godoc
// @Summary List academic calendar items
// @Tags Calendar
// @Produce json
// @Param search query string false "Search title and description"
// @Param category query string false "Filter by category"
// @Param type query string false "Filter by type"
// @Success 200 {object} response.Envelope
// @Router /calendar [get]
func (h *CalendarHandler) PublicList(c *gin.Context) {
	query := models.CalendarQuery{
		Search:   strings.TrimSpace(c.Query("search")),
		Category: c.Query("category"),
		Type:     c.Query("type"),
	}
	items := h.calendar.PublicList(c.Request.Context(), query)
	response.JSON(c, http.StatusOK, items)
}

// List godoc
// @Summary List calendar items for the dashboard
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/calendar [get]
func (h *CalendarHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.calendar.List())
}

// Get godoc
// @Summary Get calendar item detail
// @Tags Calendar
// @Produce json
// @Param id path string true "Calendar item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/calendar/{id} [get]
func (h *CalendarHandler) Get(c *gin.Context) {
	item, err := h.calendar.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Create calendar item
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body service.CreateCalendarItemRequest true "Calendar payload"
// @Success 201 {object} response.Envelope
// @Router /admin/calendar [post]
func (h *CalendarHandler) Create(c *gin.Context) {
	var req service.CreateCalendarItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	item, err := h.calendar.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update calendar item
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path string true "Calendar item ID"
// @Param payload body service.UpdateCalendarItemRequest true "Calendar payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/calendar/{id} [put]
func (h *CalendarHandler) Update(c *gin.Context) {
	var req service.UpdateCalendarItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	item, err := h.calendar.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete calendar item
// @Tags Calendar
// @Param id path string true "Calendar item ID"
// @Success 204 {object} response.Envelope
// @Router /admin/calendar/{id} [delete]
func (h *CalendarHandler) Delete(c *gin.Context) {
	h.calendar.Delete(c.Request.Context(), c.Param("id"))
	response.NoContent(c)
}
