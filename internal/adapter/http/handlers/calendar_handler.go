package handlers

import (
	"errors"
	"log"
	"net/http"

	request "maison_brioche/internal/adapter/http/dto/request"
	response "maison_brioche/internal/adapter/http/dto/response"
	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase"
	"maison_brioche/pkg"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles the staff calendar override surface.

type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

// SetOverride creates or replaces the override for a date.
//
// @Summary      Set calendar override
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        date     path      string                          true  "Date (YYYY-MM-DD)"
// @Param        payload  body      request.CalendarOverrideRequest true  "Override"
// @Success      200      {object}  response.CalendarOverrideResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /calendar/{date} [put]
func (h *CalendarHandler) SetOverride(c *gin.Context) {
	date := c.Param("date")

	var payload request.CalendarOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_OVERRIDE_INPUT", "Invalid override payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	o, err := h.usecase.SetOverride(c.Request.Context(), date, entities.OverrideStatus(payload.Status), payload.Capacity, payload.Note)
	if err != nil {
		log.Printf("[calendar][handler] set override failed date=%s err=%v", date, err)
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalendarOverride(o))
}

// ClearOverride removes the override for a date, restoring default rules.
//
// @Summary      Clear calendar override
// @Tags         calendar
// @Param        date  path  string  true  "Date (YYYY-MM-DD)"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Router       /calendar/{date} [delete]
func (h *CalendarHandler) ClearOverride(c *gin.Context) {
	date := c.Param("date")

	if err := h.usecase.ClearOverride(c.Request.Context(), date); err != nil {
		log.Printf("[calendar][handler] clear override failed date=%s err=%v", date, err)
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListOverrides returns the overrides in a date range.
//
// @Summary      List calendar overrides
// @Tags         calendar
// @Produce      json
// @Param        from  query  string  true  "Range start (YYYY-MM-DD)"
// @Param        to    query  string  true  "Range end (YYYY-MM-DD)"
// @Success      200  {array}   response.CalendarOverrideResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /calendar [get]
func (h *CalendarHandler) ListOverrides(c *gin.Context) {
	overrides, err := h.usecase.ListOverrides(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalendarOverrides(overrides))
}

func mapCalendarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date; expected YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid date range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOverride):
		return pkg.NewDomainErrorSimple("INVALID_OVERRIDE_INPUT", "Invalid override payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
