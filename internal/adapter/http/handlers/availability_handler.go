package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	response "maison_brioche/internal/adapter/http/dto/response"
	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase"
	"maison_brioche/pkg"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler handles date availability queries.

type AvailabilityHandler struct {
	usecase usecase.IAvailabilityUseCase
}

func NewAvailabilityHandler(uc usecase.IAvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{usecase: uc}
}

// CheckAvailability is the customer-facing availability check.
//
// @Summary      Check date availability
// @Description  Answers whether a date can accept one more order for the given fulfillment type.
// @Tags         availability
// @Produce      json
// @Param        date              query  string  true   "Date (YYYY-MM-DD)"
// @Param        fulfillment_type  query  string  true   "pickup or delivery"
// @Param        exclude_request_id query string  false  "Quote request id to exclude from demand"
// @Success      200  {object}  response.AvailabilityResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /availability [get]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	h.check(c, h.usecase.IsAvailable)
}

// ProjectedAvailability is the staff variant that also counts outstanding
// quoted requests as demand.
//
// @Summary      Projected availability (staff)
// @Tags         availability
// @Produce      json
// @Param        date              query  string  true   "Date (YYYY-MM-DD)"
// @Param        fulfillment_type  query  string  true   "pickup or delivery"
// @Param        exclude_request_id query string  false  "Quote request id to exclude from demand"
// @Success      200  {object}  response.AvailabilityResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /availability/projected [get]
func (h *AvailabilityHandler) ProjectedAvailability(c *gin.Context) {
	h.check(c, h.usecase.ProjectedAvailability)
}

func (h *AvailabilityHandler) check(
	c *gin.Context,
	fn func(ctx context.Context, date string, ft entities.FulfillmentType, excludeRequestID string) (usecase.AvailabilityResult, error),
) {
	date := c.Query("date")
	ft := entities.FulfillmentType(c.Query("fulfillment_type"))
	excludeRequestID := c.Query("exclude_request_id")

	result, err := fn(c.Request.Context(), date, ft, excludeRequestID)
	if err != nil {
		log.Printf("[availability][handler] check failed date=%s type=%s err=%v", date, ft, err)
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAvailability(date, string(ft), result))
}

func mapAvailabilityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date; expected YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFulfillmentType):
		return pkg.NewDomainErrorSimple("INVALID_FULFILLMENT_TYPE", "Fulfillment type must be pickup or delivery", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
