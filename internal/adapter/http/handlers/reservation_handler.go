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

var (
	errInvalidReservationPayload = pkg.NewDomainErrorSimple("INVALID_RESERVATION_INPUT", "Invalid reservation payload", http.StatusBadRequest)
)

// ReservationHandler handles HTTP requests for individual reservations:
// lookup, customer modify actions and staff status transitions.

type ReservationHandler struct {
	usecase usecase.IReservationUseCase
}

func NewReservationHandler(uc usecase.IReservationUseCase) *ReservationHandler {
	return &ReservationHandler{usecase: uc}
}

// GetReservation returns a reservation by id.
//
// @Summary      Get reservation
// @Tags         reservations
// @Produce      json
// @Param        id   path      string  true  "Reservation id"
// @Success      200  {object}  response.ReservationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id := c.Param("id")

	r, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(r))
}

// ModifyReservation applies a customer action: change_time, push_date or
// forfeit.
//
// @Summary      Modify reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Reservation id"
// @Param        payload  body      request.ModifyReservationRequest  true  "Modify action"
// @Success      200      {object}  response.ReservationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /reservations/{id}/modify [post]
func (h *ReservationHandler) ModifyReservation(c *gin.Context) {
	id := c.Param("id")

	var payload request.ModifyReservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReservationPayload.HTTPStatus, errInvalidReservationPayload.ToHTTPError())
		return
	}

	action := payload.ResolveAction()
	if action == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_MODIFY_ACTION", "Action must be change_time, push_date or forfeit", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[reservation][handler] modify start id=%s action=%s", id, action)
	r, err := h.usecase.Modify(c.Request.Context(), id, action, payload.NewDate, payload.NewTime)
	if err != nil {
		log.Printf("[reservation][handler] modify failed id=%s action=%s err=%v", id, action, err)
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(r))
}

// UpdateReservationStatus runs a staff status transition (confirm/cancel).
//
// @Summary      Update reservation status
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id       path      string                                  true  "Reservation id"
// @Param        payload  body      request.UpdateReservationStatusRequest  true  "Target status"
// @Success      200      {object}  response.ReservationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReservationPayload.HTTPStatus, errInvalidReservationPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.ReservationStatus(payload.Status))
	if err != nil {
		log.Printf("[reservation][handler] status update failed id=%s status=%s err=%v", id, payload.Status, err)
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(r))
}

func mapReservationError(err error) *pkg.AppError {
	var unavailable *usecase.DateUnavailableError

	switch {
	case errors.As(err, &unavailable):
		return pkg.NewDomainErrorSimple("DATE_UNAVAILABLE", unavailable.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrReservationNotFound):
		return pkg.NewDomainErrorSimple("RESERVATION_NOT_FOUND", "Reservation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPushDateTooFar):
		return pkg.NewDomainErrorSimple("PUSH_DATE_TOO_FAR", "Date can be pushed a maximum of 3 days", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPushDateNotForward):
		return pkg.NewDomainErrorSimple("PUSH_DATE_NOT_FORWARD", "New date must be after the current date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReservationNotModifiable):
		return pkg.NewDomainErrorSimple("RESERVATION_NOT_MODIFIABLE", "Reservation can no longer be modified", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date; expected YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFulfillmentType):
		return pkg.NewDomainErrorSimple("INVALID_FULFILLMENT_TYPE", "Fulfillment type must be pickup or delivery", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidModifyAction):
		return pkg.NewDomainErrorSimple("INVALID_MODIFY_ACTION", "Action must be change_time, push_date or forfeit", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReservation):
		return pkg.NewDomainErrorSimple("INVALID_RESERVATION_INPUT", "Invalid reservation payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
