package handlers

import (
	"context"
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
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles custom and wedding inquiry requests.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuoteRequest submits a new inquiry.
//
// @Summary      Submit a quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateQuoteRequest  true  "Inquiry"
// @Success      201      {object}  response.QuoteRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuoteRequest(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[quote][handler] create failed err=%v", err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteRequest(q))
}

// GetQuoteRequest returns an inquiry by id.
//
// @Summary      Get quote request
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuoteRequest(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

// AttachQuote prices a request and creates its payment link.
//
// @Summary      Attach a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Quote request id"
// @Param        payload  body      request.AttachQuoteRequest true  "Pre-tax price"
// @Success      200      {object}  response.QuoteRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /quotes/{id}/quote [patch]
func (h *QuoteHandler) AttachQuote(c *gin.Context) {
	id := c.Param("id")

	var payload request.AttachQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.AttachQuote(c.Request.Context(), id, payload.Price)
	if err != nil {
		log.Printf("[quote][handler] attach failed id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

// ApproveQuoteRequest marks a request approved.
//
// @Summary      Approve quote request
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/approve [patch]
func (h *QuoteHandler) ApproveQuoteRequest(c *gin.Context) {
	h.patchStatus(c, h.usecase.Approve)
}

// DeclineQuoteRequest marks a request declined.
//
// @Summary      Decline quote request
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/decline [patch]
func (h *QuoteHandler) DeclineQuoteRequest(c *gin.Context) {
	h.patchStatus(c, h.usecase.Decline)
}

// SetOverrideCapacity toggles the capacity bypass for the eventual conversion.
//
// @Summary      Set capacity override
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Quote request id"
// @Param        payload  body      request.OverrideCapacityRequest true  "Override flag"
// @Success      200      {object}  response.QuoteRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /quotes/{id}/override-capacity [patch]
func (h *QuoteHandler) SetOverrideCapacity(c *gin.Context) {
	id := c.Param("id")

	var payload request.OverrideCapacityRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Override == nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SetOverrideCapacity(c.Request.Context(), id, *payload.Override)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

func (h *QuoteHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.QuoteRequest, error),
) {
	q, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteRequest), errors.Is(err, usecase.ErrInvalidDate), errors.Is(err, usecase.ErrInvalidFulfillmentType):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuotePrice):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_PRICE", "Quote price must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyConverted):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_CONVERTED", "Quote request was already converted", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotQuotable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_QUOTABLE", "Quote request cannot be quoted in its current status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
