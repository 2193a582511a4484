package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "maison_brioche/internal/adapter/http/dto/request"
	response "maison_brioche/internal/adapter/http/dto/response"
	"maison_brioche/internal/usecase"
	"maison_brioche/internal/usecase/interfaces"
	"maison_brioche/pkg"

	"github.com/gin-gonic/gin"
)

const webhookSignatureHeader = "Stripe-Signature"

// ReconciliationHandler handles the payment path: direct checkout, cart
// finalization after the gateway redirect, staff reconcile retries and the
// signed gateway webhook.

type ReconciliationHandler struct {
	usecase usecase.IReconciliationUseCase
	gateway interfaces.IPaymentGateway
}

func NewReconciliationHandler(uc usecase.IReconciliationUseCase, gateway interfaces.IPaymentGateway) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc, gateway: gateway}
}

// CreateCheckout persists the cart and creates the gateway checkout session.
//
// @Summary      Create checkout session
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CheckoutRequest  true  "Cart"
// @Success      201      {object}  response.CheckoutResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /checkout [post]
func (h *ReconciliationHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateCheckout(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[reconcile][handler] checkout failed err=%v", err)
		appErr := mapReconcileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckout(result))
}

// FinalizeReservations replays a paid cart into reservations. This is the
// gateway success-redirect landing call.
//
// @Summary      Finalize reservations for a paid session
// @Tags         reservations
// @Produce      json
// @Param        session_id  query     string  true  "Checkout session id"
// @Success      200         {object}  response.ReconcileResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /reservations [post]
func (h *ReconciliationHandler) FinalizeReservations(c *gin.Context) {
	h.reconcileSession(c, c.Query("session_id"))
}

// Reconcile is the staff retry: by session id or by quote request id.
//
// @Summary      Reconcile a payment
// @Tags         reconcile
// @Produce      json
// @Param        session_id         query     string  false  "Checkout session id"
// @Param        custom_request_id  query     string  false  "Quote request id"
// @Success      200  {object}  response.ReconcileResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /reconcile [post]
func (h *ReconciliationHandler) Reconcile(c *gin.Context) {
	if requestID := c.Query("custom_request_id"); requestID != "" {
		log.Printf("[reconcile][handler] reconcile by request start request_id=%s", requestID)
		result, err := h.usecase.ReconcileQuote(c.Request.Context(), requestID)
		if err != nil {
			log.Printf("[reconcile][handler] reconcile by request failed request_id=%s err=%v", requestID, err)
			appErr := mapReconcileError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromReconcileResult(result))
		return
	}

	h.reconcileSession(c, c.Query("session_id"))
}

// PaymentWebhook verifies the gateway signature and funnels completed
// checkout sessions into reconciliation. Unhandled event types are
// acknowledged so the gateway stops retrying them.
//
// @Summary      Payment gateway webhook
// @Tags         reconcile
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.ReconcileResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /webhooks/payment [post]
func (h *ReconciliationHandler) PaymentWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event, err := h.gateway.ParseWebhookEvent(payload, c.GetHeader(webhookSignatureHeader))
	if err != nil {
		log.Printf("[reconcile][handler] webhook signature rejected err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if event.SessionID == "" {
		log.Printf("[reconcile][handler] webhook ignored type=%s", event.Type)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	log.Printf("[reconcile][handler] webhook start type=%s session_id=%s", event.Type, event.SessionID)
	h.reconcileSession(c, event.SessionID)
}

func (h *ReconciliationHandler) reconcileSession(c *gin.Context, sessionID string) {
	result, err := h.usecase.ReconcileSession(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[reconcile][handler] reconcile failed session_id=%s err=%v", sessionID, err)
		appErr := mapReconcileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReconcileResult(result))
}

func mapReconcileError(err error) *pkg.AppError {
	var unavailable *usecase.DateUnavailableError

	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "A session_id query parameter is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyCheckoutCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Checkout cart is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date; expected YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFulfillmentType):
		return pkg.NewDomainErrorSimple("INVALID_FULFILLMENT_TYPE", "Fulfillment type must be pickup or delivery", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReservation):
		return pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotQuoted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_QUOTED", "Quote request has no quote attached", http.StatusConflict)
	case errors.As(err, &unavailable):
		return pkg.NewDomainErrorSimple("DATE_UNAVAILABLE", unavailable.Error(), http.StatusConflict)
	case errors.Is(err, interfaces.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
