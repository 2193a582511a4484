package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	response "maison_brioche/internal/adapter/http/dto/response"
	"maison_brioche/internal/adapter/http/handlers/mocks"
	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase"
	mock_interfaces "maison_brioche/internal/usecase/interfaces/mocks"
	"maison_brioche/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReconcileRouter(h *ReconciliationHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/checkout", h.CreateCheckout)
	r.POST("/v1/reservations", h.FinalizeReservations)
	r.POST("/v1/reconcile", h.Reconcile)
	r.POST("/v1/webhooks/payment", h.PaymentWebhook)
	return r
}

func TestReconciliationHandler_CreateCheckout(t *testing.T) {
	validPayload := []byte(`{
		"customer": {"name": "Ana", "email": "ana@example.com"},
		"items": [{"product_name": "Brioche Loaf", "price": 48.50, "date": "2026-03-13", "fulfillment_type": "pickup"}]
	}`)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		router := newReconcileRouter(NewReconciliationHandler(uc, gateway))

		uc.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CheckoutInput) (usecase.CheckoutResult, error) {
				if len(in.Items) != 1 || in.Items[0].ProductName != "Brioche Loaf" {
					t.Fatalf("unexpected input %+v", in)
				}
				return usecase.CheckoutResult{SessionID: "cs_new", URL: "https://pay.example/cs_new"}, nil
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBuffer(validPayload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body response.CheckoutResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.SessionID != "cs_new" || body.URL == "" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("malformed payload never reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		router := newReconcileRouter(NewReconciliationHandler(uc, gateway))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(`{"items": []}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty cart maps to EMPTY_CART", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		router := newReconcileRouter(NewReconciliationHandler(uc, gateway))

		uc.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrEmptyCheckoutCart)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBuffer(validPayload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if httpErr.Code != "EMPTY_CART" {
			t.Fatalf("unexpected code %q", httpErr.Code)
		}
	})
}

func TestReconciliationHandler_FinalizeReservations(t *testing.T) {
	t.Run("processed session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		router := newReconcileRouter(NewReconciliationHandler(uc, gateway))

		uc.EXPECT().ReconcileSession(gomock.Any(), "cs_cart").Return(usecase.ReconcileResult{
			Outcome:      usecase.OutcomeProcessed,
			Reservations: []entities.Reservation{{ID: "res-1", OrderNumber: 1101}},
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/reservations?session_id=cs_cart", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body response.ReconcileResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Outcome != "processed" || len(body.Reservations) != 1 {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("missing session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		router := newReconcileRouter(NewReconciliationHandler(uc, gateway))

		uc.EXPECT().ReconcileSession(gomock.Any(), "").Return(usecase.ReconcileResult{}, usecase.ErrInvalidSessionID)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/reservations", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if httpErr.Code != "INVALID_SESSION_ID" {
			t.Fatalf("unexpected code %q", httpErr.Code)
		}
	})
}

func TestReconciliationHandler_Reconcile(t *testing.T) {
	t.Run("by quote request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		router := newReconcileRouter(NewReconciliationHandler(uc, gateway))

		uc.EXPECT().ReconcileQuote(gomock.Any(), "qr-1").Return(usecase.ReconcileResult{
			Outcome: usecase.OutcomeNotCompleted,
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/reconcile?custom_request_id=qr-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.ReconcileResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Outcome != "not_completed" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("unknown quote request is a 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		router := newReconcileRouter(NewReconciliationHandler(uc, gateway))

		uc.EXPECT().ReconcileQuote(gomock.Any(), "qr-9").Return(usecase.ReconcileResult{}, usecase.ErrQuoteNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/reconcile?custom_request_id=qr-9", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("by session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		router := newReconcileRouter(NewReconciliationHandler(uc, gateway))

		uc.EXPECT().ReconcileSession(gomock.Any(), "cs_stored").Return(usecase.ReconcileResult{
			Outcome:          usecase.OutcomeAlreadyProcessed,
			AlreadyProcessed: true,
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/reconcile?session_id=cs_stored", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReconciliationHandler_PaymentWebhook(t *testing.T) {
	payload := []byte(`{"type":"checkout.session.completed"}`)

	t.Run("completed session triggers reconciliation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		router := newReconcileRouter(NewReconciliationHandler(uc, gateway))

		gateway.EXPECT().ParseWebhookEvent(payload, "sig_valid").Return(entities.WebhookEvent{
			Type:      "checkout.session.completed",
			SessionID: "cs_hook",
		}, nil)
		uc.EXPECT().ReconcileSession(gomock.Any(), "cs_hook").Return(usecase.ReconcileResult{
			Outcome: usecase.OutcomeProcessed,
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/webhooks/payment", bytes.NewBuffer(payload))
		req.Header.Set("Stripe-Signature", "sig_valid")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("bad signature is a 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		router := newReconcileRouter(NewReconciliationHandler(uc, gateway))

		gateway.EXPECT().ParseWebhookEvent(payload, "sig_bad").Return(entities.WebhookEvent{}, pkg.NewDomainErrorSimple("INVALID_WEBHOOK_SIGNATURE", "bad signature", http.StatusBadRequest))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/webhooks/payment", bytes.NewBuffer(payload))
		req.Header.Set("Stripe-Signature", "sig_bad")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if httpErr.Code != "INVALID_WEBHOOK_SIGNATURE" {
			t.Fatalf("unexpected code %q", httpErr.Code)
		}
	})

	t.Run("unhandled event types are acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		router := newReconcileRouter(NewReconciliationHandler(uc, gateway))

		other := []byte(`{"type":"invoice.paid"}`)
		gateway.EXPECT().ParseWebhookEvent(other, gomock.Any()).Return(entities.WebhookEvent{Type: "invoice.paid"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/webhooks/payment", bytes.NewBuffer(other))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if received, ok := body["received"].(bool); !ok || !received {
			t.Fatalf("expected received ack, got %v", body)
		}
	})
}
