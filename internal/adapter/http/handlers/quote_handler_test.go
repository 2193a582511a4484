package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	response "maison_brioche/internal/adapter/http/dto/response"
	"maison_brioche/internal/adapter/http/handlers/mocks"
	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase"
	"maison_brioche/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(h *QuoteHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/quotes", h.CreateQuoteRequest)
	r.GET("/v1/quotes/:id", h.GetQuoteRequest)
	r.PATCH("/v1/quotes/:id/quote", h.AttachQuote)
	r.PATCH("/v1/quotes/:id/approve", h.ApproveQuoteRequest)
	r.PATCH("/v1/quotes/:id/decline", h.DeclineQuoteRequest)
	r.PATCH("/v1/quotes/:id/override-capacity", h.SetOverrideCapacity)
	return r
}

func TestQuoteHandler_CreateQuoteRequest(t *testing.T) {
	validPayload := []byte(`{
		"kind": "wedding",
		"requested_date": "2026-06-20",
		"fulfillment_type": "delivery",
		"customer": {"name": "Ana", "email": "ana@example.com"},
		"event_details": "three-tier, lavender glaze"
	}`)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		router := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{
			ID:            "qr-1",
			RequestNumber: 2042,
			Kind:          entities.QuoteKindWedding,
			Status:        entities.QuoteStatusPending,
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBuffer(validPayload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body response.QuoteRequestResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.RequestNumber != 2042 || body.Status != "pending" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("missing fields never reach the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		router := newQuoteRouter(NewQuoteHandler(uc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"kind":"wedding"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuoteRequest(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		router := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "qr-9").Return(entities.QuoteRequest{}, usecase.ErrQuoteNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/v1/quotes/qr-9", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if httpErr.Code != "QUOTE_REQUEST_NOT_FOUND" {
			t.Fatalf("unexpected code %q", httpErr.Code)
		}
	})
}

func TestQuoteHandler_AttachQuote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		router := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().AttachQuote(gomock.Any(), "qr-1", 150.0).Return(entities.QuoteRequest{
			ID:     "qr-1",
			Status: entities.QuoteStatusQuoted,
			Quote:  &entities.Quote{Price: 150, SessionID: "cs_quote"},
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/v1/quotes/qr-1/quote", bytes.NewBufferString(`{"price": 150}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body response.QuoteRequestResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Status != "quoted" || body.Quote == nil {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("converted request is a 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		router := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().AttachQuote(gomock.Any(), "qr-1", 150.0).Return(entities.QuoteRequest{}, usecase.ErrQuoteAlreadyConverted)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/v1/quotes/qr-1/quote", bytes.NewBufferString(`{"price": 150}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing price never reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		router := newQuoteRouter(NewQuoteHandler(uc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/v1/quotes/qr-1/quote", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_StatusPatches(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		router := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), "qr-1").Return(entities.QuoteRequest{ID: "qr-1", Status: entities.QuoteStatusApproved}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/v1/quotes/qr-1/approve", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("decline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		router := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().Decline(gomock.Any(), "qr-1").Return(entities.QuoteRequest{ID: "qr-1", Status: entities.QuoteStatusDeclined}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/v1/quotes/qr-1/decline", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_SetOverrideCapacity(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		router := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().SetOverrideCapacity(gomock.Any(), "qr-1", true).Return(entities.QuoteRequest{ID: "qr-1", OverrideCapacity: true}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/v1/quotes/qr-1/override-capacity", bytes.NewBufferString(`{"override": true}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.QuoteRequestResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !body.OverrideCapacity {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("missing flag is a 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		router := newQuoteRouter(NewQuoteHandler(uc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/v1/quotes/qr-1/override-capacity", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
