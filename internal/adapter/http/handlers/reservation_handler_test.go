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

func newReservationRouter(h *ReservationHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/reservations/:id", h.GetReservation)
	r.POST("/v1/reservations/:id/modify", h.ModifyReservation)
	r.PATCH("/v1/reservations/:id/status", h.UpdateReservationStatus)
	return r
}

func TestReservationHandler_GetReservation(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		router := newReservationRouter(NewReservationHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "res-1").Return(entities.Reservation{
			ID:          "res-1",
			OrderNumber: 1042,
			Date:        "2026-03-12",
			Status:      entities.ReservationStatusPending,
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/v1/reservations/res-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body response.ReservationResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.OrderNumber != 1042 {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		router := newReservationRouter(NewReservationHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "res-9").Return(entities.Reservation{}, usecase.ErrReservationNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/v1/reservations/res-9", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if httpErr.Code != "RESERVATION_NOT_FOUND" {
			t.Fatalf("unexpected code %q", httpErr.Code)
		}
	})
}

func TestReservationHandler_ModifyReservation(t *testing.T) {
	t.Run("push_date success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		router := newReservationRouter(NewReservationHandler(uc))

		uc.EXPECT().
			Modify(gomock.Any(), "res-1", usecase.ModifyPushDate, "2026-03-14", "").
			Return(entities.Reservation{ID: "res-1", Date: "2026-03-14"}, nil)

		payload := []byte(`{"action":"push_date","new_date":"2026-03-14"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/reservations/res-1/modify", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		router := newReservationRouter(NewReservationHandler(uc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/reservations/res-1/modify", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown action never reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		router := newReservationRouter(NewReservationHandler(uc))

		payload := []byte(`{"action":"upgrade"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/reservations/res-1/modify", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if httpErr.Code != "INVALID_MODIFY_ACTION" {
			t.Fatalf("unexpected code %q", httpErr.Code)
		}
	})

	t.Run("push beyond the limit is a 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		router := newReservationRouter(NewReservationHandler(uc))

		uc.EXPECT().
			Modify(gomock.Any(), "res-1", usecase.ModifyPushDate, "2026-03-20", "").
			Return(entities.Reservation{}, usecase.ErrPushDateTooFar)

		payload := []byte(`{"action":"push_date","new_date":"2026-03-20"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/reservations/res-1/modify", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if httpErr.Code != "PUSH_DATE_TOO_FAR" {
			t.Fatalf("unexpected code %q", httpErr.Code)
		}
	})

	t.Run("full target date is a 409 with the reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		router := newReservationRouter(NewReservationHandler(uc))

		uc.EXPECT().
			Modify(gomock.Any(), "res-1", usecase.ModifyPushDate, "2026-03-13", "").
			Return(entities.Reservation{}, &usecase.DateUnavailableError{Reason: "this date is fully booked"})

		payload := []byte(`{"action":"push_date","new_date":"2026-03-13"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/reservations/res-1/modify", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if httpErr.Code != "DATE_UNAVAILABLE" {
			t.Fatalf("unexpected code %q", httpErr.Code)
		}
	})
}

func TestReservationHandler_UpdateReservationStatus(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		router := newReservationRouter(NewReservationHandler(uc))

		uc.EXPECT().
			UpdateStatus(gomock.Any(), "res-1", entities.ReservationStatusConfirmed).
			Return(entities.Reservation{ID: "res-1", Status: entities.ReservationStatusConfirmed}, nil)

		payload := []byte(`{"status":"confirmed"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/v1/reservations/res-1/status", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid transition is a 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		router := newReservationRouter(NewReservationHandler(uc))

		uc.EXPECT().
			UpdateStatus(gomock.Any(), "res-1", entities.ReservationStatusConfirmed).
			Return(entities.Reservation{}, usecase.ErrInvalidTransition)

		payload := []byte(`{"status":"confirmed"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/v1/reservations/res-1/status", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if httpErr.Code != "INVALID_STATUS_TRANSITION" {
			t.Fatalf("unexpected code %q", httpErr.Code)
		}
	})
}
