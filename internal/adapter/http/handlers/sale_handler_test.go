package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"revenda_xpto/internal/adapter/http/handlers/mocks"
	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func saleRouter(h *SaleHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/sales", h.ListSales)
	r.POST("/v1/sales", h.CreateSale)
	r.GET("/v1/sales/available-vehicles", h.ListAvailableVehicles)
	r.GET("/v1/sales/:id", h.GetSale)
	r.PUT("/v1/sales/:id", h.UpdateSale)
	r.DELETE("/v1/sales/:id", h.DeleteSale)
	r.PATCH("/v1/sales/:id/payment/confirm", h.ConfirmPayment)
	r.POST("/v1/sales/:id/payment/notify", h.NotifyPayment)
	r.PATCH("/v1/sales/:id/payment/cancel", h.CancelPayment)
	r.PATCH("/v1/sales/:id/reopen", h.ReopenSale)
	r.GET("/v1/sales/:id/transitions", h.ListTransitions)
	return r
}

func TestSaleHandler_CreateSale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cpf with punctuation rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		body := `{"vehicle_id":"v1","buyer_cpf":"123.456.789-01","sale_price":50000,"payment_code":"pay-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("vehicle not available returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		uc.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return(usecase.TransitionResult{}, usecase.ErrVehicleNotAvailable)

		body := `{"vehicle_id":"v1","buyer_cpf":"12345678901","sale_price":50000,"payment_code":"pay-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("partial failure returns 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		uc.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return(usecase.TransitionResult{}, usecase.ErrVehicleStatusOutOfSync)

		body := `{"vehicle_id":"v1","buyer_cpf":"12345678901","sale_price":50000,"payment_code":"pay-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["code"] != "VEHICLE_STATUS_OUT_OF_SYNC" {
			t.Fatalf("unexpected code: %v", resp["code"])
		}
	})

	t.Run("success returns 201 with both snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		result := usecase.TransitionResult{
			Sale: entities.Sale{
				ID:            "s1",
				VehicleID:     "v1",
				BuyerCPF:      "12345678901",
				SalePrice:     decimal.NewFromInt(50000),
				PaymentCode:   "pay-1",
				PaymentStatus: entities.PaymentStatusPending,
			},
			Vehicle: entities.Vehicle{ID: "v1", Status: entities.VehicleStatusReserved},
		}
		uc.EXPECT().CreateSale(gomock.Any(), entities.SaleCreate{
			VehicleID:   "v1",
			BuyerCPF:    "12345678901",
			SalePrice:   decimal.NewFromInt(50000),
			PaymentCode: "pay-1",
		}).Return(result, nil)

		body := `{"vehicle_id":"v1","buyer_cpf":"12345678901","sale_price":50000,"payment_code":"pay-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Sale struct {
				ID       string `json:"id"`
				Editable bool   `json:"editable"`
			} `json:"sale"`
			Vehicle struct {
				Status string `json:"status"`
			} `json:"vehicle"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp.Sale.ID != "s1" || !resp.Sale.Editable || resp.Vehicle.Status != "RESERVED" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func TestSaleHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	result := usecase.TransitionResult{
		Sale:    entities.Sale{ID: "s1", PaymentStatus: entities.PaymentStatusPaid},
		Vehicle: entities.Vehicle{ID: "v1", Status: entities.VehicleStatusSold},
	}

	t.Run("confirm payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		uc.EXPECT().ConfirmPayment(gomock.Any(), "s1").Return(result, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sales/s1/payment/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("webhook notify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		uc.EXPECT().ConfirmPaymentViaWebhook(gomock.Any(), "s1").Return(result, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sales/s1/payment/notify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel on non-pending sale returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		uc.EXPECT().CancelPayment(gomock.Any(), "s1").Return(usecase.TransitionResult{}, usecase.ErrSaleNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sales/s1/payment/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reopen pending sale returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		uc.EXPECT().ReopenSale(gomock.Any(), "s1").Return(usecase.TransitionResult{}, usecase.ErrSaleNotFinalized)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sales/s1/reopen", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSaleHandler_GetSale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		uc.EXPECT().GetSale(gomock.Any(), "s1").Return(entities.Sale{}, usecase.ErrSaleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/sales/s1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("paid sale is not editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		uc.EXPECT().GetSale(gomock.Any(), "s1").Return(entities.Sale{ID: "s1", PaymentStatus: entities.PaymentStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/sales/s1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Editable bool `json:"editable"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp.Editable {
			t.Fatalf("expected editable=false for paid sale")
		}
	})
}

func TestSaleHandler_DeleteSale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		uc.EXPECT().DeleteSale(gomock.Any(), "s1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/sales/s1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("finalized sale returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		uc.EXPECT().DeleteSale(gomock.Any(), "s1").Return(usecase.ErrSaleFinalized)

		req := httptest.NewRequest(http.MethodDelete, "/v1/sales/s1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSaleHandler_ListAvailableVehicles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
	r := saleRouter(NewSaleHandler(uc))

	uc.EXPECT().ListAvailableVehicles(gomock.Any()).Return([]entities.Vehicle{
		{ID: "v1", Status: entities.VehicleStatusAvailable},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/available-vehicles", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "v1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSaleHandler_ListTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
	r := saleRouter(NewSaleHandler(uc))

	uc.EXPECT().ListTransitions(gomock.Any(), "s1").Return([]entities.StatusTransition{
		{ID: "t1", SaleID: "s1", Action: entities.TransitionActionConfirmPayment, StepsCompleted: 2},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/s1/transitions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(resp) != 1 || resp[0]["action"] != "confirm_payment" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSaleHandler_UpdateSale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad payment status token rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/sales/s1", bytes.NewBufferString(`{"payment_status":"REFUNDED"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleWorkflowUseCase(ctrl)
		r := saleRouter(NewSaleHandler(uc))

		uc.EXPECT().UpdateSale(gomock.Any(), "s1", gomock.Any()).Return(entities.Sale{ID: "s1", PaymentStatus: entities.PaymentStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/sales/s1", bytes.NewBufferString(`{"sale_price":60000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
