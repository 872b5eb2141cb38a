package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"retail_agent/internal/adapter/http/handlers/mocks"
	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCartHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing product id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"user_id":"u1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("omitted quantity defaults to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "u1", "p1", 1, "M").Return(entities.Cart{UserID: "u1"}, nil)
		uc.EXPECT().GetSummary(gomock.Any(), "u1", "").Return(entities.CartSummary{Subtotal: 25, Shipping: 5, Total: 30, ItemCount: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"user_id":"u1","product_id":"p1","size":"M"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Total     float64 `json:"total"`
			ItemCount int     `json:"item_count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Total != 30 || body.ItemCount != 1 {
			t.Fatalf("unexpected summary: %+v", body)
		}
	})

	t.Run("unknown product maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "u1", "ghost", 2, "").Return(entities.Cart{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"user_id":"u1","product_id":"ghost","quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCartHandler_UpdateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("zero quantity removes the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cart/items", h.UpdateItem)

		uc.EXPECT().UpdateQuantity(gomock.Any(), "u1", "p1", 0, "M").Return(entities.Cart{UserID: "u1"}, nil)
		uc.EXPECT().GetSummary(gomock.Any(), "u1", "").Return(entities.CartSummary{}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cart/items", bytes.NewBufferString(`{"user_id":"u1","product_id":"p1","quantity":0,"size":"M"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing line maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cart/items", h.UpdateItem)

		uc.EXPECT().UpdateQuantity(gomock.Any(), "u1", "p1", 3, "").Return(entities.Cart{}, usecase.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cart/items", bytes.NewBufferString(`{"user_id":"u1","product_id":"p1","quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCartHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with discount preview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.GET("/v1/cart/:user_id", h.GetSummary)

		uc.EXPECT().GetSummary(gomock.Any(), "u1", "SAVE10").Return(entities.CartSummary{
			Subtotal: 100, Discount: 10, Total: 90, DiscountCode: "SAVE10", ItemCount: 2,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/cart/u1?code=SAVE10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Discount     float64 `json:"discount"`
			DiscountCode string  `json:"discount_code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Discount != 10 || body.DiscountCode != "SAVE10" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.GET("/v1/cart/:user_id", h.GetSummary)

		uc.EXPECT().GetSummary(gomock.Any(), "u1", "").Return(entities.CartSummary{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/cart/u1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCartHandler_ApplyDiscount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/:user_id/discount", h.ApplyDiscount)

		uc.EXPECT().ApplyDiscount(gomock.Any(), "u1", "SAVE10").Return(entities.DiscountValidation{
			Code: "SAVE10", Percent: 10, Amount: 8, Subtotal: 80,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/u1/discount", bytes.NewBufferString(`{"code":"SAVE10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Code   string  `json:"code"`
			Amount float64 `json:"amount"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Code != "SAVE10" || body.Amount != 8 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("expired code maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/:user_id/discount", h.ApplyDiscount)

		uc.EXPECT().ApplyDiscount(gomock.Any(), "u1", "OLD10").Return(entities.DiscountValidation{}, usecase.ErrDiscountExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/u1/discount", bytes.NewBufferString(`{"code":"OLD10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("missing code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/:user_id/discount", h.ApplyDiscount)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/u1/discount", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCartHandler_ClearCart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.DELETE("/v1/cart/:user_id", h.ClearCart)

		uc.EXPECT().Clear(gomock.Any(), "u1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/cart/u1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
