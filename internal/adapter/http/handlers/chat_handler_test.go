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

func TestChatHandler_PostMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.PostMessage)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.PostMessage)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank message maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.PostMessage)

		uc.EXPECT().ProcessMessage(gomock.Any(), "u1", "u1", "").Return(usecase.ChatResult{}, usecase.ErrEmptyMessage)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"user_id":"u1","message":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.PostMessage)

		uc.EXPECT().ProcessMessage(gomock.Any(), "u1", "s1", "hi").Return(usecase.ChatResult{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"user_id":"u1","session_id":"s1","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success carries reply, products and cart summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.PostMessage)

		uc.EXPECT().ProcessMessage(gomock.Any(), "u1", "s1", "add 2 tees").Return(usecase.ChatResult{
			ResponseText: "Added two Classic Tees!",
			Products:     []entities.Product{{ID: "1", Name: "Classic Tee", Price: 25}},
			CartSummary: &entities.CartSummary{
				Subtotal: 50, Shipping: 5, Total: 55, ItemCount: 2,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"user_id":"u1","session_id":"s1","message":"add 2 tees"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Response    string `json:"response"`
			Products    []any  `json:"products"`
			CartSummary *struct {
				Total float64 `json:"total"`
			} `json:"cart_summary"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Response != "Added two Classic Tees!" {
			t.Fatalf("unexpected reply: %q", body.Response)
		}
		if len(body.Products) != 1 {
			t.Fatalf("expected 1 product, got %d", len(body.Products))
		}
		if body.CartSummary == nil || body.CartSummary.Total != 55 {
			t.Fatalf("unexpected cart summary: %+v", body.CartSummary)
		}
	})

	t.Run("text-only reply omits the lookup fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.PostMessage)

		uc.EXPECT().ProcessMessage(gomock.Any(), "u1", "u1", "hello").Return(usecase.ChatResult{
			ResponseText: "Hi there!",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"user_id":"u1","message":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if _, ok := body["products"]; ok {
			t.Fatal("products must be omitted when empty")
		}
		if _, ok := body["cart_summary"]; ok {
			t.Fatal("cart_summary must be omitted when absent")
		}
	})
}
