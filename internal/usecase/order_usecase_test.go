package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots the summary and clears the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mocks.NewMockICartRepository(ctrl)
		products := mocks.NewMockIProductRepository(ctrl)
		orders := mocks.NewMockIOrderRepository(ctrl)
		cartUC := NewCartUseCase(carts, products, mocks.NewMockIDiscountRepository(ctrl))
		uc := NewOrderUseCase(orders, cartUC)

		carts.EXPECT().Get(ctx, "u1").Return(entities.Cart{
			UserID: "u1",
			Items:  []entities.CartItem{{ProductID: "1", Quantity: 2, Size: "M"}},
		}, nil)
		products.EXPECT().GetByID(gomock.Any(), "1").Return(testShirt, nil)
		orders.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, o entities.Order) (entities.Order, error) {
			return o, nil
		})
		carts.EXPECT().Delete(ctx, "u1").Return(nil)

		order, err := uc.Checkout(ctx, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID == "" {
			t.Fatal("expected a generated order id")
		}
		if order.Subtotal != 50 || order.Shipping != 5 || order.Total != 55 {
			t.Fatalf("unexpected totals: %+v", order)
		}
		if len(order.Items) != 1 || order.Items[0].Price != 25 || order.Items[0].ProductName != "Classic Tee" {
			t.Fatalf("expected price snapshot on order line, got %+v", order.Items)
		}
		if order.Status != entities.OrderStatusConfirmed || order.PaymentStatus != entities.PaymentStatusPending {
			t.Fatalf("unexpected statuses: %+v", order)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mocks.NewMockICartRepository(ctrl)
		cartUC := NewCartUseCase(carts, mocks.NewMockIProductRepository(ctrl), mocks.NewMockIDiscountRepository(ctrl))
		uc := NewOrderUseCase(mocks.NewMockIOrderRepository(ctrl), cartUC)

		carts.EXPECT().Get(ctx, "u1").Return(entities.Cart{UserID: "u1"}, nil)

		if _, err := uc.Checkout(ctx, "u1"); !errors.Is(err, ErrCartEmpty) {
			t.Fatalf("expected ErrCartEmpty, got %v", err)
		}
	})

	t.Run("order survives a failed cart clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mocks.NewMockICartRepository(ctrl)
		products := mocks.NewMockIProductRepository(ctrl)
		orders := mocks.NewMockIOrderRepository(ctrl)
		cartUC := NewCartUseCase(carts, products, mocks.NewMockIDiscountRepository(ctrl))
		uc := NewOrderUseCase(orders, cartUC)

		carts.EXPECT().Get(ctx, "u1").Return(entities.Cart{
			UserID: "u1",
			Items:  []entities.CartItem{{ProductID: "1", Quantity: 1, Size: "M"}},
		}, nil)
		products.EXPECT().GetByID(gomock.Any(), "1").Return(testShirt, nil)
		orders.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, o entities.Order) (entities.Order, error) {
			return o, nil
		})
		carts.EXPECT().Delete(ctx, "u1").Return(errors.New("dynamo down"))

		if _, err := uc.Checkout(ctx, "u1"); err != nil {
			t.Fatalf("clear failure must not fail checkout: %v", err)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		orders.EXPECT().GetByID(ctx, "missing").Return(entities.Order{}, nil)

		if _, err := uc.GetByID(ctx, "missing"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewOrderUseCase(mocks.NewMockIOrderRepository(ctrl), nil)

		if _, err := uc.GetByID(ctx, "  "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})
}

func TestEstimatedDelivery(t *testing.T) {
	now := time.Now()
	cases := []struct {
		status entities.OrderStatus
		want   string
	}{
		{entities.OrderStatusConfirmed, "3-5 business days"},
		{entities.OrderStatusShipped, "Arriving in 1-2 business days"},
		{entities.OrderStatusDelivered, "Delivered"},
	}
	for _, tc := range cases {
		o := entities.Order{Status: tc.status, CreatedAt: now}
		if got := EstimatedDelivery(o); got != tc.want {
			t.Fatalf("EstimatedDelivery(%s) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
