package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

const orderHistoryLimit = 10

// IOrderUseCase turns carts into orders and answers order-history and
// tracking questions.
//
// Checkout snapshots the summary (names, prices, totals) onto the order, so
// later catalog price changes never rewrite placed orders. Payment is handled
// by an external flow; orders are created pending.

type IOrderUseCase interface {
	Checkout(ctx context.Context, userID string) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	orders interfaces.IOrderRepository
	cart   ICartUseCase
	now    func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, cart ICartUseCase) *OrderUseCase {
	return &OrderUseCase{orders: orders, cart: cart, now: time.Now}
}

func (u *OrderUseCase) Checkout(ctx context.Context, userID string) (entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Order{}, ErrInvalidUserID
	}

	summary, err := u.cart.GetSummary(ctx, userID, "")
	if err != nil {
		return entities.Order{}, err
	}
	if summary.ItemCount == 0 {
		return entities.Order{}, ErrCartEmpty
	}

	items := make([]entities.OrderItem, 0, len(summary.Items))
	for _, line := range summary.Items {
		items = append(items, entities.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Size:        line.Size,
			Price:       line.Price,
		})
	}

	o := entities.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Items:         items,
		Subtotal:      summary.Subtotal,
		Shipping:      summary.Shipping,
		Discount:      summary.Discount,
		Total:         summary.Total,
		Status:        entities.OrderStatusConfirmed,
		PaymentStatus: entities.PaymentStatusPending,
		CreatedAt:     u.now().UTC(),
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}

	// The cart is spent once the order exists. A clear failure here leaves a
	// stale cart but never a lost order; it is logged, not surfaced.
	if err := u.cart.Clear(ctx, userID); err != nil {
		log.Printf("[order][usecase] cart clear failed after checkout user_id=%s order_id=%s err=%v", userID, created.ID, err)
	}

	log.Printf("[order][usecase] checkout user_id=%s order_id=%s total=%.2f items=%d", userID, created.ID, created.Total, len(created.Items))
	return created, nil
}

func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.orders.ListByUserID(ctx, userID, orderHistoryLimit)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// EstimatedDelivery derives the human-facing delivery line from order status.
func EstimatedDelivery(o entities.Order) string {
	switch o.Status {
	case entities.OrderStatusDelivered:
		return "Delivered"
	case entities.OrderStatusShipped:
		return "Arriving in 1-2 business days"
	default:
		return "3-5 business days"
	}
}
