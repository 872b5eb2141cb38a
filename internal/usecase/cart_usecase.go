package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrItemNotFound          = errors.New("item not found in cart")
	ErrInvalidDiscountCode   = errors.New("invalid discount code")
	ErrDiscountExpired       = errors.New("discount code expired")
	ErrDiscountMinimumNotMet = errors.New("discount minimum purchase not met")
)

// Shipping is a two-tier schedule: a flat fee on any non-empty cart, waived
// entirely above the free-shipping threshold.
const (
	shippingFlatFee       = 5.0
	freeShippingThreshold = 5000.0
)

// ICartUseCase owns all cart state transitions. Every operation is keyed by
// user id and safe to call repeatedly.
//
// Summaries are recomputed from current catalog prices on every read
// (price-at-read): a price change after an item was added changes the line
// total on the next summary. Nothing derived is ever persisted.

type ICartUseCase interface {
	AddItem(ctx context.Context, userID, productID string, quantity int, size string) (entities.Cart, error)
	RemoveItem(ctx context.Context, userID, productID, size string) (entities.Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int, size string) (entities.Cart, error)
	GetSummary(ctx context.Context, userID, discountCode string) (entities.CartSummary, error)
	ApplyDiscount(ctx context.Context, userID, code string) (entities.DiscountValidation, error)
	Clear(ctx context.Context, userID string) error
}

type CartUseCase struct {
	carts     interfaces.ICartRepository
	products  interfaces.IProductRepository
	discounts interfaces.IDiscountRepository
	now       func() time.Time

	// Serializes read-modify-write cycles per user so two rapid mutations on
	// the same cart document cannot lose an update.
	locksMu   sync.Mutex
	userLocks map[string]*sync.Mutex
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(carts interfaces.ICartRepository, products interfaces.IProductRepository, discounts interfaces.IDiscountRepository) *CartUseCase {
	return &CartUseCase{
		carts:     carts,
		products:  products,
		discounts: discounts,
		now:       time.Now,
		userLocks: make(map[string]*sync.Mutex),
	}
}

func (u *CartUseCase) lockUser(userID string) func() {
	u.locksMu.Lock()
	l, ok := u.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		u.userLocks[userID] = l
	}
	u.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}

// getOrCreateCart loads the user's cart document, lazily initializing an
// empty one on first access.
func (u *CartUseCase) getOrCreateCart(ctx context.Context, userID string) (entities.Cart, error) {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.UserID == "" {
		now := u.now().UTC()
		cart = entities.Cart{UserID: userID, CreatedAt: now, UpdatedAt: now}
	}
	return cart, nil
}

func normalizeSize(size string) string {
	return strings.ToUpper(strings.TrimSpace(size))
}

func (u *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int, size string) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidUserID
	}
	if quantity < 1 {
		return entities.Cart{}, ErrInvalidQuantity
	}
	productID = strings.TrimSpace(productID)
	size = normalizeSize(size)

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.Cart{}, err
	}
	if product.ID == "" {
		return entities.Cart{}, ErrProductNotFound
	}

	unlock := u.lockUser(userID)
	defer unlock()

	cart, err := u.getOrCreateCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	merged := false
	for i, item := range cart.Items {
		if item.ProductID == product.ID && item.Size == size {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, entities.CartItem{
			ProductID: product.ID,
			Quantity:  quantity,
			Size:      size,
		})
	}
	cart.UpdatedAt = u.now().UTC()

	log.Printf("[cart][usecase] add user_id=%s product_id=%s qty=%d size=%s merged=%t", userID, product.ID, quantity, size, merged)
	return u.carts.Save(ctx, cart)
}

func (u *CartUseCase) RemoveItem(ctx context.Context, userID, productID, size string) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidUserID
	}
	productID = strings.TrimSpace(productID)
	size = normalizeSize(size)

	unlock := u.lockUser(userID)
	defer unlock()

	cart, err := u.getOrCreateCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	for i, item := range cart.Items {
		if item.ProductID == productID && (size == "" || item.Size == size) {
			// Remove deletes the line entirely, it never decrements. An empty
			// size matches the first line for the product.
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.UpdatedAt = u.now().UTC()
			log.Printf("[cart][usecase] remove user_id=%s product_id=%s size=%s", userID, productID, size)
			return u.carts.Save(ctx, cart)
		}
	}
	return entities.Cart{}, ErrItemNotFound
}

func (u *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID string, quantity int, size string) (entities.Cart, error) {
	if quantity <= 0 {
		return u.RemoveItem(ctx, userID, productID, size)
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidUserID
	}
	productID = strings.TrimSpace(productID)
	size = normalizeSize(size)

	unlock := u.lockUser(userID)
	defer unlock()

	cart, err := u.getOrCreateCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	for i, item := range cart.Items {
		if item.ProductID == productID && (size == "" || item.Size == size) {
			cart.Items[i].Quantity = quantity
			cart.UpdatedAt = u.now().UTC()
			log.Printf("[cart][usecase] update-quantity user_id=%s product_id=%s qty=%d size=%s", userID, productID, quantity, size)
			return u.carts.Save(ctx, cart)
		}
	}
	return entities.Cart{}, ErrItemNotFound
}

// GetSummary recomputes the full summary from current cart lines, current
// catalog prices and current discount validity. When no explicit code is
// passed, the code stored on the cart (if any) is re-validated and reused.
func (u *CartUseCase) GetSummary(ctx context.Context, userID, discountCode string) (entities.CartSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.CartSummary{}, ErrInvalidUserID
	}

	cart, err := u.getOrCreateCart(ctx, userID)
	if err != nil {
		return entities.CartSummary{}, err
	}

	lines, subtotal, err := u.priceLines(ctx, cart.Items)
	if err != nil {
		return entities.CartSummary{}, err
	}

	shipping := 0.0
	if subtotal > 0 && subtotal <= freeShippingThreshold {
		shipping = shippingFlatFee
	}

	code := entities.CanonicalCode(discountCode)
	if code == "" {
		code = cart.DiscountCode
	}

	discount := 0.0
	applied := ""
	if code != "" {
		if dc, err := u.validateCode(ctx, code, subtotal); err == nil {
			discount = subtotal * (dc.Percent / 100)
			applied = dc.Code
		}
		// An invalid, expired or unqualified code contributes zero discount
		// without failing the read.
	}

	return entities.CartSummary{
		Items:        lines,
		Subtotal:     round2(subtotal),
		Shipping:     round2(shipping),
		Discount:     round2(discount),
		Total:        round2(subtotal + shipping - discount),
		DiscountCode: applied,
		ItemCount:    len(lines),
	}, nil
}

// priceLines joins cart lines with current catalog records. Lines whose
// product no longer resolves are dropped from the summary; the catalog is
// authoritative. Products are fetched concurrently, output order follows the
// cart.
func (u *CartUseCase) priceLines(ctx context.Context, items []entities.CartItem) ([]entities.SummaryLine, float64, error) {
	if len(items) == 0 {
		return nil, 0, nil
	}

	fetched := make([]entities.Product, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			p, err := u.products.GetByID(gctx, item.ProductID)
			if err != nil {
				return err
			}
			fetched[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	lines := make([]entities.SummaryLine, 0, len(items))
	subtotal := 0.0
	for i, item := range items {
		p := fetched[i]
		if p.ID == "" {
			log.Printf("[cart][usecase] dropping line for vanished product_id=%s", item.ProductID)
			continue
		}
		itemTotal := p.Price * float64(item.Quantity)
		subtotal += itemTotal
		lines = append(lines, entities.SummaryLine{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    item.Quantity,
			Size:        item.Size,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			ItemTotal:   round2(itemTotal),
		})
	}
	return lines, subtotal, nil
}

// validateCode re-evaluates a canonical code against the current subtotal and
// clock. Validity is never cached.
func (u *CartUseCase) validateCode(ctx context.Context, code string, subtotal float64) (entities.DiscountCode, error) {
	dc, err := u.discounts.GetByCode(ctx, code)
	if err != nil {
		return entities.DiscountCode{}, err
	}
	if dc.Code == "" || !dc.Active {
		return entities.DiscountCode{}, ErrInvalidDiscountCode
	}
	if dc.Expired(u.now()) {
		return entities.DiscountCode{}, ErrDiscountExpired
	}
	// A subtotal exactly at the minimum qualifies.
	if subtotal < dc.MinPurchase {
		return entities.DiscountCode{}, ErrDiscountMinimumNotMet
	}
	return dc, nil
}

func (u *CartUseCase) ApplyDiscount(ctx context.Context, userID, code string) (entities.DiscountValidation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.DiscountValidation{}, ErrInvalidUserID
	}
	code = entities.CanonicalCode(code)
	if code == "" {
		return entities.DiscountValidation{}, ErrInvalidDiscountCode
	}

	unlock := u.lockUser(userID)
	defer unlock()

	cart, err := u.getOrCreateCart(ctx, userID)
	if err != nil {
		return entities.DiscountValidation{}, err
	}

	_, subtotal, err := u.priceLines(ctx, cart.Items)
	if err != nil {
		return entities.DiscountValidation{}, err
	}

	dc, err := u.validateCode(ctx, code, subtotal)
	if err != nil {
		return entities.DiscountValidation{}, err
	}

	cart.DiscountCode = dc.Code
	cart.UpdatedAt = u.now().UTC()
	if _, err := u.carts.Save(ctx, cart); err != nil {
		return entities.DiscountValidation{}, err
	}

	log.Printf("[cart][usecase] discount applied user_id=%s code=%s percent=%.0f", userID, dc.Code, dc.Percent)
	return entities.DiscountValidation{
		Code:     dc.Code,
		Percent:  dc.Percent,
		Amount:   round2(subtotal * (dc.Percent / 100)),
		Subtotal: round2(subtotal),
	}, nil
}

func (u *CartUseCase) Clear(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}

	unlock := u.lockUser(userID)
	defer unlock()

	log.Printf("[cart][usecase] clear user_id=%s", userID)
	return u.carts.Delete(ctx, userID)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
