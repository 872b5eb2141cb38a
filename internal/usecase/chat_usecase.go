package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase/interfaces"
)

var ErrEmptyMessage = errors.New("empty message")

// Scripted replies for deterministic paths. These never go through the
// generation model: clarifications, empty states and validation failures must
// read the same every time.
const (
	historyClearedMessage     = "Done! I've cleared our conversation history. How can I help you today?"
	productClarificationReply = "I couldn't tell which product you meant. Could you give me the product name or its id?"
	emptyCartReply            = "Your cart is empty right now. Would you like me to show you some products?"
	itemNotInCartReply        = "I couldn't find that item in your cart, so there was nothing to remove."
	cartUnavailableReply      = "I couldn't reach your cart just now. Please try again in a moment."
	catalogUnavailableReply   = "I couldn't load the catalog just now. Please try again in a moment."
	noProductsReply           = "I couldn't find any products matching that. Want to try a different search?"
	checkoutEmptyReply        = "Your cart is empty, so there's nothing to check out yet."
	checkoutFailedReply       = "I couldn't place your order just now. Your cart is untouched; please try again."
	noOrdersReply             = "You don't have any orders yet. Start shopping and I'll keep track of them here!"
	ordersUnavailableReply    = "I couldn't load your orders just now. Please try again in a moment."
	orderNotFoundReply        = "I couldn't find that order. Please double-check the order id."
	discountNeedCodeReply     = "Which discount code would you like to apply? For example: apply code SAVE10."
	discountInvalidReply      = "That discount code isn't valid. Please check the code and try again."
	discountExpiredReply      = "That discount code has expired, so I can't apply it."
	discountMinimumReply      = "Your cart subtotal is below the minimum purchase for that code, so it can't be applied yet."
)

const (
	chatHistoryLimit = 10
	browseLimit      = 5
)

// ChatResult is the dispatch outcome: the text shown to the customer plus the
// structured lookups it was grounded on, for clients that render them.
type ChatResult struct {
	ResponseText string
	Products     []entities.Product
	CartSummary  *entities.CartSummary
}

// IChatUseCase is the conversational front door: one message in, one grounded
// reply out.
type IChatUseCase interface {
	ProcessMessage(ctx context.Context, userID, sessionID, message string) (ChatResult, error)
}

// ChatUseCase routes each message to exactly one intent handler. Handlers run
// authoritative lookups first and hand the facts to the generation gateway
// for phrasing only; transactional state never depends on generated text.
type ChatUseCase struct {
	catalog   ICatalogUseCase
	cart      ICartUseCase
	orders    IOrderUseCase
	sessions  interfaces.IChatSessionRepository
	generator interfaces.IGenerationGateway
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(
	catalog ICatalogUseCase,
	cart ICartUseCase,
	orders IOrderUseCase,
	sessions interfaces.IChatSessionRepository,
	generator interfaces.IGenerationGateway,
) *ChatUseCase {
	return &ChatUseCase{
		catalog:   catalog,
		cart:      cart,
		orders:    orders,
		sessions:  sessions,
		generator: generator,
	}
}

// ProcessMessage classifies the message, runs the matching handler and
// persists exactly one user turn and one assistant turn. History failures are
// logged and degrade to a contextless exchange; they never block the reply.
func (u *ChatUseCase) ProcessMessage(ctx context.Context, userID, sessionID, message string) (ChatResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ChatResult{}, ErrInvalidUserID
	}
	if strings.TrimSpace(message) == "" {
		return ChatResult{}, ErrEmptyMessage
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = userID
	}

	history, err := u.sessions.GetRecent(ctx, sessionID, chatHistoryLimit)
	if err != nil {
		log.Printf("[chat][usecase] history fetch failed session_id=%s err=%v", sessionID, err)
		history = nil
	}

	it := classifyIntent(message)
	log.Printf("[chat][usecase] message routed user_id=%s session_id=%s intent=%d", userID, sessionID, it)

	var result ChatResult
	switch it {
	case intentClearHistory:
		result = u.handleClearHistory(ctx, sessionID)
	case intentAddToCart:
		result = u.handleAddToCart(ctx, userID, message, history)
	case intentRemoveFromCart:
		result = u.handleRemoveFromCart(ctx, userID, message, history)
	case intentApplyDiscount:
		result = u.handleApplyDiscount(ctx, userID, message, history)
	case intentCheckout:
		result = u.handleCheckout(ctx, userID, history)
	case intentViewCart:
		result = u.handleViewCart(ctx, userID, history)
	case intentTrackOrder:
		result = u.handleTrackOrder(ctx, userID, message, history)
	case intentViewOrders:
		result = u.handleViewOrders(ctx, userID, history)
	case intentProductDetail:
		result = u.handleProductDetail(ctx, message, history)
	case intentBrowseProducts:
		result = u.handleBrowse(ctx, message, history)
	default:
		result = ChatResult{ResponseText: u.generator.GenerateReply(ctx, message, history)}
	}

	now := time.Now().UTC()
	if err := u.sessions.Append(ctx, sessionID, userID,
		entities.ChatMessage{Role: entities.ChatRoleUser, Content: message, Timestamp: now},
		entities.ChatMessage{Role: entities.ChatRoleAssistant, Content: result.ResponseText, Timestamp: now},
	); err != nil {
		log.Printf("[chat][usecase] history append failed session_id=%s err=%v", sessionID, err)
	}

	return result, nil
}

func (u *ChatUseCase) handleClearHistory(ctx context.Context, sessionID string) ChatResult {
	if err := u.sessions.Clear(ctx, sessionID); err != nil {
		log.Printf("[chat][usecase] history clear failed session_id=%s err=%v", sessionID, err)
	}
	return ChatResult{ResponseText: historyClearedMessage}
}

func (u *ChatUseCase) handleAddToCart(ctx context.Context, userID, message string, history []entities.ChatMessage) ChatResult {
	product, ok := u.resolveProduct(ctx, message, history)
	if !ok {
		return ChatResult{ResponseText: productClarificationReply}
	}

	quantity := extractQuantity(message)
	size := extractSize(message)

	if _, err := u.cart.AddItem(ctx, userID, product.ID, quantity, size); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return ChatResult{ResponseText: productClarificationReply}
		}
		log.Printf("[chat][usecase] add to cart failed user_id=%s product_id=%s err=%v", userID, product.ID, err)
		return ChatResult{ResponseText: cartUnavailableReply}
	}

	sum, err := u.cart.GetSummary(ctx, userID, "")
	if err != nil {
		log.Printf("[chat][usecase] summary after add failed user_id=%s err=%v", userID, err)
		return ChatResult{
			ResponseText: fmt.Sprintf("Added %d x %s (size %s) to your cart.", quantity, product.Name, size),
			Products:     []entities.Product{product},
		}
	}

	text := u.generator.GenerateReply(ctx, addToCartPrompt(product, quantity, size, sum), history)
	return ChatResult{ResponseText: text, Products: []entities.Product{product}, CartSummary: &sum}
}

func (u *ChatUseCase) handleRemoveFromCart(ctx context.Context, userID, message string, history []entities.ChatMessage) ChatResult {
	product, ok := u.resolveProduct(ctx, message, history)
	if !ok {
		return ChatResult{ResponseText: productClarificationReply}
	}

	if _, err := u.cart.RemoveItem(ctx, userID, product.ID, extractSizeOrEmpty(message)); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return ChatResult{ResponseText: itemNotInCartReply}
		}
		log.Printf("[chat][usecase] remove from cart failed user_id=%s product_id=%s err=%v", userID, product.ID, err)
		return ChatResult{ResponseText: cartUnavailableReply}
	}

	sum, err := u.cart.GetSummary(ctx, userID, "")
	if err != nil {
		log.Printf("[chat][usecase] summary after remove failed user_id=%s err=%v", userID, err)
		return ChatResult{ResponseText: fmt.Sprintf("Removed %s from your cart.", product.Name)}
	}

	text := u.generator.GenerateReply(ctx, removeFromCartPrompt(product, sum), history)
	return ChatResult{ResponseText: text, CartSummary: &sum}
}

func (u *ChatUseCase) handleViewCart(ctx context.Context, userID string, history []entities.ChatMessage) ChatResult {
	sum, err := u.cart.GetSummary(ctx, userID, "")
	if err != nil {
		log.Printf("[chat][usecase] view cart failed user_id=%s err=%v", userID, err)
		return ChatResult{ResponseText: cartUnavailableReply}
	}
	if sum.ItemCount == 0 {
		return ChatResult{ResponseText: emptyCartReply}
	}

	text := u.generator.GenerateReply(ctx, viewCartPrompt(sum), history)
	return ChatResult{ResponseText: text, CartSummary: &sum}
}

func (u *ChatUseCase) handleApplyDiscount(ctx context.Context, userID, message string, history []entities.ChatMessage) ChatResult {
	code := extractDiscountCode(message)
	if code == "" {
		return ChatResult{ResponseText: discountNeedCodeReply}
	}

	validation, err := u.cart.ApplyDiscount(ctx, userID, code)
	switch {
	case err == nil:
	case errors.Is(err, ErrDiscountExpired):
		return ChatResult{ResponseText: discountExpiredReply}
	case errors.Is(err, ErrDiscountMinimumNotMet):
		return ChatResult{ResponseText: discountMinimumReply}
	case errors.Is(err, ErrInvalidDiscountCode):
		return ChatResult{ResponseText: discountInvalidReply}
	default:
		log.Printf("[chat][usecase] apply discount failed user_id=%s code=%s err=%v", userID, code, err)
		return ChatResult{ResponseText: cartUnavailableReply}
	}

	sum, err := u.cart.GetSummary(ctx, userID, "")
	if err != nil {
		log.Printf("[chat][usecase] summary after discount failed user_id=%s err=%v", userID, err)
		return ChatResult{ResponseText: fmt.Sprintf("Code %s applied: you save %.2f.", validation.Code, validation.Amount)}
	}

	text := u.generator.GenerateReply(ctx, discountAppliedPrompt(validation, sum), history)
	return ChatResult{ResponseText: text, CartSummary: &sum}
}

func (u *ChatUseCase) handleCheckout(ctx context.Context, userID string, history []entities.ChatMessage) ChatResult {
	order, err := u.orders.Checkout(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrCartEmpty) {
			return ChatResult{ResponseText: checkoutEmptyReply}
		}
		log.Printf("[chat][usecase] checkout failed user_id=%s err=%v", userID, err)
		return ChatResult{ResponseText: checkoutFailedReply}
	}

	text := u.generator.GenerateReply(ctx, checkoutPrompt(order), history)
	return ChatResult{ResponseText: text}
}

func (u *ChatUseCase) handleViewOrders(ctx context.Context, userID string, history []entities.ChatMessage) ChatResult {
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("[chat][usecase] list orders failed user_id=%s err=%v", userID, err)
		return ChatResult{ResponseText: ordersUnavailableReply}
	}
	if len(orders) == 0 {
		return ChatResult{ResponseText: noOrdersReply}
	}

	text := u.generator.GenerateReply(ctx, viewOrdersPrompt(orders), history)
	return ChatResult{ResponseText: text}
}

func (u *ChatUseCase) handleTrackOrder(ctx context.Context, userID, message string, history []entities.ChatMessage) ChatResult {
	var order entities.Order
	if id := extractOrderID(message); id != "" {
		o, err := u.orders.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				return ChatResult{ResponseText: orderNotFoundReply}
			}
			log.Printf("[chat][usecase] track order failed user_id=%s order_id=%s err=%v", userID, id, err)
			return ChatResult{ResponseText: ordersUnavailableReply}
		}
		order = o
	} else {
		// No explicit id: track the most recent order.
		orders, err := u.orders.ListByUser(ctx, userID)
		if err != nil {
			log.Printf("[chat][usecase] track latest order failed user_id=%s err=%v", userID, err)
			return ChatResult{ResponseText: ordersUnavailableReply}
		}
		if len(orders) == 0 {
			return ChatResult{ResponseText: noOrdersReply}
		}
		order = orders[0]
	}

	text := u.generator.GenerateReply(ctx, trackOrderPrompt(order), history)
	return ChatResult{ResponseText: text}
}

func (u *ChatUseCase) handleProductDetail(ctx context.Context, message string, history []entities.ChatMessage) ChatResult {
	product, ok := u.resolveProduct(ctx, message, history)
	if !ok {
		return ChatResult{ResponseText: productClarificationReply}
	}

	text := u.generator.GenerateReply(ctx, productDetailPrompt(product), history)
	return ChatResult{ResponseText: text, Products: []entities.Product{product}}
}

func (u *ChatUseCase) handleBrowse(ctx context.Context, message string, history []entities.ChatMessage) ChatResult {
	products, err := u.catalog.FindAll(ctx, 0)
	if err != nil {
		log.Printf("[chat][usecase] browse catalog failed err=%v", err)
		return ChatResult{ResponseText: catalogUnavailableReply}
	}
	if len(products) == 0 {
		return ChatResult{ResponseText: noProductsReply}
	}

	matches := filterByCategory(message, products)
	if len(matches) == 0 {
		matches = products
	}
	if len(matches) > browseLimit {
		matches = matches[:browseLimit]
	}

	text := u.generator.GenerateReply(ctx, browsePrompt(message, matches), history)
	return ChatResult{ResponseText: text, Products: matches}
}

// filterByCategory keeps products whose category is mentioned in the message.
func filterByCategory(message string, products []entities.Product) []entities.Product {
	lowered := strings.ToLower(message)
	var matches []entities.Product
	for _, p := range products {
		category := strings.ToLower(strings.TrimSpace(p.Category))
		if category != "" && strings.Contains(lowered, category) {
			matches = append(matches, p)
		}
	}
	return matches
}

// resolveProduct runs the resolution pipeline: verbatim name, token overlap,
// explicit id, then the history fallback. A failed resolution means the
// caller asks for clarification instead of guessing.
func (u *ChatUseCase) resolveProduct(ctx context.Context, message string, history []entities.ChatMessage) (entities.Product, bool) {
	products, err := u.catalog.FindAll(ctx, 0)
	if err != nil {
		log.Printf("[chat][usecase] catalog fetch for resolution failed err=%v", err)
		return entities.Product{}, false
	}

	if p, ok := matchProductByName(message, products); ok {
		return p, true
	}
	if p, ok := matchProductByTokens(message, products); ok {
		return p, true
	}
	if id := extractProductID(message); id != "" {
		if p, err := u.catalog.FindByID(ctx, id); err == nil {
			return p, true
		} else if !errors.Is(err, ErrProductNotFound) {
			log.Printf("[chat][usecase] product lookup failed product_id=%s err=%v", id, err)
		}
	}
	return matchProductFromHistory(history, products)
}
