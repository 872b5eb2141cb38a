package handlers

import (
	"errors"
	"net/http"

	request "retail_agent/internal/adapter/http/dto/request"
	response "retail_agent/internal/adapter/http/dto/response"
	"retail_agent/internal/usecase"
	"retail_agent/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler exposes the transactional cart surface used by non-chat
// clients. The conversational flow reaches the same use case through the
// Intent Router.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetSummary returns the derived cart summary for a user. An optional `code`
// query parameter previews a discount without persisting it.
func (h *CartHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.GetSummary(c.Request.Context(), c.Param("user_id"), c.Query("code"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCartSummary(summary))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.CartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	quantity := payload.Quantity
	if quantity == 0 {
		quantity = 1
	}

	_, err := h.usecase.AddItem(c.Request.Context(), payload.ResolveUserID(), payload.ResolveProductID(), quantity, payload.ResolveSize())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.respondWithSummary(c, payload.ResolveUserID())
}

// UpdateItem sets a line's quantity; zero or negative removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var payload request.CartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	_, err := h.usecase.UpdateQuantity(c.Request.Context(), payload.ResolveUserID(), payload.ResolveProductID(), payload.Quantity, payload.ResolveSize())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.respondWithSummary(c, payload.ResolveUserID())
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	var payload request.CartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	_, err := h.usecase.RemoveItem(c.Request.Context(), payload.ResolveUserID(), payload.ResolveProductID(), payload.ResolveSize())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.respondWithSummary(c, payload.ResolveUserID())
}

func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	validation, err := h.usecase.ApplyDiscount(c.Request.Context(), c.Param("user_id"), payload.ResolveCode())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDiscountValidation(validation))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), c.Param("user_id")); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondWithSummary(c *gin.Context, userID string) {
	summary, err := h.usecase.GetSummary(c.Request.Context(), userID, "")
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCartSummary(summary))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found in cart", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDiscountCode):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT_CODE", "Discount code is not valid", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDiscountExpired):
		return pkg.NewDomainErrorSimple("DISCOUNT_EXPIRED", "Discount code has expired", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDiscountMinimumNotMet):
		return pkg.NewDomainErrorSimple("DISCOUNT_MINIMUM_NOT_MET", "Cart subtotal is below the code's minimum purchase", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
