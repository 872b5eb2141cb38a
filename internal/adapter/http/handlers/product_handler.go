package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "retail_agent/internal/adapter/http/dto/response"
	"retail_agent/internal/usecase"
	"retail_agent/pkg"

	"github.com/gin-gonic/gin"
)

// ProductHandler exposes read-only catalog lookups.

type ProductHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewProductHandler(uc usecase.ICatalogUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts returns the catalog, optionally filtered by the `category`
// query parameter or capped by `limit`.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		products, err := h.usecase.FindByCategory(c.Request.Context(), category)
		if err != nil {
			appErr := mapProductError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromProducts(products))
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		// A malformed limit falls back to unbounded rather than erroring.
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	products, err := h.usecase.FindAll(c.Request.Context(), limit)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
