package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/course-backend/internal/product"
	"github.com/stemsi/course-backend/internal/response"
	"github.com/stemsi/course-backend/internal/service"
)

// ProductBuilder builds order line items.
type ProductBuilder interface {
	BuildProduct(ctx context.Context, productType string, params product.Params) (product.Product, error)
}

// ProductHandler exposes order line items to the checkout frontend.
type ProductHandler struct {
	products ProductBuilder
	log      zerolog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products ProductBuilder, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		log:      log.With().Str("component", "product_handler").Logger(),
	}
}

// GetProduct godoc
// GET /api/v1/orders/products/:type/:target_id?num=1&unit=...
func (h *ProductHandler) GetProduct(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("target_id"))
	if err != nil || targetID <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	num := 1
	if raw := c.Query("num"); raw != "" {
		num, err = strconv.Atoi(raw)
		if err != nil || num <= 0 {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"num": "num must be a positive integer"})
			return
		}
	}

	params := product.Params{TargetID: targetID, Num: num, Unit: c.Query("unit")}
	p, err := h.products.BuildProduct(c.Request.Context(), c.Param("type"), params)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrUnknownProductType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnknownProduct)
		case errors.Is(err, service.ErrCourseNotFound), errors.Is(err, service.ErrCourseSetNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			h.log.Error().Err(err).Int("target_id", targetID).Msg("Build product failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"type":    p.Type(),
		"product": p,
	})
}
