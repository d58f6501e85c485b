package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/course-backend/internal/product"
)

// OrderProductService builds order line items.
type OrderProductService struct {
	factory *product.Factory
	log     zerolog.Logger
}

// NewOrderProductService creates a new OrderProductService.
func NewOrderProductService(factory *product.Factory, log zerolog.Logger) *OrderProductService {
	return &OrderProductService{
		factory: factory,
		log:     log.With().Str("component", "order_product_service").Logger(),
	}
}

// BuildProduct creates, initialises and validates a product.
func (s *OrderProductService) BuildProduct(ctx context.Context, productType string, params product.Params) (product.Product, error) {
	p, err := s.factory.Create(productType)
	if err != nil {
		return nil, err
	}

	params.TargetType = productType
	if params.Num <= 0 {
		params.Num = 1
	}

	if err := p.Init(ctx, params); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		s.log.Debug().Err(err).Str("type", productType).Int("target_id", params.TargetID).Msg("Product rejected")
		return nil, err
	}
	return p, nil
}
