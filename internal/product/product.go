// Package product builds the order line items sold by the platform.
package product

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownProductType is returned by Factory for unregistered types.
var ErrUnknownProductType = errors.New("unknown product type")

// Params are the inputs every product is initialised with.
type Params struct {
	TargetID   int    `json:"target_id"`
	TargetType string `json:"target_type"`
	Num        int    `json:"num"`
	Unit       string `json:"unit,omitempty"`
}

// Product is an order line item.
type Product interface {
	Type() string
	// Init loads everything the product displays. On error the product is
	// left as it was before the call.
	Init(ctx context.Context, params Params) error
	Validate() error
}

// Factory creates products by type.
type Factory struct {
	builders map[string]func() Product
}

// NewFactory returns a factory knowing the course product.
func NewFactory(courses CourseGetter, courseSets CourseSetGetter) *Factory {
	return &Factory{builders: map[string]func() Product{
		TypeCourse: func() Product { return NewCourseProduct(courses, courseSets) },
	}}
}

// Create returns a fresh, uninitialised product of the given type.
func (f *Factory) Create(productType string) (Product, error) {
	build, ok := f.builders[productType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProductType, productType)
	}
	return build(), nil
}
