package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Product is the catalog record. Prices are integer cents; records are only
// ever written as full overwrites keyed by ID.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Emoji       string `json:"emoji"`
	Category    string `json:"category"`
	Inventory   int    `json:"inventory"`
}

var ErrInvalidProduct = errors.New("invalid product record")

func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProduct)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidProduct)
	}
	if p.Inventory < 0 {
		return fmt.Errorf("%w: negative inventory", ErrInvalidProduct)
	}
	return nil
}

// ParseProduct decodes and validates a stored record. Malformed blobs are
// rejected here instead of leaking untyped data past the store boundary.
func ParseProduct(data []byte) (*Product, error) {
	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
