package shop

import (
	"context"

	"emoji-shop/cart"
	"emoji-shop/models"
)

// Session is one shopper's view of the store: the loaded catalog plus a cart.
// It enforces the UI-level rule that item mutations are not exposed once an
// order has been placed, until the panel is closed and the cart resets.
type Session struct {
	client   *Client
	Products []models.Product
	Loading  bool
	Cart     *cart.Cart
}

func NewSession(client *Client) *Session {
	return &Session{
		client: client,
		Cart:   cart.New(),
	}
}

// Load fetches the catalog, seeding it first when the store is empty. An empty
// result is ambiguous between "no products" and a degraded listing; either way
// the grid just renders empty after a failed re-fetch.
func (s *Session) Load(ctx context.Context) error {
	s.Loading = true
	defer func() { s.Loading = false }()

	products, err := s.client.FetchProducts(ctx)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		if err := s.client.Seed(ctx); err != nil {
			return err
		}
		products, err = s.client.FetchProducts(ctx)
		if err != nil {
			return err
		}
	}

	s.Products = products
	return nil
}

func (s *Session) AddToCart(product models.Product) {
	if s.Cart.Placed {
		return
	}
	s.Cart.Add(product)
}

func (s *Session) UpdateQuantity(id string, qty int) {
	if s.Cart.Placed {
		return
	}
	s.Cart.SetQuantity(id, qty)
}

func (s *Session) RemoveFromCart(id string) {
	if s.Cart.Placed {
		return
	}
	s.Cart.Remove(id)
}

func (s *Session) Checkout(name, email string) error {
	return s.Cart.Checkout(name, email)
}

func (s *Session) OpenCart() {
	s.Cart.OpenPanel()
}

func (s *Session) CloseCart() {
	s.Cart.ClosePanel()
}
