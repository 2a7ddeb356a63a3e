// Package cart implements the client-local shopping cart state machine. All
// state lives in an explicit Cart value owned by one session; transitions run
// to completion before the next event, so no locking is needed.
package cart

import (
	"errors"
	"strings"

	"emoji-shop/models"
)

type State int

const (
	Idle State = iota
	HasItems
	OrderPlaced
)

func (s State) String() string {
	switch s {
	case HasItems:
		return "has-items"
	case OrderPlaced:
		return "order-placed"
	default:
		return "idle"
	}
}

// LineItem pairs a product snapshot (taken at add time) with a quantity.
// Quantity is always >= 1 for an item that is present.
type LineItem struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart holds one session's items in insertion order, at most one line item per
// product id.
type Cart struct {
	Items         []LineItem
	PanelOpen     bool
	Placed        bool
	CustomerName  string
	CustomerEmail string
}

var (
	ErrContactRequired = errors.New("name and email are required")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrAlreadyPlaced   = errors.New("order already placed")
)

func New() *Cart {
	return &Cart{}
}

func (c *Cart) State() State {
	switch {
	case c.Placed:
		return OrderPlaced
	case len(c.Items) > 0:
		return HasItems
	default:
		return Idle
	}
}

// Add appends a new line item with quantity 1, or bumps the quantity when the
// product is already in the cart. Adding opens the panel.
func (c *Cart) Add(product models.Product) {
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity++
			c.PanelOpen = true
			return
		}
	}
	c.Items = append(c.Items, LineItem{Product: product, Quantity: 1})
	c.PanelOpen = true
}

// SetQuantity sets the quantity for a product exactly; qty <= 0 removes the
// line item instead. Unknown ids are a no-op.
func (c *Cart) SetQuantity(id string, qty int) {
	if qty <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == id {
			c.Items[i].Quantity = qty
			return
		}
	}
}

// Remove deletes the line item for id if present.
func (c *Cart) Remove(id string) {
	for i := range c.Items {
		if c.Items[i].Product.ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Checkout places the order. Both name and email must be non-blank and the
// cart must hold at least one item, otherwise the state is left untouched.
// Items are kept so the summary can still show the subtotal.
func (c *Cart) Checkout(name, email string) error {
	if c.Placed {
		return ErrAlreadyPlaced
	}
	if len(c.Items) == 0 {
		return ErrEmptyCart
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return ErrContactRequired
	}

	c.Placed = true
	c.CustomerName = name
	c.CustomerEmail = email
	return nil
}

func (c *Cart) OpenPanel() {
	c.PanelOpen = true
}

// ClosePanel hides the panel. When an order has been placed this is the only
// way back to Idle: items are cleared and the placed flag resets.
func (c *Cart) ClosePanel() {
	c.PanelOpen = false
	if c.Placed {
		c.Items = nil
		c.Placed = false
		c.CustomerName = ""
		c.CustomerEmail = ""
	}
}

// Subtotal is the integer-cent sum of price times quantity. Display conversion
// to dollars happens at render time only.
func (c *Cart) Subtotal() int {
	total := 0
	for _, item := range c.Items {
		total += item.Product.Price * item.Quantity
	}
	return total
}

// Count is the total quantity across all line items (the cart badge number).
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
