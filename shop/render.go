package shop

import (
	"fmt"
	"strings"

	"emoji-shop/cart"
	"emoji-shop/utils"
)

// Text rendering of the storefront. These renderers are plain consumers of the
// session and cart contracts; they never mutate state.

// RenderGrid prints one product card per line.
func RenderGrid(s *Session) string {
	if s.Loading {
		return "Loading products...\n"
	}

	var b strings.Builder
	for _, p := range s.Products {
		fmt.Fprintf(&b, "%s  [%s] %s - $%s\n", p.Emoji, p.Category, p.Name, utils.Dollars(p.Price))
	}
	return b.String()
}

// RenderCartPanel prints the cart panel: line items with per-line totals and
// the subtotal, or the celebratory summary once the order is placed.
func RenderCartPanel(c *cart.Cart) string {
	var b strings.Builder
	b.WriteString("Your Cart\n")

	if c.Placed {
		fmt.Fprintf(&b, "🎉 Order placed!\n")
		fmt.Fprintf(&b, "Thanks, %s! We'll send a confirmation to %s.\n", c.CustomerName, c.CustomerEmail)
		fmt.Fprintf(&b, "Subtotal: $%s\n", utils.Dollars(c.Subtotal()))
		return b.String()
	}

	if len(c.Items) == 0 {
		b.WriteString("Your cart is empty.\n")
		return b.String()
	}

	for _, item := range c.Items {
		fmt.Fprintf(&b, "%s %s x%d - $%s\n",
			item.Product.Emoji, item.Product.Name, item.Quantity,
			utils.Dollars(item.Product.Price*item.Quantity))
	}
	fmt.Fprintf(&b, "Subtotal: $%s\n", utils.Dollars(c.Subtotal()))
	return b.String()
}
