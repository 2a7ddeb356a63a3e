package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emoji-shop/cart"
)

func TestRenderGrid(t *testing.T) {
	session := NewSession(NewClient("http://unused"))

	session.Loading = true
	assert.Equal(t, "Loading products...\n", RenderGrid(session))

	session.Loading = false
	session.Products = SeedProducts[:2]
	out := RenderGrid(session)
	assert.Contains(t, out, "🎧  [Electronics] Wireless Headphones - $49.99")
	assert.Contains(t, out, "📚  [Books] JavaScript Cookbook - $24.99")
}

func TestRenderCartPanel(t *testing.T) {
	c := cart.New()

	assert.Contains(t, RenderCartPanel(c), "Your cart is empty.")

	c.Add(SeedProducts[0])
	c.Add(SeedProducts[0])
	out := RenderCartPanel(c)
	assert.Contains(t, out, "Wireless Headphones x2 - $99.98")
	assert.Contains(t, out, "Subtotal: $99.98")

	require.NoError(t, c.Checkout("Ada", "ada@example.com"))
	out = RenderCartPanel(c)
	assert.Contains(t, out, "Order placed!")
	assert.Contains(t, out, "Thanks, Ada! We'll send a confirmation to ada@example.com.")
	assert.Contains(t, out, "Subtotal: $99.98")
}
