package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emoji-shop/models"
)

var (
	headphones = models.Product{ID: "wireless-headphones", Name: "Wireless Headphones", Price: 4999, Emoji: "🎧", Category: "Electronics", Inventory: 12}
	logoCap    = models.Product{ID: "logo-cap", Name: "Logo Cap", Price: 1499, Emoji: "🧢", Category: "Apparel", Inventory: 50}
)

func TestAddIncrementsExistingLineItem(t *testing.T) {
	c := New()

	for i := 0; i < 5; i++ {
		c.Add(headphones)
	}

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, HasItems, c.State())
	assert.True(t, c.PanelOpen, "adding should open the panel")
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := New()
	c.Add(headphones)
	c.Add(logoCap)
	c.Add(headphones)

	require.Len(t, c.Items, 2)
	assert.Equal(t, "wireless-headphones", c.Items[0].Product.ID)
	assert.Equal(t, "logo-cap", c.Items[1].Product.ID)
}

func TestSetQuantity(t *testing.T) {
	t.Run("sets exactly, not additive", func(t *testing.T) {
		c := New()
		c.Add(headphones)
		c.SetQuantity(headphones.ID, 7)
		assert.Equal(t, 7, c.Items[0].Quantity)
	})

	t.Run("zero removes the item", func(t *testing.T) {
		c := New()
		c.Add(headphones)
		c.SetQuantity(headphones.ID, 0)
		assert.Empty(t, c.Items)
		assert.Equal(t, Idle, c.State())
	})

	t.Run("negative removes the item", func(t *testing.T) {
		c := New()
		c.Add(headphones)
		c.SetQuantity(headphones.ID, -3)
		assert.Empty(t, c.Items)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		c := New()
		c.Add(headphones)
		c.SetQuantity("nope", 4)
		require.Len(t, c.Items, 1)
		assert.Equal(t, 1, c.Items[0].Quantity)
	})
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	byZero := New()
	byRemove := New()
	for _, c := range []*Cart{byZero, byRemove} {
		c.Add(headphones)
		c.Add(logoCap)
	}

	byZero.SetQuantity(headphones.ID, 0)
	byRemove.Remove(headphones.ID)

	assert.Equal(t, byRemove.Items, byZero.Items)
	assert.Equal(t, byRemove.State(), byZero.State())
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	c := New()
	c.Add(logoCap)
	c.Remove("nope")
	assert.Len(t, c.Items, 1)
}

func TestSubtotalIsExactCents(t *testing.T) {
	a := models.Product{ID: "a", Name: "A", Price: 499}
	b := models.Product{ID: "b", Name: "B", Price: 2499}

	c := New()
	c.Add(a)
	c.Add(a)
	c.Add(b)

	assert.Equal(t, 3497, c.Subtotal())
	assert.Equal(t, 3, c.Count())
}

func TestCheckout(t *testing.T) {
	t.Run("blank name is a no-op", func(t *testing.T) {
		c := New()
		c.Add(headphones)
		err := c.Checkout("   ", "ada@example.com")
		assert.ErrorIs(t, err, ErrContactRequired)
		assert.False(t, c.Placed)
		assert.Equal(t, HasItems, c.State())
	})

	t.Run("blank email is a no-op", func(t *testing.T) {
		c := New()
		c.Add(headphones)
		err := c.Checkout("Ada", "\t\n")
		assert.ErrorIs(t, err, ErrContactRequired)
		assert.False(t, c.Placed)
	})

	t.Run("empty cart cannot be placed", func(t *testing.T) {
		c := New()
		err := c.Checkout("Ada", "ada@example.com")
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("keeps items for the summary", func(t *testing.T) {
		c := New()
		c.Add(headphones)
		require.NoError(t, c.Checkout("Ada", "ada@example.com"))

		assert.Equal(t, OrderPlaced, c.State())
		assert.Equal(t, "Ada", c.CustomerName)
		assert.Len(t, c.Items, 1)
		assert.Equal(t, 4999, c.Subtotal())
	})

	t.Run("second checkout is rejected", func(t *testing.T) {
		c := New()
		c.Add(headphones)
		require.NoError(t, c.Checkout("Ada", "ada@example.com"))
		assert.ErrorIs(t, c.Checkout("Bob", "bob@example.com"), ErrAlreadyPlaced)
		assert.Equal(t, "Ada", c.CustomerName)
	})
}

func TestClosePanelResetsPlacedOrder(t *testing.T) {
	c := New()
	c.Add(headphones)
	require.NoError(t, c.Checkout("Ada", "ada@example.com"))

	c.ClosePanel()

	assert.False(t, c.PanelOpen)
	assert.Empty(t, c.Items)
	assert.False(t, c.Placed)
	assert.Equal(t, Idle, c.State())
}

func TestClosePanelKeepsItemsBeforeCheckout(t *testing.T) {
	c := New()
	c.Add(headphones)
	c.ClosePanel()

	assert.False(t, c.PanelOpen)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, HasItems, c.State())
}
