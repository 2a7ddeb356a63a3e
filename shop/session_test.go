package shop

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emoji-shop/repositories"
	"emoji-shop/routes"
	"emoji-shop/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repositories.NewMemoryStore()
	router := gin.New()
	routes.SetupRoutes(router, services.NewCatalogService(store))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadSeedsEmptyStore(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	session := NewSession(NewClient(srv.URL))
	require.NoError(t, session.Load(ctx))

	assert.False(t, session.Loading)
	require.Len(t, session.Products, len(SeedProducts))

	// Every seeded product is individually retrievable by key.
	for _, seed := range SeedProducts {
		got, err := session.client.FetchProduct(ctx, seed.ID)
		require.NoError(t, err)
		require.NotNil(t, got, "seeded product %q should be retrievable", seed.ID)
		assert.Equal(t, seed, *got)
	}
}

func TestLoadSkipsSeedingWhenStoreHasProducts(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	client := NewClient(srv.URL)
	require.NoError(t, client.SaveProduct(ctx, SeedProducts[0]))

	session := NewSession(client)
	require.NoError(t, session.Load(ctx))

	assert.Len(t, session.Products, 1, "a non-empty store must not be seeded")
}

func TestDoubleSeedConverges(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	// Two racing first loads both seed; keyed overwrites make it converge.
	first := NewSession(NewClient(srv.URL))
	second := NewSession(NewClient(srv.URL))
	require.NoError(t, first.client.Seed(ctx))
	require.NoError(t, second.client.Seed(ctx))

	require.NoError(t, first.Load(ctx))
	assert.Len(t, first.Products, len(SeedProducts))
}

func TestSessionCartFlow(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	session := NewSession(NewClient(srv.URL))
	require.NoError(t, session.Load(ctx))

	byID := map[string]int{}
	for i, p := range session.Products {
		byID[p.ID] = i
	}
	headphones := session.Products[byID["wireless-headphones"]]
	cookbook := session.Products[byID["javascript-cookbook"]]

	session.AddToCart(headphones)
	session.AddToCart(headphones)
	session.AddToCart(cookbook)

	assert.Equal(t, 2*4999+2499, session.Cart.Subtotal())
	assert.True(t, session.Cart.PanelOpen)

	require.NoError(t, session.Checkout("Ada", "ada@example.com"))

	// Mutations are not exposed once the order is placed.
	session.AddToCart(cookbook)
	session.UpdateQuantity(headphones.ID, 9)
	session.RemoveFromCart(cookbook.ID)
	assert.Equal(t, 2*4999+2499, session.Cart.Subtotal())

	session.CloseCart()
	assert.Empty(t, session.Cart.Items)
	assert.False(t, session.Cart.Placed)
}
