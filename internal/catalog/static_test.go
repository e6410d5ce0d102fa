package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwise/cardwise/internal/common"
	"github.com/cardwise/cardwise/internal/model"
)

func TestStaticProvider_Categories(t *testing.T) {
	provider := NewStaticProvider()

	categories, err := provider.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, len(model.KnownCategories()))

	// Display order matches the defined category order.
	for i, id := range model.KnownCategories() {
		assert.Equal(t, id, categories[i].ID)
		assert.NotEmpty(t, categories[i].Name)
		assert.NotEmpty(t, categories[i].Merchant)
	}
}

func TestStaticProvider_Items(t *testing.T) {
	provider := NewStaticProvider()
	ctx := context.Background()

	for _, id := range model.KnownCategories() {
		t.Run(string(id), func(t *testing.T) {
			items, err := provider.Items(ctx, id)
			require.NoError(t, err)
			require.NotEmpty(t, items, "every defined category must have items")

			var total float64
			for _, item := range items {
				assert.GreaterOrEqual(t, item.UnitPrice, 0.0)
				assert.GreaterOrEqual(t, item.Quantity, 1)
				total += item.UnitPrice * float64(item.Quantity)
			}
			assert.InDelta(t, total, model.OrderTotal(items), 0.001)
		})
	}
}

func TestStaticProvider_ItemsUnknownCategory(t *testing.T) {
	provider := NewStaticProvider()

	_, err := provider.Items(context.Background(), "electronics")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownCategory)
}

func TestStaticProvider_ItemsReturnsCopy(t *testing.T) {
	provider := NewStaticProvider()
	ctx := context.Background()

	items, err := provider.Items(ctx, model.CategoryGrocery)
	require.NoError(t, err)

	items[0].UnitPrice = 1.00

	again, err := provider.Items(ctx, model.CategoryGrocery)
	require.NoError(t, err)
	assert.NotEqual(t, 1.00, again[0].UnitPrice, "mutating a returned slice must not affect the catalog")
}
