package usecase

import (
	"context"
	"testing"

	"github.com/nutriscan/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBuildProductResponse(t *testing.T) {
	t.Run("maps all recognized fields", func(t *testing.T) {
		product := domain.Product{
			ProductName:             "Coca-Cola",
			ImageURL:                "https://images.example.com/coke.jpg",
			IngredientsText:         "Carbonated water, Sugar; Caramel colour•Caffeine",
			AdditivesTags:           []string{"en:e150d", "en:e211", "en:e338"},
			Categories:              "Beverages, Sodas",
			NutriscoreScore:         intPtr(14),
			AllergensTags:           []string{"en:caffeine"},
			IngredientsAnalysisTags: []string{"en:vegan", "en:vegetarian"},
		}

		resp := BuildProductResponse(product)

		assert.Equal(t, "Coca-Cola", resp.ProductName)
		assert.Equal(t, "https://images.example.com/coke.jpg", resp.Image)
		assert.Equal(t, []string{"Carbonated water", "Sugar", "Caramel colour", "Caffeine"}, resp.Ingredients)
		assert.Equal(t, []string{"E150D", "E338"}, resp.Additives)
		assert.Equal(t, []string{"E211"}, resp.Preservatives)
		assert.Equal(t, "Beverages, Sodas", resp.Categories)
		require.NotNil(t, resp.NutriscoreScore)
		assert.Equal(t, 14, *resp.NutriscoreScore)
		assert.Equal(t, []string{"caffeine"}, resp.AllergensTags)
		// Analysis tags pass through with prefixes intact
		assert.Equal(t, []string{"en:vegan", "en:vegetarian"}, resp.IngredientsAnalysisTags)
	})

	t.Run("empty product yields empty response", func(t *testing.T) {
		resp := BuildProductResponse(domain.Product{})

		assert.True(t, resp.IsEmpty())
	})

	t.Run("zero nutriscore is retained", func(t *testing.T) {
		resp := BuildProductResponse(domain.Product{NutriscoreScore: intPtr(0)})

		require.NotNil(t, resp.NutriscoreScore)
		assert.Equal(t, 0, *resp.NutriscoreScore)
		assert.False(t, resp.IsEmpty())
	})

	t.Run("absent nutriscore stays absent", func(t *testing.T) {
		resp := BuildProductResponse(domain.Product{ProductName: "Plain"})

		assert.Nil(t, resp.NutriscoreScore)
	})

	t.Run("is idempotent over the same input", func(t *testing.T) {
		product := domain.Product{
			ProductName:     "Bread",
			IngredientsText: "Flour, Water; Yeast",
			AdditivesTags:   []string{"en:e300", "en:e282"},
			AllergensTags:   []string{"en:gluten"},
		}

		first := BuildProductResponse(product)
		second := BuildProductResponse(product)

		assert.Equal(t, first, second)
	})

	t.Run("ingredients that trim to nothing are omitted", func(t *testing.T) {
		resp := BuildProductResponse(domain.Product{IngredientsText: "  , ,"})

		assert.Nil(t, resp.Ingredients)
		assert.True(t, resp.IsEmpty())
	})
}

// stubClient implements domain.ProductClient for service tests
type stubClient struct {
	product *domain.Product
	err     error
}

func (s *stubClient) GetProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubClient) SearchProducts(ctx context.Context, name string) (*domain.Product, error) {
	return s.product, s.err
}

func TestLookupBarcode(t *testing.T) {
	ctx := context.Background()

	t.Run("returns normalized product", func(t *testing.T) {
		service := NewProductService(&stubClient{
			product: &domain.Product{
				ProductName:     "Nutella",
				IngredientsText: "Sugar, Palm oil, Hazelnuts",
			},
		})

		result, err := service.LookupBarcode(ctx, "3017620422003")

		require.NoError(t, err)
		assert.Equal(t, "Nutella", result.ProductName)
		assert.Len(t, result.Ingredients, 3)
	})

	t.Run("propagates not found", func(t *testing.T) {
		service := NewProductService(&stubClient{err: domain.ErrProductNotFound})

		result, err := service.LookupBarcode(ctx, "4000000000000")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("reports record with no usable fields", func(t *testing.T) {
		service := NewProductService(&stubClient{product: &domain.Product{}})

		result, err := service.LookupBarcode(ctx, "4000000000000")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrEmptyProduct)
	})
}

func TestSearchByName(t *testing.T) {
	ctx := context.Background()

	t.Run("returns normalized first match", func(t *testing.T) {
		service := NewProductService(&stubClient{
			product: &domain.Product{ProductName: "Dark Chocolate"},
		})

		result, err := service.SearchByName(ctx, "chocolate")

		require.NoError(t, err)
		assert.Equal(t, "Dark Chocolate", result.ProductName)
	})

	t.Run("propagates not found", func(t *testing.T) {
		service := NewProductService(&stubClient{err: domain.ErrProductNotFound})

		result, err := service.SearchByName(ctx, "xyzzynonexistent")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("empty first match is returned, not an error", func(t *testing.T) {
		service := NewProductService(&stubClient{product: &domain.Product{}})

		result, err := service.SearchByName(ctx, "sparse")

		require.NoError(t, err)
		assert.True(t, result.IsEmpty())
	})
}
