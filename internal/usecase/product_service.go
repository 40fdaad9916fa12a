package usecase

import (
	"context"
	"strings"

	"github.com/nutriscan/backend/internal/domain"
)

// BuildProductResponse extracts and structures the fields the frontend needs
// from an OpenFoodFacts product object, omitting empty values. Allergen tags
// lose their language prefix; ingredients-analysis tags pass through as-is.
func BuildProductResponse(product domain.Product) domain.NormalizedProduct {
	additives, preservatives := ClassifyAdditives(product.AdditivesTags)

	resp := domain.NormalizedProduct{
		ProductName:             product.ProductName,
		Image:                   product.ImageURL,
		Categories:              product.Categories,
		NutriscoreScore:         product.NutriscoreScore,
		IngredientsAnalysisTags: product.IngredientsAnalysisTags,
	}

	if ingredients := ParseIngredients(product.IngredientsText); len(ingredients) > 0 {
		resp.Ingredients = ingredients
	}
	if len(additives) > 0 {
		resp.Additives = additives
	}
	if len(preservatives) > 0 {
		resp.Preservatives = preservatives
	}
	if len(product.AllergensTags) > 0 {
		allergens := make([]string, 0, len(product.AllergensTags))
		for _, tag := range product.AllergensTags {
			allergens = append(allergens, strings.TrimPrefix(tag, "en:"))
		}
		resp.AllergensTags = allergens
	}

	return resp
}

// ProductService handles product lookups against the external database.
type ProductService struct {
	client domain.ProductClient
}

// NewProductService creates a new product service with dependencies
func NewProductService(client domain.ProductClient) *ProductService {
	return &ProductService{client: client}
}

// LookupBarcode fetches a product by barcode and normalizes it. A record
// with no usable fields after normalization is reported as ErrEmptyProduct;
// callers treat it like not-found.
func (s *ProductService) LookupBarcode(ctx context.Context, barcode string) (*domain.NormalizedProduct, error) {
	product, err := s.client.GetProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	resp := BuildProductResponse(*product)
	if resp.IsEmpty() {
		return nil, domain.ErrEmptyProduct
	}

	return &resp, nil
}

// SearchByName searches by product name and normalizes the best match.
// Ranking is upstream's job; the first result is taken as-is, even when it
// normalizes to an empty object.
func (s *ProductService) SearchByName(ctx context.Context, name string) (*domain.NormalizedProduct, error) {
	product, err := s.client.SearchProducts(ctx, name)
	if err != nil {
		return nil, err
	}

	resp := BuildProductResponse(*product)
	return &resp, nil
}
