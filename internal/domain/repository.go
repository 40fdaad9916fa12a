package domain

import "context"

// ProductClient defines the interface for the OpenFoodFacts API client.
type ProductClient interface {
	GetProductByBarcode(ctx context.Context, barcode string) (*Product, error)
	SearchProducts(ctx context.Context, name string) (*Product, error)
}
