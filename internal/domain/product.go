package domain

// Product is the subset of an OpenFoodFacts product object that the API
// reads. Everything else in the upstream payload is ignored.
type Product struct {
	ProductName             string   `json:"product_name"`
	ImageURL                string   `json:"image_url"`
	IngredientsText         string   `json:"ingredients_text"`
	AdditivesTags           []string `json:"additives_tags"`
	Categories              string   `json:"categories"`
	NutriscoreScore         *int     `json:"nutriscore_score"`
	AllergensTags           []string `json:"allergens_tags"`
	IngredientsAnalysisTags []string `json:"ingredients_analysis_tags"`
}

// ProductResponse is the envelope returned by the product-by-barcode
// endpoint. Status 1 means found; anything else means not found, even when
// the HTTP status code is 200.
type ProductResponse struct {
	Status  int     `json:"status"`
	Product Product `json:"product"`
}

// SearchResponse is the envelope returned by the search endpoint.
type SearchResponse struct {
	Products []Product `json:"products"`
}

// NormalizedProduct is the sparse, frontend-facing product shape. Every
// field is omitted when empty; a present NutriscoreScore is kept even at
// zero because absence, not zero, signals "no data".
type NormalizedProduct struct {
	ProductName             string   `json:"product_name,omitempty"`
	Image                   string   `json:"image,omitempty"`
	Ingredients             []string `json:"ingredients,omitempty"`
	Additives               []string `json:"additives,omitempty"`
	Preservatives           []string `json:"preservatives,omitempty"`
	Categories              string   `json:"categories,omitempty"`
	NutriscoreScore         *int     `json:"nutriscore_score,omitempty"`
	AllergensTags           []string `json:"allergens_tags,omitempty"`
	IngredientsAnalysisTags []string `json:"ingredients_analysis_tags,omitempty"`
}

// IsEmpty reports whether no field survived normalization.
func (p *NormalizedProduct) IsEmpty() bool {
	return p.ProductName == "" &&
		p.Image == "" &&
		len(p.Ingredients) == 0 &&
		len(p.Additives) == 0 &&
		len(p.Preservatives) == 0 &&
		p.Categories == "" &&
		p.NutriscoreScore == nil &&
		len(p.AllergensTags) == 0 &&
		len(p.IngredientsAnalysisTags) == 0
}
