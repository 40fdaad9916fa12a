package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizedProduct_OmitsEmptyFields(t *testing.T) {
	empty := NormalizedProduct{}

	data, err := json.Marshal(&empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestNormalizedProduct_KeepsZeroNutriscore(t *testing.T) {
	zero := 0
	p := NormalizedProduct{NutriscoreScore: &zero}

	data, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nutriscore_score": 0}`, string(data))
}

func TestNormalizedProduct_IsEmpty(t *testing.T) {
	zero := 0
	tests := []struct {
		name    string
		product NormalizedProduct
		empty   bool
	}{
		{"zero value", NormalizedProduct{}, true},
		{"name only", NormalizedProduct{ProductName: "Milk"}, false},
		{"zero score only", NormalizedProduct{NutriscoreScore: &zero}, false},
		{"ingredients only", NormalizedProduct{Ingredients: []string{"Water"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.product.IsEmpty())
		})
	}
}
