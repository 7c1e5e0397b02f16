package catalog

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-catalog-service/internal/domain"
)

func TestSuggest_BlankQueryYieldsNothing(t *testing.T) {
	assert.Nil(t, Suggest(fixtureProducts(), ""))
	assert.Nil(t, Suggest(fixtureProducts(), "   "))
}

func TestSuggest_MatchesSameRuleAsSearchFilter(t *testing.T) {
	got := Suggest(fixtureProducts(), "mobile")
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].Product.ID, "subcategory matches count, same as the filter predicate")
}

func TestSuggest_CappedAtEight(t *testing.T) {
	products := make([]domain.Product, 0, 12)
	for i := 1; i <= 12; i++ {
		products = append(products, domain.Product{
			ID:       int64(i),
			Name:     fmt.Sprintf("widget %d", i),
			Category: "tools",
			Price:    float64(i),
		})
	}

	got := Suggest(products, "widget")
	require.Len(t, got, MaxSuggestions)
	assert.Equal(t, int64(1), got[0].Product.ID, "results keep collection order")
}

func TestSuggest_HighlightsFirstOccurrenceOnly(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "mat yoga mat", Category: "sports", Price: 330},
	}

	got := Suggest(products, "mat")
	require.Len(t, got, 1)
	assert.Equal(t, "<mark>mat</mark> yoga mat", got[0].Display)
}

func TestSuggest_HighlightIsCaseInsensitive(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Gaming Laptop", Category: "electronics", Price: 108300},
	}

	got := Suggest(products, "GAMING")
	require.Len(t, got, 1)
	assert.Equal(t, "<mark>Gaming</mark> Laptop", got[0].Display, "original casing is preserved inside the marker")
}

func TestSuggest_HighlightSurvivesCaseChangingMultibyteRunes(t *testing.T) {
	// Lowercasing can change a rune's byte length: U+023A grows from 2 to 3
	// bytes, U+0130 shrinks from 2 bytes to 1. The marker must still land on
	// the matched bytes of the original name.
	tests := []struct {
		name     string
		product  string
		query    string
		expected string
	}{
		{"growing rune before match", "Ⱥx widget", "x", "Ⱥ<mark>x</mark> widget"},
		{"shrinking rune before match", "İx widget", "x", "İ<mark>x</mark> widget"},
		{"match spans the case-changing rune", "İx widget", "ix", "<mark>İx</mark> widget"},
		{"match is the case-changing rune", "Ⱥx widget", "ⱥ", "<mark>Ⱥ</mark>x widget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest([]domain.Product{
				{ID: 1, Name: tt.product, Category: "tools", Price: 1},
			}, tt.query)
			require.Len(t, got, 1)
			assert.Equal(t, tt.expected, got[0].Display)
			assert.True(t, utf8.ValidString(got[0].Display))
		})
	}
}

func TestSuggest_CategoryMatchLeavesNameUnmarked(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "yoga mat", Category: "sports", Subcategory: "fitness", Price: 330},
	}

	got := Suggest(products, "sports")
	require.Len(t, got, 1)
	assert.Equal(t, "yoga mat", got[0].Display)
}
