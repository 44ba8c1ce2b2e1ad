package recognition

import (
	"testing"

	"meal-recognizer/internal/core/dictionary"

	"github.com/stretchr/testify/assert"
)

func fixtureItem(id string) *dictionary.FoodItem {
	foods := fixtureFoods()
	for i := range foods {
		if foods[i].ID == id {
			return &foods[i]
		}
	}
	return nil
}

func TestExtractQuantityGrams(t *testing.T) {
	q := ExtractQuantity("80g sonka", fixtureItem("sonka"))
	assert.Equal(t, 80.0, q.Portion)
	assert.Equal(t, "80g", q.Label)
	assert.Equal(t, "sonka", q.Remaining)
}

func TestExtractQuantityMilliliter(t *testing.T) {
	q := ExtractQuantity("250ml", fixtureItem("tej"))
	assert.Equal(t, 250.0, q.Portion)
	assert.Equal(t, "", q.Remaining)
}

func TestExtractQuantityDeciliter(t *testing.T) {
	q := ExtractQuantity("2dl tej", fixtureItem("tej"))
	assert.Equal(t, 200.0, q.Portion)
	assert.Equal(t, "200ml", q.Label)
}

func TestExtractQuantityLiter(t *testing.T) {
	q := ExtractQuantity("1,5 l tej", fixtureItem("tej"))
	assert.Equal(t, 1500.0, q.Portion)
}

func TestExtractQuantityServings(t *testing.T) {
	q := ExtractQuantity("2 adag rizs", fixtureItem("rizs"))
	assert.Equal(t, 300.0, q.Portion)
}

func TestExtractQuantityServingBeatsBareCount(t *testing.T) {
	// 按件計量的食物，"N adag" 仍優先於裸數字
	q := ExtractQuantity("2 adag tojás", fixtureItem("tojas"))
	assert.Equal(t, 4.0, q.Portion)
}

func TestExtractQuantityHalfServing(t *testing.T) {
	q := ExtractQuantity("fél adag rizs", fixtureItem("rizs"))
	assert.Equal(t, 75.0, q.Portion)
}

func TestExtractQuantityDouble(t *testing.T) {
	q := ExtractQuantity("dupla kávé", fixtureItem("kave"))
	assert.Equal(t, 100.0, q.Portion)
}

func TestExtractQuantityBareCountPieces(t *testing.T) {
	q := ExtractQuantity("2 tojás", fixtureItem("tojas"))
	assert.Equal(t, 2.0, q.Portion)
	assert.Equal(t, "2db", q.Label)
	assert.Equal(t, "tojás", q.Remaining)
}

func TestExtractQuantityBareCountIgnoredForWeighted(t *testing.T) {
	// 按克計量的食物，裸數字不當作件數
	q := ExtractQuantity("2 rizs", fixtureItem("rizs"))
	assert.Equal(t, 150.0, q.Portion)
}

func TestExtractQuantitySmall(t *testing.T) {
	q := ExtractQuantity("kis adag rizs", fixtureItem("rizs"))
	assert.Equal(t, 105.0, q.Portion)
	assert.Equal(t, "kis adag (~105g)", q.Label)
}

func TestExtractQuantityLarge(t *testing.T) {
	q := ExtractQuantity("nagy rizs", fixtureItem("rizs"))
	assert.Equal(t, 225.0, q.Portion)
	assert.Equal(t, "nagy adag (~225g)", q.Label)
}

func TestExtractQuantityDefault(t *testing.T) {
	q := ExtractQuantity("tej", fixtureItem("tej"))
	assert.Equal(t, 200.0, q.Portion)
	assert.Equal(t, "1 pohár (200ml)", q.Label)
	assert.Equal(t, "tej", q.Remaining)
}
