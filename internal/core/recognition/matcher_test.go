package recognition

import (
	"testing"

	"meal-recognizer/internal/core/dictionary"
	"meal-recognizer/internal/core/nutrition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureFoods() []dictionary.FoodItem {
	return []dictionary.FoodItem{
		{
			ID:             "tej",
			Names:          []string{"tej", "milk"},
			Category:       dictionary.CategoryDairy,
			Unit:           dictionary.UnitMilliliter,
			DefaultPortion: 200,
			PortionLabel:   "1 pohár (200ml)",
			Per100:         nutrition.Facts{Calories: 47, Protein: 3.3, Carbs: 4.7, Fat: 1.5},
		},
		{
			ID:             "tejfol",
			Names:          []string{"tejföl", "sour cream"},
			Category:       dictionary.CategoryDairy,
			Unit:           dictionary.UnitGram,
			DefaultPortion: 30,
			PortionLabel:   "1 kanál (30g)",
			Per100:         nutrition.Facts{Calories: 160, Protein: 2.8, Carbs: 3.5, Fat: 15.0},
		},
		{
			ID:             "tea",
			Names:          []string{"tea", "fekete tea"},
			Category:       dictionary.CategoryDrink,
			Unit:           dictionary.UnitMilliliter,
			DefaultPortion: 250,
			PortionLabel:   "1 csésze (250ml)",
			Per100:         nutrition.Facts{Calories: 1, Protein: 0, Carbs: 0.3, Fat: 0},
		},
		{
			ID:             "tojas",
			Names:          []string{"tojás", "egg", "eggs"},
			Category:       dictionary.CategoryOther,
			Unit:           dictionary.UnitPiece,
			DefaultPortion: 2,
			PortionLabel:   "2 db",
			Per100:         nutrition.Facts{Calories: 7800, Protein: 660.0, Carbs: 60.0, Fat: 530.0},
		},
		{
			ID:             "sonka",
			Names:          []string{"sonka", "ham"},
			Category:       dictionary.CategoryMeat,
			Unit:           dictionary.UnitGram,
			DefaultPortion: 50,
			PortionLabel:   "2-3 szelet (50g)",
			Per100:         nutrition.Facts{Calories: 110, Protein: 18.0, Carbs: 1.5, Fat: 3.5},
		},
		{
			ID:             "kave",
			Names:          []string{"kávé", "coffee"},
			Category:       dictionary.CategoryDrink,
			Unit:           dictionary.UnitMilliliter,
			DefaultPortion: 50,
			PortionLabel:   "1 eszpresszó (50ml)",
			Per100:         nutrition.Facts{Calories: 2, Protein: 0.2, Carbs: 0, Fat: 0},
		},
		{
			ID:             "rizs",
			Names:          []string{"rizs", "rice", "főtt rizs"},
			Category:       dictionary.CategoryGrain,
			Unit:           dictionary.UnitGram,
			DefaultPortion: 150,
			PortionLabel:   "1 adag (150g)",
			Per100:         nutrition.Facts{Calories: 130, Protein: 2.7, Carbs: 28.0, Fat: 0.3},
		},
	}
}

func TestMatchFoodExact(t *testing.T) {
	match := MatchFood("tej", fixtureFoods())
	require.NotNil(t, match)
	assert.Equal(t, "tej", match.Item.ID)
	assert.Equal(t, 1.0, match.Score)
}

func TestMatchFoodExactAccentInsensitive(t *testing.T) {
	match := MatchFood("kave", fixtureFoods())
	require.NotNil(t, match)
	assert.Equal(t, "kave", match.Item.ID)
	assert.Equal(t, 1.0, match.Score)
}

func TestMatchFoodAliasExact(t *testing.T) {
	match := MatchFood("milk", fixtureFoods())
	require.NotNil(t, match)
	assert.Equal(t, "tej", match.Item.ID)
	assert.Equal(t, 1.0, match.Score)
}

func TestMatchFoodPhraseContainsName(t *testing.T) {
	match := MatchFood("80g sonka", fixtureFoods())
	require.NotNil(t, match)
	assert.Equal(t, "sonka", match.Item.ID)
	assert.Equal(t, 0.9, match.Score)
}

func TestMatchFoodNameContainsPhrase(t *testing.T) {
	// 片語是 "főtt rizs" 名稱的前段子字串
	match := MatchFood("fott riz", fixtureFoods())
	require.NotNil(t, match)
	assert.Equal(t, "rizs", match.Item.ID)
}

func TestMatchFoodNoMatch(t *testing.T) {
	assert.Nil(t, MatchFood("xyzqwert", fixtureFoods()))
}

func TestMatchFoodEmpty(t *testing.T) {
	assert.Nil(t, MatchFood("   ", fixtureFoods()))
}
