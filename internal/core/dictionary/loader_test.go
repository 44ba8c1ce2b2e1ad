package dictionary

import (
	"testing"

	"meal-recognizer/internal/core/nutrition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDictionary() *Dictionary {
	return &Dictionary{
		Foods: []FoodItem{
			{
				ID:             "tej",
				Names:          []string{"tej", "milk"},
				Category:       CategoryDairy,
				Unit:           UnitMilliliter,
				DefaultPortion: 200,
				PortionLabel:   "1 pohár (200ml)",
				Per100:         nutrition.Facts{Calories: 47, Protein: 3.3, Carbs: 4.7, Fat: 1.5},
			},
		},
		Dishes: []CompoundFood{
			{
				ID:               "gulyas",
				BaseName:         "gulyás",
				Names:            []string{"goulash"},
				Region:           "alföld",
				DefaultVariantID: "klasszikus",
				Variants: []CompoundFoodVariant{
					{
						ID:              "klasszikus",
						VariantName:     "klasszikus marhagulyás",
						Per100:          nutrition.Facts{Calories: 75, Protein: 5.5, Carbs: 6.0, Fat: 3.0},
						DefaultPortionG: 400,
					},
				},
			},
		},
	}
}

func TestValidateAcceptsValidDictionary(t *testing.T) {
	assert.NoError(t, Validate(validDictionary()))
}

func TestValidateRejectsEmptyFoodID(t *testing.T) {
	d := validDictionary()
	d.Foods[0].ID = ""
	assert.Error(t, Validate(d))
}

func TestValidateRejectsDuplicateFoodID(t *testing.T) {
	d := validDictionary()
	d.Foods = append(d.Foods, d.Foods[0])
	assert.Error(t, Validate(d))
}

func TestValidateRejectsFoodWithoutNames(t *testing.T) {
	d := validDictionary()
	d.Foods[0].Names = nil
	assert.Error(t, Validate(d))
}

func TestValidateRejectsNonPositivePortion(t *testing.T) {
	d := validDictionary()
	d.Foods[0].DefaultPortion = 0
	assert.Error(t, Validate(d))
}

func TestValidateRejectsNegativeNutrition(t *testing.T) {
	d := validDictionary()
	d.Foods[0].Per100.Fat = -1
	assert.Error(t, Validate(d))
}

func TestValidateRejectsDishWithoutVariants(t *testing.T) {
	d := validDictionary()
	d.Dishes[0].Variants = nil
	assert.Error(t, Validate(d))
}

func TestValidateRejectsUnknownDefaultVariant(t *testing.T) {
	d := validDictionary()
	d.Dishes[0].DefaultVariantID = "nincs-ilyen"
	assert.Error(t, Validate(d))
}

func TestDefaultVariant(t *testing.T) {
	d := validDictionary()
	v := d.Dishes[0].DefaultVariant()
	require.NotNil(t, v)
	assert.Equal(t, "klasszikus", v.ID)
}

func TestCanonicalName(t *testing.T) {
	d := validDictionary()
	assert.Equal(t, "tej", d.Foods[0].CanonicalName())
}

func TestLoadFromFilesMissingFile(t *testing.T) {
	_, err := LoadFromFiles("nonexistent/foods.json", "nonexistent/dishes.json")
	assert.Error(t, err)
}
