package dictionary

import (
	"meal-recognizer/internal/core/nutrition"
)

// Unit 食物的計量單位
type Unit string

const (
	UnitGram       Unit = "g"
	UnitMilliliter Unit = "ml"
	UnitPiece      Unit = "db"
)

// Category 食物分類
type Category string

const (
	CategoryDairy     Category = "dairy"
	CategoryBakery    Category = "bakery"
	CategoryMeat      Category = "meat"
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryDrink     Category = "drink"
	CategoryGrain     Category = "grain"
	CategorySweet     Category = "sweet"
	CategoryOther     Category = "other"
)

// FoodItem 單一食物/飲品。載入後不可變。
// Names 第一個元素為標準名稱，其餘為可接受的別名。
type FoodItem struct {
	ID             string          `json:"id"`
	Names          []string        `json:"names"`
	Category       Category        `json:"category"`
	Unit           Unit            `json:"unit"`
	DefaultPortion float64         `json:"default_portion"`
	PortionLabel   string          `json:"portion_label"`
	Icon           string          `json:"icon"`
	Per100         nutrition.Facts `json:"per_100"`
}

// CanonicalName 標準名稱（Names 的第一個元素）
func (f *FoodItem) CanonicalName() string {
	return f.Names[0]
}

// CompoundFood 傳統複合菜餚，含多個食譜變體
type CompoundFood struct {
	ID               string                `json:"id"`
	BaseName         string                `json:"base_name"`
	Names            []string              `json:"names"`
	Category         Category              `json:"category"`
	Region           string                `json:"region"`
	Description      string                `json:"description"`
	Variants         []CompoundFoodVariant `json:"variants"`
	DefaultVariantID string                `json:"default_variant_id"`
}

// DefaultVariant 取得預設變體。字典已通過驗證，一定存在。
func (c *CompoundFood) DefaultVariant() *CompoundFoodVariant {
	for i := range c.Variants {
		if c.Variants[i].ID == c.DefaultVariantID {
			return &c.Variants[i]
		}
	}
	return &c.Variants[0]
}

// CompoundFoodVariant 複合菜餚的一個食譜變體
type CompoundFoodVariant struct {
	ID              string          `json:"id"`
	VariantName     string          `json:"variant_name"`
	Description     string          `json:"description"`
	KeyIngredients  []string        `json:"key_ingredients"`
	Per100          nutrition.Facts `json:"per_100"`
	DefaultPortionG float64         `json:"default_portion_g"`
	PortionLabel    string          `json:"portion_label"`
	Tags            []string        `json:"tags"`
}

// Dictionary 靜態參考資料：食物與複合菜餚字典。
// 程序啟動時載入一次，之後視為唯讀；熱重載時以新實例整體替換。
type Dictionary struct {
	Foods  []FoodItem     `json:"foods"`
	Dishes []CompoundFood `json:"dishes"`
}
