package dictionary

import (
	"fmt"
	"os"

	"meal-recognizer/internal/core/nutrition"
	"meal-recognizer/internal/pkg/common"

	"go.uber.org/zap"
)

// LoadFromFiles 從本地 JSON 檔載入字典並驗證。
// 格式錯誤或違反不變量時回傳錯誤，引擎不得使用未驗證的字典。
func LoadFromFiles(foodsPath, dishesPath string) (*Dictionary, error) {
	foodsData, err := os.ReadFile(foodsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read foods dictionary: %w", err)
	}

	var foods []FoodItem
	if err := common.ParseJSONBytes(foodsData, &foods); err != nil {
		return nil, fmt.Errorf("failed to parse foods dictionary: %w", err)
	}

	dishesData, err := os.ReadFile(dishesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dishes dictionary: %w", err)
	}

	var dishes []CompoundFood
	if err := common.ParseJSONBytes(dishesData, &dishes); err != nil {
		return nil, fmt.Errorf("failed to parse dishes dictionary: %w", err)
	}

	dict := &Dictionary{Foods: foods, Dishes: dishes}
	if err := Validate(dict); err != nil {
		return nil, err
	}

	common.LogInfo("字典載入完成",
		zap.String("foods_path", foodsPath),
		zap.String("dishes_path", dishesPath),
		zap.Int("foods", len(dict.Foods)),
		zap.Int("dishes", len(dict.Dishes)),
	)

	return dict, nil
}

// Validate 檢查字典的資料完整性前提條件。
// 比對函式在呼叫時不再防禦這些情況。
func Validate(d *Dictionary) error {
	seenFood := make(map[string]bool, len(d.Foods))
	for i := range d.Foods {
		f := &d.Foods[i]
		if f.ID == "" {
			return fmt.Errorf("food at index %d has empty id", i)
		}
		if seenFood[f.ID] {
			return fmt.Errorf("duplicate food id: %s", f.ID)
		}
		seenFood[f.ID] = true

		if len(f.Names) == 0 {
			return fmt.Errorf("food %s has no names", f.ID)
		}
		if f.DefaultPortion <= 0 {
			return fmt.Errorf("food %s has non-positive default portion", f.ID)
		}
		if err := validateFacts(f.ID, f.Per100); err != nil {
			return err
		}
	}

	seenDish := make(map[string]bool, len(d.Dishes))
	for i := range d.Dishes {
		c := &d.Dishes[i]
		if c.ID == "" {
			return fmt.Errorf("dish at index %d has empty id", i)
		}
		if seenDish[c.ID] {
			return fmt.Errorf("duplicate dish id: %s", c.ID)
		}
		seenDish[c.ID] = true

		if c.BaseName == "" {
			return fmt.Errorf("dish %s has empty base name", c.ID)
		}
		if len(c.Variants) == 0 {
			return fmt.Errorf("dish %s has no variants", c.ID)
		}

		defaultFound := false
		for j := range c.Variants {
			v := &c.Variants[j]
			if v.ID == c.DefaultVariantID {
				defaultFound = true
			}
			if v.DefaultPortionG <= 0 {
				return fmt.Errorf("dish %s variant %s has non-positive default portion", c.ID, v.ID)
			}
			if err := validateFacts(c.ID+"/"+v.ID, v.Per100); err != nil {
				return err
			}
		}
		if !defaultFound {
			return fmt.Errorf("dish %s default variant %q not found among variants", c.ID, c.DefaultVariantID)
		}
	}

	return nil
}

func validateFacts(id string, f nutrition.Facts) error {
	if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 {
		return fmt.Errorf("%s has negative per-100 nutrition values", id)
	}
	return nil
}
