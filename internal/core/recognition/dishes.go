package recognition

import (
	"sort"
	"strings"
	"unicode/utf8"

	"meal-recognizer/internal/core/dictionary"
	"meal-recognizer/internal/core/text"
)

// homeRegionBonus 指定「本地區域」標籤的固定加分
const homeRegionBonus = 5

// DishMatch 複合菜餚搜尋結果
type DishMatch struct {
	Dish  *dictionary.CompoundFood
	Score float64
}

// SearchDishes 將查詢字串與所有複合菜餚比對，回傳分數遞減的清單。
// 與單一食物比對不同，這個搜尋支援列表：分數為 0 的條目剔除，
// 其餘全部回傳。
func SearchDishes(query string, dishes []dictionary.CompoundFood, homeRegion string) []DishMatch {
	normalized := text.Normalize(strings.TrimSpace(query))
	if utf8.RuneCountInString(normalized) < 2 {
		return nil
	}

	var matches []DishMatch
	for i := range dishes {
		dish := &dishes[i]
		score := scoreDish(normalized, dish)
		if score <= 0 {
			continue
		}
		if homeRegion != "" && text.Normalize(dish.Region) == homeRegion {
			score += homeRegionBonus
		}
		matches = append(matches, DishMatch{Dish: dish, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// scoreDish 複合菜餚的評分規則：
// 基本名稱完全一致 100；前綴 95（別名 92）；子字串 85（別名 82）；
// 反向包含（查詢較長、名稱 ≥3 字）78；詞幹重疊 50+30×比例（僅在
// 沒有更高規則命中時）；變體名稱子字串（查詢 ≥4 字）85；標籤完全
// 一致 60。各加成取最大值。
func scoreDish(query string, dish *dictionary.CompoundFood) float64 {
	base := text.Normalize(dish.BaseName)

	best := 0.0
	switch {
	case query == base:
		best = 100
	case strings.HasPrefix(base, query):
		best = 95
	}

	if best < 92 {
		for _, alias := range dish.Names {
			if strings.HasPrefix(text.Normalize(alias), query) {
				best = 92
				break
			}
		}
	}
	if best < 85 && strings.Contains(base, query) {
		best = 85
	}
	if best < 82 {
		for _, alias := range dish.Names {
			if strings.Contains(text.Normalize(alias), query) {
				best = 82
				break
			}
		}
	}
	if best < 78 && reverseContains(query, base, dish.Names) {
		best = 78
	}

	// 詞幹重疊只在沒有任何較高規則命中時計分
	if best == 0 {
		if ratio := dishWordOverlap(query, base); ratio > 0 {
			best = 50 + 30*ratio
		}
	}

	// 變體名稱子字串
	if utf8.RuneCountInString(query) >= 4 {
		for i := range dish.Variants {
			if strings.Contains(text.Normalize(dish.Variants[i].VariantName), query) {
				if best < 85 {
					best = 85
				}
				break
			}
		}
	}

	// 標籤完全一致
	if best < 60 {
		for i := range dish.Variants {
			for _, tag := range dish.Variants[i].Tags {
				if text.Normalize(tag) == query {
					best = 60
					break
				}
			}
			if best == 60 {
				break
			}
		}
	}

	return best
}

// reverseContains 查詢包含完整名稱（名稱至少 3 字）
func reverseContains(query, base string, aliases []string) bool {
	if utf8.RuneCountInString(base) >= 3 && strings.Contains(query, base) {
		return true
	}
	for _, alias := range aliases {
		normalized := text.Normalize(alias)
		if utf8.RuneCountInString(normalized) >= 3 && strings.Contains(query, normalized) {
			return true
		}
	}
	return false
}

// dishWordOverlap 查詢詞命中比例（命中數 / 查詢詞數）
func dishWordOverlap(query, name string) float64 {
	queryWords := strings.Fields(query)
	nameWords := strings.Fields(name)
	if len(queryWords) == 0 || len(nameWords) == 0 {
		return 0
	}

	nameStems := make([][]string, len(nameWords))
	for i, w := range nameWords {
		nameStems[i] = text.Stem(w)
	}

	matched := 0
	for _, w := range queryWords {
		stems := text.Stem(w)
		for _, ns := range nameStems {
			if stemsOverlap(stems, ns) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(queryWords))
}
