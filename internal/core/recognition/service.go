package recognition

import (
	"sort"
	"strings"
	"unicode/utf8"

	"meal-recognizer/internal/core/dictionary"
	"meal-recognizer/internal/core/nutrition"
	"meal-recognizer/internal/core/text"
	"meal-recognizer/internal/infrastructure/config"
)

// minInputLength 辨識與搜尋的最短輸入長度（去除空白後）
const minInputLength = 2

// Service 辨識服務：自由文字複合辨識與即時搜尋的公開入口。
// 字典注入後唯讀，所有呼叫都是輸入的純函數，可安全併發使用。
type Service struct {
	dict       *dictionary.Dictionary
	maxResults int
	homeRegion string
}

// NewService 創建辨識服務
func NewService(dict *dictionary.Dictionary, cfg *config.Config) *Service {
	return &Service{
		dict:       dict,
		maxResults: cfg.Search.MaxResults,
		homeRegion: text.Normalize(cfg.Search.HomeRegion),
	}
}

// RecognizedComponent 一次辨識中找到的單一成分
type RecognizedComponent struct {
	Item         *dictionary.FoodItem `json:"item"`
	Portion      float64              `json:"portion"`
	PortionLabel string               `json:"portion_label"`
	MatchedText  string               `json:"matched_text"`
	Nutrition    nutrition.Facts      `json:"nutrition"`
}

// RecognitionResult 自由文字辨識的彙總結果
type RecognitionResult struct {
	Components     []RecognizedComponent `json:"components"`
	TotalNutrition nutrition.Facts       `json:"total_nutrition"`
	CombinedName   string                `json:"combined_name"`
	CombinedImage  string                `json:"combined_image"`
	Confidence     float64               `json:"confidence"`
}

// RecognizeText 辨識一段自由文字描述中的食物與份量。
// 找不到任何成分時回傳 nil；這是正常結果，不是錯誤。
func (s *Service) RecognizeText(input string) *RecognitionResult {
	trimmed := strings.TrimSpace(input)
	if utf8.RuneCountInString(trimmed) < minInputLength {
		return nil
	}

	phrases := text.SplitPhrases(trimmed)
	if len(phrases) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var components []RecognizedComponent
	for _, phrase := range phrases {
		match := s.matchPhrase(phrase)
		if match == nil {
			continue
		}
		// 同一食物只記第一次出現
		if seen[match.Item.ID] {
			continue
		}
		seen[match.Item.ID] = true

		quantity := ExtractQuantity(phrase, match.Item)
		components = append(components, RecognizedComponent{
			Item:         match.Item,
			Portion:      quantity.Portion,
			PortionLabel: quantity.Label,
			MatchedText:  phrase,
			Nutrition:    nutrition.Scale(match.Item.Per100, quantity.Portion),
		})
	}

	if len(components) == 0 {
		return nil
	}

	facts := make([]nutrition.Facts, len(components))
	names := make([]string, len(components))
	for i, c := range components {
		facts[i] = c.Nutrition
		names[i] = c.Item.CanonicalName()
	}

	return &RecognitionResult{
		Components:     components,
		TotalNutrition: nutrition.Sum(facts),
		CombinedName:   strings.Join(names, " + "),
		CombinedImage:  components[0].Item.Icon,
		Confidence:     float64(len(components)) / float64(len(phrases)),
	}
}

// matchPhrase 對單一片語嘗試比對，依序回退：
// (a) 片語原樣 (b) 每個詞的詞幹 (c) 每個單詞與其詞幹
func (s *Service) matchPhrase(phrase string) *FoodMatch {
	if match := MatchFood(phrase, s.dict.Foods); match != nil {
		return match
	}

	words := strings.Fields(phrase)

	// 詞幹回退
	for _, w := range words {
		normalized := text.Normalize(w)
		for _, stem := range text.Stem(normalized) {
			if stem == normalized {
				continue
			}
			if match := MatchFood(stem, s.dict.Foods); match != nil {
				return match
			}
		}
	}

	// 單詞回退：太短的詞與連接詞跳過
	for _, w := range words {
		normalized := text.Normalize(w)
		if utf8.RuneCountInString(normalized) < 3 || text.IsConnector(normalized) {
			continue
		}
		if match := MatchFood(normalized, s.dict.Foods); match != nil {
			return match
		}
		for _, stem := range text.Stem(normalized)[1:] {
			if match := MatchFood(stem, s.dict.Foods); match != nil {
				return match
			}
		}
	}

	return nil
}

// SearchFoods 即時搜尋（autocomplete）：分數遞減，最多 maxResults 筆
func (s *Service) SearchFoods(query string) []dictionary.FoodItem {
	normalized := text.Normalize(strings.TrimSpace(query))
	if utf8.RuneCountInString(normalized) < minInputLength {
		return nil
	}

	var queryStems []string
	for _, w := range strings.Fields(normalized) {
		queryStems = append(queryStems, text.Stem(w)...)
	}

	type scored struct {
		item  *dictionary.FoodItem
		score float64
	}
	var results []scored
	for i := range s.dict.Foods {
		item := &s.dict.Foods[i]
		if score := searchScore(normalized, queryStems, item); score > 0 {
			results = append(results, scored{item: item, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	if len(results) > s.maxResults {
		results = results[:s.maxResults]
	}

	items := make([]dictionary.FoodItem, len(results))
	for i, r := range results {
		items[i] = *r.item
	}
	return items
}

// SearchDishes 複合菜餚搜尋，分數遞減
func (s *Service) SearchDishes(query string) []DishMatch {
	return SearchDishes(query, s.dict.Dishes, s.homeRegion)
}
