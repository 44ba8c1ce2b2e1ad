package recognition

import (
	"math"
	"strings"
	"unicode/utf8"

	"meal-recognizer/internal/core/dictionary"
	"meal-recognizer/internal/core/text"
)

// minConfidence 接受比對結果的最低信心分數。
// 低於此值的比對多半是單字母或偶然的子字串命中，一律拒絕。
const minConfidence = 0.3

// FoodMatch 字典比對結果
type FoodMatch struct {
	Item  *dictionary.FoodItem
	Score float64 // [0,1]
}

// MatchFood 將片語與字典中每個條目的每個名稱比對，回傳最高分的結果。
// 完全一致（分數 1.0）立即結束搜尋；最高分低於信心門檻時回傳 nil。
func MatchFood(phrase string, foods []dictionary.FoodItem) *FoodMatch {
	normalized := text.Normalize(strings.TrimSpace(phrase))
	if normalized == "" {
		return nil
	}

	var best *FoodMatch
	for i := range foods {
		item := &foods[i]
		for _, name := range item.Names {
			normalizedName := text.Normalize(name)
			if normalizedName == "" {
				continue
			}
			// 完全一致：不可能有更高分，直接結束
			if normalized == normalizedName {
				return &FoodMatch{Item: item, Score: 1.0}
			}
			score := scoreName(normalized, normalizedName)
			if score > 0 && (best == nil || score > best.Score) {
				best = &FoodMatch{Item: item, Score: score}
			}
		}
	}

	if best == nil || best.Score < minConfidence {
		return nil
	}
	return best
}

// scoreName 依優先序套用第一個適用的規則（輸入已正規化）：
//  1. 片語包含完整名稱 → max(0.9, 名稱長度/片語長度)
//  2. 名稱包含完整片語（片語 ≥3 字）→ max(0.7, 片語長度/名稱長度)
//  3. 詞幹重疊比例 × 0.8
func scoreName(phrase, name string) float64 {
	phraseLen := utf8.RuneCountInString(phrase)
	nameLen := utf8.RuneCountInString(name)

	if strings.Contains(phrase, name) {
		return math.Max(0.9, float64(nameLen)/float64(phraseLen))
	}
	if phraseLen >= 3 && strings.Contains(name, phrase) {
		return math.Max(0.7, float64(phraseLen)/float64(nameLen))
	}
	return scoreWordOverlap(phrase, name)
}

// scoreWordOverlap 詞幹層級的重疊評分。
// 分母取兩邊詞數的較大者，單詞片語對上多詞名稱會被壓低分數。
// 改分母會改變比對行為，維持現狀。
func scoreWordOverlap(phrase, name string) float64 {
	phraseWords := strings.Fields(phrase)
	nameWords := strings.Fields(name)
	if len(phraseWords) == 0 || len(nameWords) == 0 {
		return 0
	}

	nameStems := make([][]string, len(nameWords))
	for i, w := range nameWords {
		nameStems[i] = text.Stem(w)
	}

	matched := 0
	for _, w := range phraseWords {
		stems := text.Stem(w)
		for _, ns := range nameStems {
			if stemsOverlap(stems, ns) {
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return 0
	}

	denom := len(phraseWords)
	if len(nameWords) > denom {
		denom = len(nameWords)
	}
	return float64(matched) / float64(denom) * 0.8
}

// stemsOverlap 對稱的詞幹比對：相等，或一方是另一方長度 ≥3 的前綴
func stemsOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
			if utf8.RuneCountInString(x) >= 3 && strings.HasPrefix(y, x) {
				return true
			}
			if utf8.RuneCountInString(y) >= 3 && strings.HasPrefix(x, y) {
				return true
			}
		}
	}
	return false
}

// searchScore 即時搜尋（邊打邊搜）用的簡化評分：
// 詞幹前綴 0.95、全字串包含 0.9/0.85、詞幹子字串 0.8
func searchScore(query string, queryStems []string, item *dictionary.FoodItem) float64 {
	best := 0.0
	for _, name := range item.Names {
		normalizedName := text.Normalize(name)
		if normalizedName == "" {
			continue
		}

		if strings.HasPrefix(normalizedName, query) {
			return 0.95
		}

		score := 0.0
		for _, w := range strings.Fields(normalizedName) {
			for _, ns := range text.Stem(w) {
				for _, qs := range queryStems {
					switch {
					case strings.HasPrefix(ns, qs):
						score = math.Max(score, 0.95)
					case strings.Contains(ns, qs):
						score = math.Max(score, 0.8)
					}
				}
			}
		}
		if strings.Contains(normalizedName, query) {
			score = math.Max(score, 0.9)
		} else if utf8.RuneCountInString(normalizedName) >= 3 && strings.Contains(query, normalizedName) {
			score = math.Max(score, 0.85)
		}

		best = math.Max(best, score)
	}
	return best
}
