package recognition

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"meal-recognizer/internal/core/dictionary"
)

// Quantity 從片語中解析出的份量
type Quantity struct {
	Portion   float64 // 以食物本身的單位計
	Label     string  // 人類可讀的份量描述
	Remaining string  // 移除份量標記後的剩餘文字
}

// 單位樣式依序嘗試，第一個命中的樣式勝出。
// 具體的數字+單位樣式必須排在裸數字與倍數詞之前，
// 否則 "80g" 會被當成 80 份。倍數以樣式內的換算係數轉入食物單位。
type unitPattern struct {
	re         *regexp.Regexp
	multiplier float64
}

var (
	numberGroup = `(\d+(?:[.,]\d+)?)`

	unitPatterns = []unitPattern{
		{regexp.MustCompile(`(?i)` + numberGroup + `\s*(?:ml|milliliter)\b`), 1},
		{regexp.MustCompile(`(?i)` + numberGroup + `\s*(?:g|gr|gramm)\b`), 1},
		{regexp.MustCompile(`(?i)` + numberGroup + `\s*(?:dl|deci)\b`), 100},
		{regexp.MustCompile(`(?i)` + numberGroup + `\s*(?:l|liter)\b`), 1000},
		{regexp.MustCompile(`(?i)` + numberGroup + `\s*(?:kg|kilo)\b`), 1000},
		{regexp.MustCompile(`(?i)` + numberGroup + `\s*(?:db|darab|pcs)\b`), 1},
	}

	// N adag / serving，小數份量與 "fél" 也接受
	servingPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?|f[ée]l)\s*(?:adag|portion|serving)s?\b`)

	// 倍數詞
	doublePattern = regexp.MustCompile(`(?i)\b(?:dupla|double)\b`)
	triplePattern = regexp.MustCompile(`(?i)\b(?:tripla|triple)\b`)

	// 裸數字只對按件計量的食物有意義（"2 tojás"）
	bareCountPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\b`)

	// 定性份量修飾詞
	smallPattern = regexp.MustCompile(`(?i)\b(?:kis|kicsi|small)\b`)
	largePattern = regexp.MustCompile(`(?i)\b(?:nagy|large)\b`)
)

// ExtractQuantity 掃描片語中的份量標記並換算為 item 的單位。
// 永遠回傳可用的份量：一無所獲時退回預設份量與預設標籤。
func ExtractQuantity(input string, item *dictionary.FoodItem) Quantity {
	// 數字 + 單位
	for _, p := range unitPatterns {
		if loc := p.re.FindStringSubmatchIndex(input); loc != nil {
			value := parseAmount(input[loc[2]:loc[3]])
			portion := value * p.multiplier
			return Quantity{
				Portion:   portion,
				Label:     formatPortion(portion, item.Unit),
				Remaining: cutMatch(input, loc[0], loc[1]),
			}
		}
	}

	// N adag
	if loc := servingPattern.FindStringSubmatchIndex(input); loc != nil {
		servings := parseAmount(input[loc[2]:loc[3]])
		portion := servings * item.DefaultPortion
		return Quantity{
			Portion:   portion,
			Label:     formatPortion(portion, item.Unit),
			Remaining: cutMatch(input, loc[0], loc[1]),
		}
	}

	// 倍數詞
	if loc := doublePattern.FindStringIndex(input); loc != nil {
		portion := item.DefaultPortion * 2
		return Quantity{
			Portion:   portion,
			Label:     formatPortion(portion, item.Unit),
			Remaining: cutMatch(input, loc[0], loc[1]),
		}
	}
	if loc := triplePattern.FindStringIndex(input); loc != nil {
		portion := item.DefaultPortion * 3
		return Quantity{
			Portion:   portion,
			Label:     formatPortion(portion, item.Unit),
			Remaining: cutMatch(input, loc[0], loc[1]),
		}
	}

	// 裸數字（僅限按件計量）
	if item.Unit == dictionary.UnitPiece {
		if loc := bareCountPattern.FindStringSubmatchIndex(input); loc != nil {
			portion := parseAmount(input[loc[2]:loc[3]])
			return Quantity{
				Portion:   portion,
				Label:     formatPortion(portion, item.Unit),
				Remaining: cutMatch(input, loc[0], loc[1]),
			}
		}
	}

	// 定性修飾詞
	if loc := smallPattern.FindStringIndex(input); loc != nil {
		portion := math.Round(item.DefaultPortion * 0.7)
		return Quantity{
			Portion:   portion,
			Label:     fmt.Sprintf("kis adag (~%s)", formatPortion(portion, item.Unit)),
			Remaining: cutMatch(input, loc[0], loc[1]),
		}
	}
	if loc := largePattern.FindStringIndex(input); loc != nil {
		portion := math.Round(item.DefaultPortion * 1.5)
		return Quantity{
			Portion:   portion,
			Label:     fmt.Sprintf("nagy adag (~%s)", formatPortion(portion, item.Unit)),
			Remaining: cutMatch(input, loc[0], loc[1]),
		}
	}

	// 沒有任何標記：預設份量
	return Quantity{
		Portion:   item.DefaultPortion,
		Label:     item.PortionLabel,
		Remaining: input,
	}
}

// parseAmount 解析數值，逗號小數點與 "fél"（半份）也接受
func parseAmount(s string) float64 {
	lower := strings.ToLower(s)
	if lower == "fél" || lower == "fel" {
		return 0.5
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 1
	}
	return v
}

// formatPortion 組合 "{portion}{unit}" 標籤
func formatPortion(portion float64, unit dictionary.Unit) string {
	return strconv.FormatFloat(portion, 'f', -1, 64) + string(unit)
}

// cutMatch 移除命中的子字串
func cutMatch(s string, start, end int) string {
	return strings.TrimSpace(strings.Join(strings.Fields(s[:start]+" "+s[end:]), " "))
}
