package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// 比對一律在正規化後的字串上進行：小寫、去除變音符號。
// 匈牙利文的長元音 ő/ű 先行替換，確保與 NFD 分解的結果一致。
var (
	hungarianFolder = strings.NewReplacer(
		"ő", "o", "Ő", "O",
		"ű", "u", "Ű", "U",
	)

	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize 將輸入轉為比對用的正規形式（小寫、無變音符號）
// 冪等：Normalize(Normalize(s)) == Normalize(s)
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = hungarianFolder.Replace(s)
	s = strings.ToLower(s)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		// transform 失敗時退回僅小寫的版本
		return s
	}
	return folded
}
