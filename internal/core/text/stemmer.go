package text

import (
	"strings"
)

// 黏著語格尾綴表，依指定順序嘗試：較長、較特定的尾綴必須先於可能誤判的
// 短尾綴（例如 -jjel 要在 -el 之前）。表內為正規化後的形式（無變音符號）。
//
// 工具格 -val/-vel 及其同化形、上格 -on/-en/-ön、內格 -ban/-ben、
// 延格 -ra/-re、轉變格 -vá/-vé、與格 -nak/-nek、複數 -ok/-ek/-ök/-ak、
// 賓格 -at/-et/-ot/-öt/-t
var suffixTable = []string{
	"jjal", "jjel",
	"val", "vel",
	"al", "el", // 僅在疊輔音之後視為工具格（pl. tollal, tejjel）
	"on", "en",
	"ban", "ben",
	"ra", "re",
	"va", "ve",
	"nak", "nek",
	"ok", "ek", "ak",
	"at", "et", "ot",
	"t",
}

// geminatedOnly 標記只有疊輔音前導時才能剝除的尾綴
var geminatedOnly = map[string]bool{
	"al": true,
	"el": true,
}

// Stem 回傳一個詞的候選詞根集合，原詞永遠包含在內。
// 每個可剝除的尾綴（詞根長度 ≥ 尾綴長度+2）各產生一個候選；
// 若剝除後詞根以疊輔音結尾，額外加入去疊音的形式（tejjel → tejj → tej）。
func Stem(word string) []string {
	stems := []string{word}
	if word == "" {
		return stems
	}

	seen := map[string]bool{word: true}
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			stems = append(stems, s)
		}
	}

	runes := []rune(word)
	for _, suffix := range suffixTable {
		sufRunes := []rune(suffix)
		rootLen := len(runes) - len(sufRunes)
		// 詞根最短長度：尾綴長度 + 2
		if rootLen < len(sufRunes)+2 {
			continue
		}
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		if geminatedOnly[suffix] && !endsGeminated(runes[:rootLen]) {
			continue
		}

		root := string(runes[:rootLen])
		add(root)

		// 同化疊輔音：剝尾綴後以相同雙字母結尾時再去掉一個
		if endsGeminated(runes[:rootLen]) {
			add(string(runes[:rootLen-1]))
		}
	}

	return stems
}

// IsInstrumental 判斷一個詞是否帶工具格尾綴（-val/-vel、同化形 -jjal/-jjel、
// 或疊輔音 + al/el），長度限制與 Stem 相同
func IsInstrumental(word string) bool {
	runes := []rune(word)
	for _, suffix := range []string{"jjal", "jjel", "val", "vel", "al", "el"} {
		sufRunes := []rune(suffix)
		rootLen := len(runes) - len(sufRunes)
		if rootLen < len(sufRunes)+2 {
			continue
		}
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		if geminatedOnly[suffix] && !endsGeminated(runes[:rootLen]) {
			continue
		}
		return true
	}
	return false
}

// endsGeminated 判斷是否以疊輔音（相同的最後兩個字母）結尾
func endsGeminated(runes []rune) bool {
	n := len(runes)
	if n < 2 {
		return false
	}
	if runes[n-1] != runes[n-2] {
		return false
	}
	return !isVowel(runes[n-1])
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
