package text

import (
	"strings"
)

// 連接詞：多項目描述的切分點，正規化後整詞比對。
// 匈牙利文與英文形式並列（a 語音轉寫與手動輸入都可能混用）。
var connectorWords = map[string]bool{
	"es":       true, // és
	"meg":      true,
	"plusz":    true,
	"valamint": true,
	"illetve":  true,
	"is":       true,
	"and":      true,
	"plus":     true,
	"with":     true,
	"also":     true,
	"as":       true,
	"well":     true,
}

// IsConnector 判斷一個詞（正規化後）是否為連接詞
func IsConnector(word string) bool {
	return connectorWords[Normalize(word)]
}

// SplitPhrases 將多項目描述切成候選子片語。
//
// 第一步以連接詞整詞切分；若結果只有單一片語，第二步逐詞掃描：
// 遇到帶工具格尾綴的詞且累積器非空時，先送出累積的片語，再以該詞開啟
// 下一個片語（還原 "kávé kecsketejjel" 這類未加連接詞的複合描述）。
// 第二步只有在能切出多於一個片語時才採用。
func SplitPhrases(input string) []string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return nil
	}

	phrases := splitOnConnectors(words)
	if len(phrases) != 1 {
		return phrases
	}

	if secondary := splitOnInstrumental(words); len(secondary) > 1 {
		return secondary
	}
	return phrases
}

// splitOnConnectors 以連接詞為界切分
func splitOnConnectors(words []string) []string {
	var phrases []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			phrases = append(phrases, strings.Join(current, " "))
			current = nil
		}
	}

	for _, w := range words {
		if IsConnector(w) {
			flush()
			continue
		}
		current = append(current, w)
	}
	flush()

	return phrases
}

// splitOnInstrumental 以工具格詞為下一片語的開頭切分
func splitOnInstrumental(words []string) []string {
	var phrases []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			phrases = append(phrases, strings.Join(current, " "))
			current = nil
		}
	}

	for _, w := range words {
		if IsConnector(w) {
			flush()
			continue
		}
		if IsInstrumental(Normalize(w)) && len(current) > 0 {
			flush()
		}
		current = append(current, w)
	}
	flush()

	return phrases
}
