package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStemIncludesOriginal(t *testing.T) {
	stems := Stem("kenyeret")
	assert.Equal(t, "kenyeret", stems[0])
}

func TestStemAccusative(t *testing.T) {
	stems := Stem("kenyeret")
	assert.Contains(t, stems, "kenyer")
}

func TestStemGeminatedInstrumental(t *testing.T) {
	// tejjel → tejj（剝 -el）→ tej（去疊音）
	stems := Stem("tejjel")
	assert.Contains(t, stems, "tejj")
	assert.Contains(t, stems, "tej")
}

func TestStemTooShort(t *testing.T) {
	// 詞根長度不足時不剝尾綴
	stems := Stem("vel")
	assert.Equal(t, []string{"vel"}, stems)
}

func TestStemNoDuplicates(t *testing.T) {
	stems := Stem("tejjel")
	seen := map[string]bool{}
	for _, s := range stems {
		assert.False(t, seen[s], "duplicate stem %q", s)
		seen[s] = true
	}
}

func TestStemEmpty(t *testing.T) {
	assert.Equal(t, []string{""}, Stem(""))
}

func TestIsInstrumental(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"tejjel", true},
		{"kecsketejjel", true},
		{"cukorral", true},
		{"tej", false},
		{"kave", false},
		{"vel", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInstrumental(tt.word))
		})
	}
}
