package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPhrasesConnectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"hungarian and", "tojás és sonka", []string{"tojás", "sonka"}},
		{"english and", "eggs and ham", []string{"eggs", "ham"}},
		{"multiple connectors", "kenyér meg vaj és tea", []string{"kenyér", "vaj", "tea"}},
		{"connector keeps quantities", "2 tojás és 80g sonka", []string{"2 tojás", "80g sonka"}},
		{"no connector", "grillezett csirkemell", []string{"grillezett csirkemell"}},
		{"trailing connector", "tej és", []string{"tej"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPhrases(tt.input))
		})
	}
}

func TestSplitPhrasesInstrumental(t *testing.T) {
	// 連接詞缺席時，工具格尾綴的詞開啟新片語
	assert.Equal(t, []string{"kávé", "kecsketejjel"}, SplitPhrases("kávé kecsketejjel"))
}

func TestSplitPhrasesInstrumentalFirstWordStays(t *testing.T) {
	// 工具格詞在片語開頭時沒有可切分的左側，維持單一片語
	assert.Equal(t, []string{"tejjel kávé"}, SplitPhrases("tejjel kávé"))
}

func TestSplitPhrasesEmpty(t *testing.T) {
	assert.Nil(t, SplitPhrases("   "))
}

func TestIsConnector(t *testing.T) {
	assert.True(t, IsConnector("és"))
	assert.True(t, IsConnector("and"))
	assert.True(t, IsConnector("MEG"))
	assert.False(t, IsConnector("tej"))
}
