package recognition

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"meal-recognizer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleSearchFoods 單一食物即時搜尋（autocomplete）
func (h *Handler) HandleSearchFoods(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrQueryTooShort.Message,
			"code":  common.ErrQueryTooShort.Code,
		})
		return
	}

	items := h.service.SearchFoods(query)

	common.LogDebug("食物搜尋完成",
		zap.String("query", query),
		zap.Int("結果數量", len(items)),
	)

	c.JSON(http.StatusOK, gin.H{
		"results": items,
		"count":   len(items),
	})
}

// dishResult 複合菜餚搜尋回應條目
type dishResult struct {
	Dish  interface{} `json:"dish"`
	Score float64     `json:"score"`
}

// HandleSearchDishes 複合菜餚搜尋，分數遞減
func (h *Handler) HandleSearchDishes(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrQueryTooShort.Message,
			"code":  common.ErrQueryTooShort.Code,
		})
		return
	}

	matches := h.service.SearchDishes(query)

	results := make([]dishResult, len(matches))
	for i, m := range matches {
		results[i] = dishResult{Dish: m.Dish, Score: m.Score}
	}

	common.LogDebug("菜餚搜尋完成",
		zap.String("query", query),
		zap.Int("結果數量", len(results)),
	)

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}
