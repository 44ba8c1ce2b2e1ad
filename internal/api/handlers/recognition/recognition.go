package recognition

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"meal-recognizer/internal/core/cache"
	recognitionService "meal-recognizer/internal/core/recognition"
	"meal-recognizer/internal/core/text"
	"meal-recognizer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecognizeRequest 自由文字辨識請求
type RecognizeRequest struct {
	Text string `json:"text" binding:"required"` // 餐點的自由文字描述
}

// Handler 辨識處理程序
type Handler struct {
	service *recognitionService.Service
	cache   cache.Store
}

// NewHandler 創建新的辨識處理程序
func NewHandler(service *recognitionService.Service, cacheStore cache.Store) *Handler {
	return &Handler{
		service: service,
		cache:   cacheStore,
	}
}

// HandleRecognize 辨識自由文字描述中的食物成分與份量
func (h *Handler) HandleRecognize(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("開始處理辨識請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req RecognizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	trimmed := strings.TrimSpace(req.Text)
	if utf8.RuneCountInString(trimmed) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrQueryTooShort.Message,
			"code":  common.ErrQueryTooShort.Code,
		})
		return
	}

	// 辨識是輸入的純函數，可按正規化輸入快取完整回應
	cacheKey := text.Normalize(trimmed)
	if h.cache != nil {
		if cached, err := h.cache.Get(c.Request.Context(), "recognize", cacheKey); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	result := h.service.RecognizeText(trimmed)
	if result == nil {
		common.LogInfo("無法辨識任何食物",
			zap.String("request_id", requestID),
			zap.String("text", trimmed),
		)
		c.JSON(http.StatusNotFound, gin.H{
			"error": common.ErrNoRecognition.Message,
			"code":  common.ErrNoRecognition.Code,
		})
		return
	}

	common.LogInfo("辨識完成",
		zap.String("request_id", requestID),
		zap.Int("成分數量", len(result.Components)),
		zap.Float64("信心值", result.Confidence),
	)

	if h.cache != nil {
		if encoded, err := common.ToJSON(result); err == nil {
			if err := h.cache.Set(c.Request.Context(), "recognize", cacheKey, encoded); err != nil {
				common.LogWarn("快取寫入失敗",
					zap.Error(err),
					zap.String("request_id", requestID),
				)
			}
		}
	}

	c.JSON(http.StatusOK, result)
}
