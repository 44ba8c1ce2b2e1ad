package dictionary

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"meal-recognizer/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RemoteSource 遠端字典來源。宿主應用可將字典放在任何 HTTP 端點，
// 端點需回傳 {"foods": [...], "dishes": [...]} 格式的 JSON。
type RemoteSource struct {
	client *resty.Client
	url    string
}

// NewRemoteSource 創建遠端字典來源
func NewRemoteSource(url string, timeout time.Duration) *RemoteSource {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &RemoteSource{
		client: client,
		url:    url,
	}
}

// Fetch 下載並驗證字典
func (s *RemoteSource) Fetch(ctx context.Context) (*Dictionary, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.url)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch dictionary: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("dictionary endpoint returned status %d", resp.StatusCode())
	}

	var dict Dictionary
	if err := common.ParseJSONBytes(resp.Body(), &dict); err != nil {
		return nil, fmt.Errorf("failed to parse remote dictionary: %w", err)
	}

	if err := Validate(&dict); err != nil {
		return nil, err
	}

	common.LogInfo("遠端字典載入完成",
		zap.String("url", s.url),
		zap.Int("foods", len(dict.Foods)),
		zap.Int("dishes", len(dict.Dishes)),
	)

	return &dict, nil
}
