package recognition

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"meal-recognizer/internal/core/cache"
	"meal-recognizer/internal/core/dictionary"
	"meal-recognizer/internal/core/nutrition"
	recognitionService "meal-recognizer/internal/core/recognition"
	"meal-recognizer/internal/infrastructure/config"
	"meal-recognizer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := common.InitLogger("error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testDictionary() *dictionary.Dictionary {
	return &dictionary.Dictionary{
		Foods: []dictionary.FoodItem{
			{
				ID:             "tojas",
				Names:          []string{"tojás", "egg", "eggs"},
				Category:       dictionary.CategoryOther,
				Unit:           dictionary.UnitPiece,
				DefaultPortion: 2,
				PortionLabel:   "2 db",
				Per100:         nutrition.Facts{Calories: 7800, Protein: 660.0, Carbs: 60.0, Fat: 530.0},
			},
			{
				ID:             "sonka",
				Names:          []string{"sonka", "ham"},
				Category:       dictionary.CategoryMeat,
				Unit:           dictionary.UnitGram,
				DefaultPortion: 50,
				PortionLabel:   "2-3 szelet (50g)",
				Per100:         nutrition.Facts{Calories: 110, Protein: 18.0, Carbs: 1.5, Fat: 3.5},
			},
			{
				ID:             "tej",
				Names:          []string{"tej", "milk"},
				Category:       dictionary.CategoryDairy,
				Unit:           dictionary.UnitMilliliter,
				DefaultPortion: 200,
				PortionLabel:   "1 pohár (200ml)",
				Per100:         nutrition.Facts{Calories: 47, Protein: 3.3, Carbs: 4.7, Fat: 1.5},
			},
		},
		Dishes: []dictionary.CompoundFood{
			{
				ID:               "gulyas",
				BaseName:         "gulyás",
				Names:            []string{"goulash"},
				Region:           "alföld",
				DefaultVariantID: "klasszikus",
				Variants: []dictionary.CompoundFoodVariant{
					{
						ID:              "klasszikus",
						VariantName:     "klasszikus marhagulyás",
						Per100:          nutrition.Facts{Calories: 75, Protein: 5.5, Carbs: 6.0, Fat: 3.0},
						DefaultPortionG: 400,
						Tags:            []string{"leves"},
					},
				},
			},
		},
	}
}

// stubStore 記憶體 map，測試快取讀寫路徑用
type stubStore struct {
	data map[string]string
	sets int
}

func newStubStore() *stubStore {
	return &stubStore{data: make(map[string]string)}
}

func (s *stubStore) Get(ctx context.Context, operation, key string) (string, error) {
	if v, ok := s.data[operation+":"+key]; ok {
		return v, nil
	}
	return "", common.ErrCacheMiss
}

func (s *stubStore) Set(ctx context.Context, operation, key, value string) error {
	s.sets++
	s.data[operation+":"+key] = value
	return nil
}

func (s *stubStore) Close() error { return nil }

func testRouter(store cache.Store) *gin.Engine {
	cfg := &config.Config{
		Search: config.SearchConfig{MaxResults: 15, HomeRegion: "alföld"},
	}
	svc := recognitionService.NewService(testDictionary(), cfg)
	h := NewHandler(svc, store)

	router := gin.New()
	router.POST("/api/v1/recognize", h.HandleRecognize)
	router.GET("/api/v1/foods/search", h.HandleSearchFoods)
	router.GET("/api/v1/dishes/search", h.HandleSearchDishes)
	return router
}

func postRecognize(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recognize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleRecognize(t *testing.T) {
	router := testRouter(nil)

	w := postRecognize(router, `{"text":"2 tojás és 80g sonka"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result recognitionService.RecognitionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Components, 2)
	assert.Equal(t, float64(244), result.TotalNutrition.Calories)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestHandleRecognizeInvalidBody(t *testing.T) {
	router := testRouter(nil)

	w := postRecognize(router, `{"not_text":"tej"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRecognizeTooShort(t *testing.T) {
	router := testRouter(nil)

	w := postRecognize(router, `{"text":"a"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "QUERY_TOO_SHORT")
}

func TestHandleRecognizeNotFound(t *testing.T) {
	router := testRouter(nil)

	w := postRecognize(router, `{"text":"xyzqwert"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NO_RECOGNITION")
}

func TestHandleRecognizeCaching(t *testing.T) {
	store := newStubStore()
	router := testRouter(store)

	first := postRecognize(router, `{"text":"2dl tej"}`)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, store.sets)

	// 第二次相同請求由快取回應，不再寫入
	second := postRecognize(router, `{"text":"2dl tej"}`)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, store.sets)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestHandleSearchFoods(t *testing.T) {
	router := testRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/foods/search?q=te", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []dictionary.FoodItem `json:"results"`
		Count   int                   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(resp.Results), resp.Count)
	assert.NotEmpty(t, resp.Results)
}

func TestHandleSearchFoodsTooShort(t *testing.T) {
	router := testRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/foods/search?q=t", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSearchDishes(t *testing.T) {
	router := testRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dishes/search?q=gulyás", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gulyas")
}
