package llm

import (
	"Verdure/internal/model"
	"Verdure/internal/pkg/consts"
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

var (
	ErrMissingTitle   = errors.New("article response missing title")
	ErrMissingContent = errors.New("article response missing content")
	ErrMissingSummary = errors.New("article response missing summary")
)

// ArticleResponse 模型返回的结构化文章
type ArticleResponse struct {
	Title                string   `json:"title"`
	Content              string   `json:"content"`
	Summary              string   `json:"summary"`
	ScientificName       string   `json:"scientific_name"`
	Family               string   `json:"family"`
	CareDifficulty       string   `json:"care_difficulty"`
	WateringNeeds        string   `json:"watering_needs"`
	SunlightRequirements string   `json:"sunlight_requirements"`
	GrowthRate           string   `json:"growth_rate"`
	MaxHeight            string   `json:"max_height"`
	BloomingSeason       string   `json:"blooming_season"`
	HarvestTime          string   `json:"harvest_time"`
	Tags                 []string `json:"tags"`
	VideoSearchQuery     string   `json:"video_search_query"`
}

// ParseArticleResponse 剥离可能的 markdown 代码围栏后解析 JSON，
// 并校验必填字段与封闭枚举
func ParseArticleResponse(s string) (*ArticleResponse, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var article ArticleResponse
	if err := json.Unmarshal([]byte(cleaned), &article); err != nil {
		return nil, err
	}

	if strings.TrimSpace(article.Title) == "" {
		return nil, ErrMissingTitle
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, ErrMissingContent
	}
	if strings.TrimSpace(article.Summary) == "" {
		return nil, ErrMissingSummary
	}

	// 摘要硬截断到 160 字符
	if len(article.Summary) > consts.SummaryMaxLen {
		article.Summary = article.Summary[:consts.SummaryMaxLen]
	}

	// 校验养护难度是否在枚举内，非法值直接置空
	if !model.CareDifficulty(article.CareDifficulty).Valid() {
		article.CareDifficulty = ""
	}

	return &article, nil
}
