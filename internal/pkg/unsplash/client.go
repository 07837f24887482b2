package unsplash

import (
	"Verdure/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.unsplash.com"

// overFetch 多取几条用于过滤后仍能凑足数量
const overFetch = 5

// 瞬态状态码，命中后按退避重试
var retryStatus = map[int]bool{
	http.StatusRequestTimeout:      true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// 植物相关关键词，描述或标签至少命中一个才保留
var plantKeywords = []string{
	"plant", "foliage", "leaf", "flower", "fruit", "tree",
	"botanical", "garden", "nature", "green", "organic", "grow",
}

// Photo 筛选后的候选图片
type Photo struct {
	URL         string
	Description string
}

type searchResponse struct {
	Results []photoResult `json:"results"`
}

type photoResult struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Regular string `json:"regular"`
	} `json:"urls"`
	Tags []struct {
		Title string `json:"title"`
	} `json:"tags"`
}

type Client struct {
	http      *resty.Client
	accessKey string
}

func NewClient(cfg config.UnsplashConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(8*time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || retryStatus[r.StatusCode()]
		})

	return &Client{
		http:      client,
		accessKey: cfg.AccessKey,
	}
}

// Search 搜索至多 count 张横版植物图片。密钥缺失或上游失败返回空列表，
// 不向调用方传播错误，下游自行回退占位图。
func (s *Client) Search(ctx context.Context, query string, count int) []Photo {
	if s.accessKey == "" {
		log.WarnContext(ctx, "Unsplash access key not configured")
		return nil
	}

	photos, err := s.search(ctx, query, count)
	if err != nil {
		log.ErrorContext(ctx, "Unsplash search failed", "query", query, "err", err)
		return nil
	}
	return photos
}

func (s *Client) search(ctx context.Context, query string, count int) ([]Photo, error) {
	var result searchResponse
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Client-ID "+s.accessKey).
		SetQueryParams(map[string]string{
			"query":          query + " plant|foliage|leaf|flower|fruit|botanical|garden|nature",
			"per_page":       strconv.Itoa(count + overFetch),
			"orientation":    "landscape",
			"content_filter": "high",
		}).
		SetResult(&result).
		Get("/search/photos")
	if err != nil {
		return nil, errors.Wrap(err, "unsplash request")
	}
	if resp.IsError() {
		return nil, errors.Errorf("unsplash status %d", resp.StatusCode())
	}

	photos := make([]Photo, 0, count)
	for _, photo := range result.Results {
		if len(photos) >= count {
			break
		}
		if !isPlantPhoto(photo) {
			log.DebugContext(ctx, "Skipping non-plant image", "id", photo.ID)
			continue
		}

		description := strings.ToLower(photo.Description)
		if description == "" {
			description = strings.ToLower(photo.AltDescription)
		}
		if description == "" {
			description = query
		}

		photos = append(photos, Photo{
			URL:         photo.URLs.Regular,
			Description: description,
		})
	}

	return photos, nil
}

func isPlantPhoto(photo photoResult) bool {
	description := strings.ToLower(photo.Description + " " + photo.AltDescription)
	for _, keyword := range plantKeywords {
		if strings.Contains(description, keyword) {
			return true
		}
	}
	for _, tag := range photo.Tags {
		title := strings.ToLower(tag.Title)
		for _, keyword := range plantKeywords {
			if title == keyword {
				return true
			}
		}
	}
	return false
}

// Caption 由描述与搜索词拼出展示说明
func (p Photo) Caption(query string) string {
	return fmt.Sprintf("%s - %s", p.Description, query)
}

// AltText 默认替代文本
func (p Photo) AltText(query string) string {
	return fmt.Sprintf("Photo of %s plant", query)
}
