package api

import (
	"Verdure/internal/api/config"
	"Verdure/internal/api/dto"
	"Verdure/internal/api/handler"
	"Verdure/internal/job"
	"Verdure/internal/model"
	"Verdure/internal/pkg/logger"
	"Verdure/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPostService struct {
	detail *dto.PostDetailDTO
}

func (s *stubPostService) ListPosts(_ context.Context, page, pageSize int) (*dto.PostPageDTO, error) {
	return &dto.PostPageDTO{Items: []*dto.PostItemDTO{}, Page: page, PageSize: pageSize}, nil
}

func (s *stubPostService) ListFeatured(context.Context, int) ([]*dto.PostItemDTO, error) {
	return nil, nil
}

func (s *stubPostService) GetPostBySlug(_ context.Context, slug string) (*dto.PostDetailDTO, error) {
	if s.detail == nil || s.detail.Slug != slug {
		return nil, service.ErrPostNotFound
	}
	return s.detail, nil
}

func (s *stubPostService) SearchPosts(_ context.Context, _ string, page, pageSize int) (*dto.PostPageDTO, error) {
	return &dto.PostPageDTO{Page: page, PageSize: pageSize}, nil
}

func (s *stubPostService) ListByCategory(_ context.Context, category string, page, pageSize int) (*dto.PostPageDTO, error) {
	if !model.Category(category).Valid() {
		return nil, service.ErrCategoryInvalid
	}
	return &dto.PostPageDTO{Page: page, PageSize: pageSize}, nil
}

func (s *stubPostService) ListByTag(_ context.Context, _ string, page, pageSize int) (*dto.PostPageDTO, error) {
	return &dto.PostPageDTO{Page: page, PageSize: pageSize}, nil
}

func (s *stubPostService) ListCategories(context.Context) ([]*dto.CategoryDTO, error) {
	return []*dto.CategoryDTO{{Name: "Plants", Slug: "plants"}}, nil
}

type stubContactService struct {
	received []*dto.ContactDTO
}

func (s *stubContactService) SubmitMessage(_ context.Context, message *dto.ContactDTO) error {
	s.received = append(s.received, message)
	return nil
}

type stubGenerationService struct{}

func (s *stubGenerationService) Generate(_ context.Context, category model.Category, _ bool) (*service.GenerateResult, error) {
	if category != "" && !category.Valid() {
		return nil, service.ErrCategoryInvalid
	}
	return &service.GenerateResult{PostID: 1, Title: "Potting Mix Guide", Slug: "potting-mix-guide", Created: true}, nil
}

type stubSchedulerService struct{}

func (s *stubSchedulerService) ShouldRun(context.Context, time.Time) (bool, error) { return false, nil }
func (s *stubSchedulerService) BeginRun(context.Context, string) (bool, error)     { return false, nil }
func (s *stubSchedulerService) EndRun(context.Context, time.Time, string) error    { return nil }

func newTestRouter(t *testing.T, contactSvc *stubContactService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.InitLogger()
	config.Cfg = &config.Config{Server: config.ServerConfig{Port: 8080, ApiKey: "secret"}}

	if contactSvc == nil {
		contactSvc = &stubContactService{}
	}
	generationSvc := &stubGenerationService{}
	dailyPostJob := job.NewDailyPostJob(&stubSchedulerService{}, generationSvc, 1)

	return SetupRouter(&HandlersGroup{
		PostHandler:     handler.NewPostHandler(&stubPostService{}),
		ContactHandler:  handler.NewContactHandler(contactSvc),
		GenerateHandler: handler.NewGenerateHandler(generationSvc, dailyPostJob),
	})
}

func do(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPing(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestGetPostNotFound(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodGet, "/api/posts/nope", "", nil)

	resp := envelope(t, w)
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, "post not found", resp.Message)
}

func TestListByCategoryUnknown(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodGet, "/api/categories/rocks/posts", "", nil)

	resp := envelope(t, w)
	assert.Equal(t, 400, resp.Code)
}

func TestContactValidation(t *testing.T) {
	contactSvc := &stubContactService{}
	r := newTestRouter(t, contactSvc)

	// 缺 email，参数校验直接 400
	w := do(r, http.MethodPost, "/api/contact", `{"name":"a","subject":"s","message":"m"}`, nil)
	resp := envelope(t, w)
	assert.Equal(t, 400, resp.Code)
	assert.Empty(t, contactSvc.received)

	w = do(r, http.MethodPost, "/api/contact", `{"name":"a","email":"a@b.com","subject":"s","message":"m"}`, nil)
	resp = envelope(t, w)
	assert.Equal(t, 200, resp.Code)
	require.Len(t, contactSvc.received, 1)
	assert.Equal(t, "a@b.com", contactSvc.received[0].Email)
}

func TestGenerateRequiresAPIKey(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/api/generate", `{}`, nil)
	resp := envelope(t, w)
	assert.Equal(t, 401, resp.Code)

	w = do(r, http.MethodPost, "/api/generate", `{}`, map[string]string{"X-API-Key": "wrong"})
	resp = envelope(t, w)
	assert.Equal(t, 401, resp.Code)

	w = do(r, http.MethodPost, "/api/generate", `{"category":"care"}`, map[string]string{"X-API-Key": "secret"})
	resp = envelope(t, w)
	assert.Equal(t, 200, resp.Code)
}

func TestGenerateDailySkipsWhenNotDue(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/api/generate/daily", "", map[string]string{"X-API-Key": "secret"})
	resp := envelope(t, w)
	assert.Equal(t, 200, resp.Code)
	assert.Nil(t, resp.Data)
}

func TestTraceHeaderEchoed(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodGet, "/api/ping", "", map[string]string{"X-Trace-ID": "trace-1"})
	assert.Equal(t, "trace-1", w.Header().Get("X-Trace-ID"))
}
