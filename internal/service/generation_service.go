package service

import (
	"Verdure/internal/model"
	"Verdure/internal/pkg/llm"
	"Verdure/internal/pkg/topic"
	"Verdure/internal/pkg/unsplash"
	"Verdure/internal/pkg/util"
	"Verdure/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/pkg/errors"
)

// ContentGenerator 生成结构化文章，失败即整次运行失败
type ContentGenerator interface {
	GenerateArticle(ctx context.Context, topic string, category string) (*llm.ArticleResponse, error)
}

// ImageSourcer 搜索候选图片，失败返回空列表
type ImageSourcer interface {
	Search(ctx context.Context, query string, count int) []unsplash.Photo
}

// ImageStorer 存储图片并返回托管 URL，失败返回占位图
type ImageStorer interface {
	StoreImage(ctx context.Context, sourceURL string, publicID string) string
}

// GenerateResult 管线运行结果。Created 为 false 表示当天话题已存在，按无操作处理
type GenerateResult struct {
	PostID  uint64 `json:"post_id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Created bool   `json:"created"`
}

type GenerationService interface {
	Generate(ctx context.Context, category model.Category, force bool) (*GenerateResult, error)
}

type generationServiceImpl struct {
	postRepo  repository.PostRepo
	tagRepo   repository.TagRepo
	generator ContentGenerator
	sourcer   ImageSourcer
	storer    ImageStorer

	thumbnailPlaceholder string
	featuredPlaceholder  string

	now func() time.Time
}

func NewGenerationService(
	postRepo repository.PostRepo,
	tagRepo repository.TagRepo,
	generator ContentGenerator,
	sourcer ImageSourcer,
	storer ImageStorer,
	thumbnailPlaceholder string,
	featuredPlaceholder string,
) GenerationService {
	return &generationServiceImpl{
		postRepo:             postRepo,
		tagRepo:              tagRepo,
		generator:            generator,
		sourcer:              sourcer,
		storer:               storer,
		thumbnailPlaceholder: thumbnailPlaceholder,
		featuredPlaceholder:  featuredPlaceholder,
		now:                  time.Now,
	}
}

// Generate 执行一次完整的建帖管线：
// 选题 -> 查重 -> 生成正文 -> 事务落库(帖子+标签) -> 封面/题图 -> 正文图片。
// 正文生成或首次落库失败整次失败；图片各环节失败只降级，不中断。
func (s *generationServiceImpl) Generate(ctx context.Context, category model.Category, force bool) (*GenerateResult, error) {
	if category != "" && !category.Valid() {
		return nil, ErrCategoryInvalid
	}

	sel := topic.Select(s.now(), category)
	log.InfoContext(ctx, "开始生成帖子", "category", sel.Category, "topic", sel.Topic)

	slug := sel.Slug
	exists, err := s.postRepo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		if !force {
			log.InfoContext(ctx, "帖子已存在，跳过本次生成", "slug", slug)
			return &GenerateResult{Slug: slug, Title: sel.Topic, Created: false}, nil
		}
		if slug, err = s.uniqueSlug(ctx, slug); err != nil {
			return nil, err
		}
	}

	article, err := s.generator.GenerateArticle(ctx, sel.Topic, string(sel.Category))
	if err != nil {
		return nil, errors.Wrap(ErrGenerateFailed, err.Error())
	}

	tags, err := s.tagRepo.GetOrCreateTags(ctx, article.Tags)
	if err != nil {
		return nil, err
	}

	videoQuery := article.VideoSearchQuery
	if videoQuery == "" {
		videoQuery = sel.Topic
	}

	now := s.now()
	post := &model.Post{
		Title:                article.Title,
		Slug:                 slug,
		Content:              article.Content,
		Summary:              article.Summary,
		Category:             sel.Category,
		ScientificName:       article.ScientificName,
		Family:               article.Family,
		CareDifficulty:       model.CareDifficulty(article.CareDifficulty),
		WateringNeeds:        article.WateringNeeds,
		SunlightRequirements: article.SunlightRequirements,
		GrowthRate:           article.GrowthRate,
		MaxHeight:            article.MaxHeight,
		BloomingSeason:       article.BloomingSeason,
		HarvestTime:          article.HarvestTime,
		VideoURL:             util.YoutubeSearchURL(videoQuery + " plant care guide"),
		IsPublished:          true,
		PublishedAt:          now,
	}

	if err = s.postRepo.CreatePost(ctx, post, tags); err != nil {
		return nil, err
	}

	subject := sel.Subject()
	s.attachCoverImages(ctx, post, subject)
	s.attachContentImages(ctx, post, subject)

	log.InfoContext(ctx, "帖子生成完成", "post_id", post.ID, "title", post.Title)
	return &GenerateResult{PostID: post.ID, Title: post.Title, Slug: post.Slug, Created: true}, nil
}

// attachCoverImages 处理缩略图与题图两个槽位，双双缺失时回退占位图
func (s *generationServiceImpl) attachCoverImages(ctx context.Context, post *model.Post, subject string) {
	thumbQuery := fmt.Sprintf("%s %s", subject, post.Category)
	if photos := s.sourcer.Search(ctx, thumbQuery, 1); len(photos) > 0 {
		post.ThumbnailSource = photos[0].URL
		post.ThumbnailURL = s.storer.StoreImage(ctx, photos[0].URL, post.Slug+"-thumbnail")
	}
	if post.ThumbnailURL == "" {
		post.ThumbnailURL = s.thumbnailPlaceholder
	}

	featuredQuery := fmt.Sprintf("%s close up", subject)
	if photos := s.sourcer.Search(ctx, featuredQuery, 1); len(photos) > 0 {
		post.FeaturedSource = photos[0].URL
		post.FeaturedImageURL = s.storer.StoreImage(ctx, photos[0].URL, post.Slug+"-featured")
	}
	if post.FeaturedImageURL == "" {
		post.FeaturedImageURL = s.featuredPlaceholder
	}

	if err := s.postRepo.UpdatePost(ctx, post); err != nil {
		log.WarnContext(ctx, "封面落库失败", "post_id", post.ID, "err", err)
	}
}

// attachContentImages 按六个固定槽位搜图建行，order 从 1 递增
func (s *generationServiceImpl) attachContentImages(ctx context.Context, post *model.Post, subject string) {
	for i, imageType := range model.ContentImageTypes {
		order := i + 1
		query := fmt.Sprintf("%s %s", subject, imageType)

		photos := s.sourcer.Search(ctx, query, 1)
		if len(photos) == 0 {
			log.WarnContext(ctx, "未找到候选图片", "query", query)
			continue
		}

		publicID := fmt.Sprintf("%s-%s-%d", post.Slug, imageType, order)
		hosted := s.storer.StoreImage(ctx, photos[0].URL, publicID)

		image := &model.PostImage{
			PostID:    post.ID,
			ImageURL:  hosted,
			SourceURL: photos[0].URL,
			Caption:   util.CreateImageCaption(subject, post.Category, imageType),
			AltText:   util.GenerateAltText(subject, post.Category, imageType),
			SortOrder: order,
			ImageType: imageType,
		}
		if err := s.postRepo.CreatePostImage(ctx, image); err != nil {
			log.WarnContext(ctx, "图片记录落库失败", "post_id", post.ID, "type", imageType, "err", err)
		}
	}
}

func (s *generationServiceImpl) uniqueSlug(ctx context.Context, base string) (string, error) {
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		exists, err := s.postRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

// llmGenerator 默认的内容生成实现，桥接到 pkg/llm
type llmGenerator struct{}

func NewLLMGenerator() ContentGenerator {
	return &llmGenerator{}
}

func (s *llmGenerator) GenerateArticle(ctx context.Context, topicName string, category string) (*llm.ArticleResponse, error) {
	return llm.GenerateArticle(ctx, topicName, category)
}
