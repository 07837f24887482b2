package service

import (
	"Verdure/internal/api/dto"
	"Verdure/internal/model"
	"Verdure/internal/pkg/util"
	"Verdure/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

const RelatedPostLimit = 3

type PostService interface {
	ListPosts(ctx context.Context, page, pageSize int) (*dto.PostPageDTO, error)
	ListFeatured(ctx context.Context, limit int) ([]*dto.PostItemDTO, error)
	GetPostBySlug(ctx context.Context, slug string) (*dto.PostDetailDTO, error)
	SearchPosts(ctx context.Context, keyword string, page, pageSize int) (*dto.PostPageDTO, error)
	ListByCategory(ctx context.Context, category string, page, pageSize int) (*dto.PostPageDTO, error)
	ListByTag(ctx context.Context, tagSlug string, page, pageSize int) (*dto.PostPageDTO, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	tagRepo      repository.TagRepo
	categoryRepo repository.CategoryRepo
}

func NewPostService(postRepo repository.PostRepo, tagRepo repository.TagRepo, categoryRepo repository.CategoryRepo) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *postServiceImpl) ListPosts(ctx context.Context, page, pageSize int) (*dto.PostPageDTO, error) {
	posts, total, err := s.postRepo.ListPublished(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(posts, total, page, pageSize), nil
}

func (s *postServiceImpl) ListFeatured(ctx context.Context, limit int) ([]*dto.PostItemDTO, error) {
	posts, err := s.postRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toItems(posts), nil
}

// GetPostBySlug 详情查询，每次访问自增一次阅读计数
func (s *postServiceImpl) GetPostBySlug(ctx context.Context, slug string) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err = s.postRepo.IncrementViewCount(ctx, post.ID); err != nil {
		log.WarnContext(ctx, "阅读计数自增失败", "post_id", post.ID, "err", err)
	} else {
		post.ViewCount++
	}

	detail := &dto.PostDetailDTO{}
	if err = copier.Copy(detail, post); err != nil {
		return nil, err
	}
	detail.Category = string(post.Category)
	detail.CareDifficulty = string(post.CareDifficulty)
	detail.Content = util.RenderContent(post.Content, post.Images)
	detail.VideoEmbedURL = util.YoutubeEmbedURL(post.VideoURL)

	detail.Images = make([]*dto.PostImageDTO, 0, len(post.Images))
	for _, img := range post.Images {
		detail.Images = append(detail.Images, &dto.PostImageDTO{
			ImageURL:  img.ImageURL,
			SourceURL: img.SourceURL,
			Caption:   img.Caption,
			AltText:   img.AltText,
			SortOrder: img.SortOrder,
			ImageType: string(img.ImageType),
		})
	}

	detail.Tags = make([]string, 0, len(post.Tags))
	for _, tag := range post.Tags {
		detail.Tags = append(detail.Tags, tag.Name)
	}

	related, err := s.postRepo.ListRelated(ctx, post.Category, post.ID, RelatedPostLimit)
	if err != nil {
		log.WarnContext(ctx, "相关帖子查询失败", "post_id", post.ID, "err", err)
	} else {
		detail.Related = toItems(related)
	}

	return detail, nil
}

func (s *postServiceImpl) SearchPosts(ctx context.Context, keyword string, page, pageSize int) (*dto.PostPageDTO, error) {
	if keyword == "" {
		return buildPage(nil, 0, page, pageSize), nil
	}
	posts, total, err := s.postRepo.SearchPosts(ctx, keyword, page, pageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(posts, total, page, pageSize), nil
}

func (s *postServiceImpl) ListByCategory(ctx context.Context, category string, page, pageSize int) (*dto.PostPageDTO, error) {
	c := model.Category(category)
	if !c.Valid() {
		return nil, ErrCategoryInvalid
	}
	posts, total, err := s.postRepo.ListByCategory(ctx, c, page, pageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(posts, total, page, pageSize), nil
}

func (s *postServiceImpl) ListByTag(ctx context.Context, tagSlug string, page, pageSize int) (*dto.PostPageDTO, error) {
	if _, err := s.tagRepo.GetTagBySlug(ctx, tagSlug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	posts, total, err := s.postRepo.ListByTagSlug(ctx, tagSlug, page, pageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(posts, total, page, pageSize), nil
}

func (s *postServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	records, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]*dto.CategoryDTO, 0, len(records))
	for _, record := range records {
		categories = append(categories, &dto.CategoryDTO{
			Name:        record.Name,
			Slug:        string(record.Slug),
			Description: record.Description,
		})
	}
	return categories, nil
}

func toItems(posts []*model.Post) []*dto.PostItemDTO {
	items := make([]*dto.PostItemDTO, 0, len(posts))
	for _, post := range posts {
		item := &dto.PostItemDTO{}
		_ = copier.Copy(item, post)
		item.Category = string(post.Category)
		items = append(items, item)
	}
	return items
}

func buildPage(posts []*model.Post, total int64, page, pageSize int) *dto.PostPageDTO {
	return &dto.PostPageDTO{
		Items:    toItems(posts),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
