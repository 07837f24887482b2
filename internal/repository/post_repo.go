package repository

import (
	"Verdure/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, tags []*model.Tag) error
	UpdatePost(ctx context.Context, post *model.Post) error
	CreatePostImage(ctx context.Context, image *model.PostImage) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	GetPostBySlug(ctx context.Context, slug string) (*model.Post, error)
	ListPublished(ctx context.Context, page, pageSize int) ([]*model.Post, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]*model.Post, error)
	ListByCategory(ctx context.Context, category model.Category, page, pageSize int) ([]*model.Post, int64, error)
	ListByTagSlug(ctx context.Context, tagSlug string, page, pageSize int) ([]*model.Post, int64, error)
	ListRelated(ctx context.Context, category model.Category, excludeID uint64, limit int) ([]*model.Post, error)
	SearchPosts(ctx context.Context, keyword string, page, pageSize int) ([]*model.Post, int64, error)
	IncrementViewCount(ctx context.Context, id uint64) error
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &postRepoImpl{
		db: db,
	}
}

// CreatePost 帖子与标签关联在同一事务内落库，任一失败整体回滚
func (s *postRepoImpl) CreatePost(ctx context.Context, post *model.Post, tags []*model.Tag) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		postTags := make([]*model.PostTag, 0, len(tags))
		for _, tag := range tags {
			postTags = append(postTags, &model.PostTag{PostID: post.ID, TagID: tag.ID})
		}
		return tx.Create(postTags).Error
	})
}

func (s *postRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Updates(post).Error
}

func (s *postRepoImpl) CreatePostImage(ctx context.Context, image *model.PostImage) error {
	return s.db.WithContext(ctx).Create(image).Error
}

func (s *postRepoImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *postRepoImpl) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Tags").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *postRepoImpl) ListPublished(ctx context.Context, page, pageSize int) ([]*model.Post, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{}).Where("is_published = ?", true)
	return s.paginate(query, page, pageSize)
}

func (s *postRepoImpl) ListFeatured(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("is_published = ? AND is_featured = ?", true, true).
		Order("published_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (s *postRepoImpl) ListByCategory(ctx context.Context, category model.Category, page, pageSize int) ([]*model.Post, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("is_published = ? AND category = ?", true, category)
	return s.paginate(query, page, pageSize)
}

func (s *postRepoImpl) ListByTagSlug(ctx context.Context, tagSlug string, page, pageSize int) ([]*model.Post, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{}).
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("posts.is_published = ? AND tags.slug = ?", true, tagSlug)
	return s.paginate(query, page, pageSize)
}

func (s *postRepoImpl) ListRelated(ctx context.Context, category model.Category, excludeID uint64, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("is_published = ? AND category = ? AND id <> ?", true, category, excludeID).
		Order("published_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (s *postRepoImpl) SearchPosts(ctx context.Context, keyword string, page, pageSize int) ([]*model.Post, int64, error) {
	pattern := "%" + keyword + "%"
	query := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("is_published = ?", true).
		Where("title LIKE ? OR content LIKE ? OR summary LIKE ? OR scientific_name LIKE ?",
			pattern, pattern, pattern, pattern)
	return s.paginate(query, page, pageSize)
}

func (s *postRepoImpl) IncrementViewCount(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (s *postRepoImpl) paginate(query *gorm.DB, page, pageSize int) ([]*model.Post, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	err := query.
		Order("published_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
