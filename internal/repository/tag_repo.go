package repository

import (
	"Verdure/internal/model"
	"Verdure/internal/pkg/util"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepo interface {
	GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Tag, error)
	GetTagBySlug(ctx context.Context, slug string) (*model.Tag, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{
		db: db,
	}
}

// GetOrCreateTags 懒创建标签。名称冲突时复用已有记录，
// 名称不同但 slug 撞车时为新标签追加序号后缀
func (s *tagRepoImpl) GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Tag, error) {
	for _, tagName := range tagNames {
		slug, err := s.uniqueSlug(ctx, tagName)
		if err != nil {
			return nil, err
		}
		tag := model.Tag{
			Name:      tagName,
			Slug:      slug,
			CreatedAt: time.Now(),
		}
		err = s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error
		if err != nil {
			return nil, err
		}
	}

	// 查询所有请求的标签
	var tags []*model.Tag
	err := s.db.WithContext(ctx).Where("name IN ?", tagNames).Find(&tags).Error
	if err != nil {
		return nil, err
	}

	return tags, nil
}

func (s *tagRepoImpl) GetTagBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *tagRepoImpl) uniqueSlug(ctx context.Context, tagName string) (string, error) {
	base := util.Slugify(tagName)
	slug := base

	for i := 2; ; i++ {
		var count int64
		err := s.db.WithContext(ctx).Model(&model.Tag{}).
			Where("slug = ? AND name <> ?", slug, tagName).
			Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
