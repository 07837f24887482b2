package repository

import (
	"Verdure/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepo interface {
	Seed(ctx context.Context) error
	ListCategories(ctx context.Context) ([]*model.CategoryRecord, error)
}

type categoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepo {
	return &categoryRepoImpl{
		db: db,
	}
}

// Seed 按封闭枚举补齐固定参考表，已存在的行不动
func (s *categoryRepoImpl) Seed(ctx context.Context) error {
	for _, category := range model.Categories {
		record := model.CategoryRecord{
			Name: category.DisplayName(),
			Slug: category,
		}
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *categoryRepoImpl) ListCategories(ctx context.Context) ([]*model.CategoryRecord, error) {
	var categories []*model.CategoryRecord
	err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}
