package repository

import (
	"Verdure/internal/model"
	"context"

	"gorm.io/gorm"
)

type ContactRepo interface {
	CreateMessage(ctx context.Context, message *model.ContactMessage) error
}

type contactRepoImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepo {
	return &contactRepoImpl{
		db: db,
	}
}

func (s *contactRepoImpl) CreateMessage(ctx context.Context, message *model.ContactMessage) error {
	return s.db.WithContext(ctx).Create(message).Error
}
