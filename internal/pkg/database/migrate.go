package database

import (
	"Verdure/internal/model"

	"gorm.io/gorm"
)

// AutoMigrate 同步全部表结构
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Post{},
		&model.PostImage{},
		&model.Tag{},
		&model.PostTag{},
		&model.CategoryRecord{},
		&model.ContactMessage{},
		&model.SchedulerFlag{},
	)
}
