package model

import (
	"time"
)

type PostImage struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index:idx_post_id_order" json:"post_id"`
	ImageURL  string    `gorm:"type:varchar(512);not null" json:"image_url"`
	SourceURL string    `gorm:"type:varchar(512)" json:"source_url"`
	Caption   string    `gorm:"type:varchar(512)" json:"caption"`
	AltText   string    `gorm:"type:varchar(512)" json:"alt_text"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0;index:idx_post_id_order" json:"sort_order"`
	ImageType ImageType `gorm:"type:varchar(32);not null" json:"image_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostImage) TableName() string {
	return "post_images"
}
