package model

import (
	"time"
)

type Post struct {
	ID        uint64   `gorm:"primaryKey"`
	Title     string   `gorm:"type:varchar(255);not null" json:"title"`
	Slug      string   `gorm:"type:varchar(255);not null;uniqueIndex:idx_post_slug" json:"slug"`
	Content   string   `gorm:"type:longtext;not null" json:"content"`
	Summary   string   `gorm:"type:varchar(512)" json:"summary"`
	Category  Category `gorm:"type:varchar(32);not null;index:idx_post_category" json:"category"`

	ScientificName       string         `gorm:"type:varchar(255)" json:"scientific_name"`
	Family               string         `gorm:"type:varchar(255)" json:"family"`
	CareDifficulty       CareDifficulty `gorm:"type:varchar(20)" json:"care_difficulty"`
	WateringNeeds        string         `gorm:"type:varchar(512)" json:"watering_needs"`
	SunlightRequirements string         `gorm:"type:varchar(512)" json:"sunlight_requirements"`
	GrowthRate           string         `gorm:"type:varchar(512)" json:"growth_rate"`
	MaxHeight            string         `gorm:"type:varchar(255)" json:"max_height"`
	BloomingSeason       string         `gorm:"type:varchar(255)" json:"blooming_season"`
	HarvestTime          string         `gorm:"type:varchar(255)" json:"harvest_time"`

	ThumbnailURL      string `gorm:"type:varchar(512)" json:"thumbnail_url"`
	ThumbnailSource   string `gorm:"type:varchar(512)" json:"thumbnail_source"`
	FeaturedImageURL  string `gorm:"type:varchar(512)" json:"featured_image_url"`
	FeaturedSource    string `gorm:"type:varchar(512)" json:"featured_source"`
	VideoURL          string `gorm:"type:varchar(512)" json:"video_url"`

	IsPublished bool   `gorm:"type:tinyint(1);not null;default:1" json:"is_published"`
	IsFeatured  bool   `gorm:"type:tinyint(1);not null;default:0" json:"is_featured"`
	ViewCount   uint64 `gorm:"not null;default:0" json:"view_count"`

	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	PublishedAt time.Time `gorm:"index:idx_post_published_at" json:"published_at"`

	// 关联关系
	Images []PostImage `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Tags   []Tag       `gorm:"many2many:post_tags;"`
}

func (Post) TableName() string {
	return "posts"
}
