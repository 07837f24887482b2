package dto

import "time"

// PostListDTO 列表查询参数
type PostListDTO struct {
	Keyword  string `form:"q"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=10" binding:"omitempty,min=1,max=50"`
}

// PostItemDTO 列表页条目
type PostItemDTO struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Summary      string    `json:"summary"`
	Category     string    `json:"category"`
	ThumbnailURL string    `json:"thumbnail_url"`
	IsFeatured   bool      `json:"is_featured"`
	ViewCount    uint64    `json:"view_count"`
	PublishedAt  time.Time `json:"published_at"`
}

// PostPageDTO 分页列表
type PostPageDTO struct {
	Items    []*PostItemDTO `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// PostImageDTO 帖子图片
type PostImageDTO struct {
	ImageURL  string `json:"image_url"`
	SourceURL string `json:"source_url"`
	Caption   string `json:"caption"`
	AltText   string `json:"alt_text"`
	SortOrder int    `json:"sort_order"`
	ImageType string `json:"image_type"`
}

// PostDetailDTO 详情页，Content 为占位符替换后的 HTML
type PostDetailDTO struct {
	PostItemDTO
	Content              string          `json:"content"`
	ScientificName       string          `json:"scientific_name"`
	Family               string          `json:"family"`
	CareDifficulty       string          `json:"care_difficulty"`
	WateringNeeds        string          `json:"watering_needs"`
	SunlightRequirements string          `json:"sunlight_requirements"`
	GrowthRate           string          `json:"growth_rate"`
	MaxHeight            string          `json:"max_height"`
	BloomingSeason       string          `json:"blooming_season"`
	HarvestTime          string          `json:"harvest_time"`
	FeaturedImageURL     string          `json:"featured_image_url"`
	VideoURL             string          `json:"video_url"`
	VideoEmbedURL        string          `json:"video_embed_url"`
	Images               []*PostImageDTO `json:"images"`
	Tags                 []string        `json:"tags"`
	Related              []*PostItemDTO  `json:"related"`
}

// CategoryDTO 分类参考表条目
type CategoryDTO struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
