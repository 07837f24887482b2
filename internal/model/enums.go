package model

// Category 文章分类，封闭枚举
type Category string

const (
	CategoryPlants    Category = "plants"
	CategoryFlowers   Category = "flowers"
	CategoryFruits    Category = "fruits"
	CategoryGardening Category = "gardening"
	CategoryCare      Category = "care"
)

// Categories 分类固定顺序，话题选择按此顺序取模
var Categories = []Category{
	CategoryPlants,
	CategoryFlowers,
	CategoryFruits,
	CategoryGardening,
	CategoryCare,
}

var categoryNames = map[Category]string{
	CategoryPlants:    "Plants",
	CategoryFlowers:   "Flowers",
	CategoryFruits:    "Fruits",
	CategoryGardening: "Gardening Tips",
	CategoryCare:      "Plant Care",
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

func (c Category) DisplayName() string {
	return categoryNames[c]
}

// CareDifficulty 养护难度，允许为空
type CareDifficulty string

const (
	CareDifficultyEasy   CareDifficulty = "easy"
	CareDifficultyMedium CareDifficulty = "medium"
	CareDifficultyHard   CareDifficulty = "hard"
)

func (d CareDifficulty) Valid() bool {
	switch d {
	case CareDifficultyEasy, CareDifficultyMedium, CareDifficultyHard:
		return true
	}
	return false
}

// ImageType 图片用途类型
type ImageType string

const (
	ImageTypeOverview  ImageType = "overview"
	ImageTypeCare      ImageType = "care"
	ImageTypeCloseup   ImageType = "closeup"
	ImageTypeIndoor    ImageType = "indoor"
	ImageTypeHealthy   ImageType = "healthy"
	ImageTypeDecor     ImageType = "decor"
	ImageTypeThumbnail ImageType = "thumbnail"
	ImageTypeFeatured  ImageType = "featured"
)

// ContentImageTypes 正文图片槽位，顺序即 order 1..6
var ContentImageTypes = []ImageType{
	ImageTypeOverview,
	ImageTypeCare,
	ImageTypeCloseup,
	ImageTypeIndoor,
	ImageTypeHealthy,
	ImageTypeDecor,
}

func (t ImageType) Valid() bool {
	switch t {
	case ImageTypeOverview, ImageTypeCare, ImageTypeCloseup, ImageTypeIndoor,
		ImageTypeHealthy, ImageTypeDecor, ImageTypeThumbnail, ImageTypeFeatured:
		return true
	}
	return false
}
