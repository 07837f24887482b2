package model

// CategoryRecord 固定参考表，内容由 Categories 枚举播种
type CategoryRecord struct {
	ID          uint64   `gorm:"primaryKey"`
	Name        string   `gorm:"type:varchar(64);not null"`
	Slug        Category `gorm:"type:varchar(32);not null;uniqueIndex:idx_category_slug"`
	Description string   `gorm:"type:varchar(255)"`
}

func (CategoryRecord) TableName() string {
	return "categories"
}
