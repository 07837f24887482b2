package topic

import (
	"Verdure/internal/model"
	"Verdure/internal/pkg/util"
	"strings"
	"time"
)

// Selection 话题选择结果
type Selection struct {
	Category model.Category
	Topic    string
	Slug     string
}

// Select 按日历日期确定当天的分类与话题，同一天的结果恒定。
// category 为空时按 (日 - 1) mod 5 选分类，话题按 (日 - 1) mod 15 选取。
func Select(date time.Time, category model.Category) Selection {
	day := date.Day()

	if category == "" {
		category = model.Categories[(day-1)%len(model.Categories)]
	}

	topics := dailyTopics[category]
	t := topics[(day-1)%len(topics)]

	return Selection{
		Category: category,
		Topic:    t,
		Slug:     util.Slugify(t),
	}
}

// Subject 话题的主语，用于拼接图片搜索词，取话题首词
func (s Selection) Subject() string {
	fields := strings.Fields(s.Topic)
	if len(fields) == 0 {
		return s.Topic
	}
	return fields[0]
}
