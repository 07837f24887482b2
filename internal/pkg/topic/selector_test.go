package topic

import (
	"Verdure/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelectDeterministic(t *testing.T) {
	date := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	first := Select(date, "")
	again := Select(date.Add(5*time.Hour), "")

	assert.Equal(t, first, again, "同一天任何时刻的选择必须一致")
}

func TestSelectByDate(t *testing.T) {
	// 每月 5 号: (5-1)%5=4 -> care, (5-1)%15=4 -> Potting Mix Guide
	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	sel := Select(date, "")

	assert.Equal(t, model.CategoryCare, sel.Category)
	assert.Equal(t, "Potting Mix Guide", sel.Topic)
	assert.Equal(t, "potting-mix-guide", sel.Slug)
}

func TestSelectDay1(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	sel := Select(date, "")

	assert.Equal(t, model.CategoryPlants, sel.Category)
	assert.Equal(t, "Monstera Deliciosa Care Guide", sel.Topic)
}

func TestSelectExplicitCategory(t *testing.T) {
	// 指定分类时日期只决定话题下标
	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	sel := Select(date, model.CategoryFruits)

	assert.Equal(t, model.CategoryFruits, sel.Category)
	assert.Equal(t, "Blueberry Bush Care", sel.Topic)
}

func TestSelectTopicWrapAround(t *testing.T) {
	// 16 号与 1 号话题相同，分类随 (日-1)%5 轮转
	day16 := Select(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), model.CategoryPlants)
	day1 := Select(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), model.CategoryPlants)

	assert.Equal(t, day1.Topic, day16.Topic)
}

func TestSubject(t *testing.T) {
	sel := Selection{Topic: "Monstera Deliciosa Care Guide"}
	assert.Equal(t, "Monstera", sel.Subject())
}

func TestTopicsForEveryCategory(t *testing.T) {
	for _, category := range model.Categories {
		assert.Len(t, TopicsFor(category), 15, string(category))
	}
}
