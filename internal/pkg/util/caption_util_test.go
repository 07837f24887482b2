package util

import (
	"Verdure/internal/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateImageCaptionContainsPlantName(t *testing.T) {
	for _, imageType := range model.ContentImageTypes {
		caption := CreateImageCaption("Monstera", model.CategoryPlants, imageType)
		assert.Contains(t, caption, "Monstera", string(imageType))
	}
}

func TestCreateImageCaptionOverviewByCategory(t *testing.T) {
	// 花卉与水果的 overview 文案走各自的模板表
	flower := CreateImageCaption("Rose", model.CategoryFlowers, model.ImageTypeOverview)
	assert.Contains(t, flower, "Rose")
	assert.NotContains(t, flower, "plant")

	fruit := CreateImageCaption("Strawberry", model.CategoryFruits, model.ImageTypeOverview)
	assert.Contains(t, fruit, "Strawberry")
}

func TestGenerateAltText(t *testing.T) {
	alt := GenerateAltText("Rose", model.CategoryFlowers, model.ImageTypeOverview)
	assert.Equal(t, "Rose flowers in full bloom", alt)

	alt = GenerateAltText("Strawberry", model.CategoryFruits, model.ImageTypeCloseup)
	assert.Equal(t, "Close-up of Strawberry fruit details", alt)
}

func TestGenerateAltTextFallsBackToPlants(t *testing.T) {
	// gardening/care 没有独立的替代文本表
	alt := GenerateAltText("Compost", model.CategoryGardening, model.ImageTypeCare)
	assert.Equal(t, "Compost plant care and maintenance", alt)
}

func TestGenerateAltTextUnknownType(t *testing.T) {
	alt := GenerateAltText("Monstera", model.CategoryPlants, model.ImageType("banner"))
	assert.True(t, strings.HasSuffix(alt, "plant image"))
}
