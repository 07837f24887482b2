package util

import (
	"Verdure/internal/model"
	"fmt"
	"math/rand"
)

// 每种图片类型的备选说明文案，从中随机取一条
var typeCaptions = map[model.ImageType][]string{
	model.ImageTypeOverview: {
		"Overview of %s plant",
		"Full view of healthy %s",
		"%s in natural environment",
	},
	model.ImageTypeCare: {
		"Caring for %s plant",
		"Maintenance tips for %s",
		"%s care techniques",
	},
	model.ImageTypeCloseup: {
		"Close-up of %s details",
		"Detailed view of %s",
		"Intricate details of %s",
	},
	model.ImageTypeIndoor: {
		"%s as indoor plant",
		"Indoor %s decoration",
		"Growing %s inside home",
	},
	model.ImageTypeHealthy: {
		"Healthy %s specimen",
		"Thriving %s example",
		"Vibrant %s in peak condition",
	},
	model.ImageTypeDecor: {
		"%s in home decor",
		"Styling with %s",
		"Decorative use of %s",
	},
}

var flowerOverviewCaptions = []string{
	"Beautiful %s flowers",
	"%s in full bloom",
	"Colorful %s display",
}

var fruitOverviewCaptions = []string{
	"Fresh %s fruits",
	"Ripe %s ready for harvest",
	"%s fruit on the tree",
}

// CreateImageCaption 按分类与图片类型生成图片说明
func CreateImageCaption(plantName string, category model.Category, imageType model.ImageType) string {
	captions := typeCaptions[imageType]

	if imageType == model.ImageTypeOverview {
		switch category {
		case model.CategoryFlowers:
			captions = flowerOverviewCaptions
		case model.CategoryFruits:
			captions = fruitOverviewCaptions
		}
	}

	if len(captions) == 0 {
		return plantName + " plant"
	}
	return fmt.Sprintf(captions[rand.Intn(len(captions))], plantName)
}

var altTexts = map[model.Category]map[model.ImageType]string{
	model.CategoryPlants: {
		model.ImageTypeOverview: "%s plant in natural environment",
		model.ImageTypeCare:     "%s plant care and maintenance",
		model.ImageTypeCloseup:  "Close-up view of %s plant details",
		model.ImageTypeIndoor:   "%s plant as indoor decoration",
		model.ImageTypeHealthy:  "Healthy %s plant specimen",
		model.ImageTypeDecor:    "%s plant in home decor setting",
	},
	model.CategoryFlowers: {
		model.ImageTypeOverview: "%s flowers in full bloom",
		model.ImageTypeCare:     "%s flower care guide",
		model.ImageTypeCloseup:  "Close-up of %s flower petals",
		model.ImageTypeIndoor:   "%s flowers as indoor decoration",
		model.ImageTypeHealthy:  "Healthy %s flowers in bloom",
		model.ImageTypeDecor:    "%s flower arrangement",
	},
	model.CategoryFruits: {
		model.ImageTypeOverview: "Ripe %s fruits on tree",
		model.ImageTypeCare:     "%s fruit growing guide",
		model.ImageTypeCloseup:  "Close-up of %s fruit details",
		model.ImageTypeIndoor:   "%s tree grown indoors",
		model.ImageTypeHealthy:  "Fresh %s fruits",
		model.ImageTypeDecor:    "%s fruits as decoration",
	},
}

// GenerateAltText 生成无障碍替代文本，gardening/care 分类复用 plants 表
func GenerateAltText(plantName string, category model.Category, imageType model.ImageType) string {
	categoryAlts, ok := altTexts[category]
	if !ok {
		categoryAlts = altTexts[model.CategoryPlants]
	}

	format, ok := categoryAlts[imageType]
	if !ok {
		return plantName + " plant image"
	}
	return fmt.Sprintf(format, plantName)
}
