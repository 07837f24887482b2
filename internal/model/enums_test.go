package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, category.Valid(), string(category))
		assert.NotEmpty(t, category.DisplayName())
	}
	assert.False(t, Category("rocks").Valid())
	assert.False(t, Category("").Valid())
}

func TestCareDifficultyValid(t *testing.T) {
	assert.True(t, CareDifficultyEasy.Valid())
	assert.True(t, CareDifficultyMedium.Valid())
	assert.True(t, CareDifficultyHard.Valid())
	assert.False(t, CareDifficulty("impossible").Valid())
	assert.False(t, CareDifficulty("").Valid())
}

func TestContentImageTypesOrder(t *testing.T) {
	want := []ImageType{
		ImageTypeOverview,
		ImageTypeCare,
		ImageTypeCloseup,
		ImageTypeIndoor,
		ImageTypeHealthy,
		ImageTypeDecor,
	}
	assert.Equal(t, want, ContentImageTypes)
	for _, imageType := range ContentImageTypes {
		assert.True(t, imageType.Valid())
	}
}
