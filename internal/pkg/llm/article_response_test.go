package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validArticleJSON = `{
  "title": "Monstera Deliciosa Care Guide",
  "content": "<h2>Intro</h2>[IMAGE:overview]",
  "summary": "Everything about monstera care.",
  "care_difficulty": "easy",
  "tags": ["monstera", "houseplants"],
  "video_search_query": "monstera care"
}`

func TestParseArticleResponsePlainJSON(t *testing.T) {
	article, err := ParseArticleResponse(validArticleJSON)
	require.NoError(t, err)

	assert.Equal(t, "Monstera Deliciosa Care Guide", article.Title)
	assert.Equal(t, "easy", article.CareDifficulty)
	assert.Equal(t, []string{"monstera", "houseplants"}, article.Tags)
}

func TestParseArticleResponseStripsJsonFence(t *testing.T) {
	fenced := "```json\n" + validArticleJSON + "\n```"

	article, err := ParseArticleResponse(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Monstera Deliciosa Care Guide", article.Title)
}

func TestParseArticleResponseStripsBareFence(t *testing.T) {
	fenced := "```\n" + validArticleJSON + "\n```"

	article, err := ParseArticleResponse(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Monstera Deliciosa Care Guide", article.Title)
}

func TestParseArticleResponseMissingFields(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"no title", `{"content":"c","summary":"s"}`, ErrMissingTitle},
		{"no content", `{"title":"t","summary":"s"}`, ErrMissingContent},
		{"no summary", `{"title":"t","content":"c"}`, ErrMissingSummary},
		{"blank title", `{"title":"  ","content":"c","summary":"s"}`, ErrMissingTitle},
	}

	for _, c := range cases {
		_, err := ParseArticleResponse(c.in)
		assert.ErrorIs(t, err, c.want, c.name)
	}
}

func TestParseArticleResponseInvalidJSON(t *testing.T) {
	_, err := ParseArticleResponse("not json at all")
	assert.Error(t, err)
}

func TestParseArticleResponseTruncatesSummary(t *testing.T) {
	long := strings.Repeat("a", 300)
	article, err := ParseArticleResponse(`{"title":"t","content":"c","summary":"` + long + `"}`)
	require.NoError(t, err)
	assert.Len(t, article.Summary, 160)
}

func TestParseArticleResponseInvalidDifficultyCleared(t *testing.T) {
	article, err := ParseArticleResponse(`{"title":"t","content":"c","summary":"s","care_difficulty":"impossible"}`)
	require.NoError(t, err)
	assert.Empty(t, article.CareDifficulty)
}
