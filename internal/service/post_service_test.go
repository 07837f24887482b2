package service

import (
	"Verdure/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCategoryRepo struct {
	records []*model.CategoryRecord
}

func (s *fakeCategoryRepo) Seed(context.Context) error {
	return nil
}

func (s *fakeCategoryRepo) ListCategories(context.Context) ([]*model.CategoryRecord, error) {
	return s.records, nil
}

func samplePost() *model.Post {
	return &model.Post{
		ID:       7,
		Title:    "Monstera Deliciosa Care Guide",
		Slug:     "monstera-deliciosa-care-guide",
		Content:  "<p>intro</p>[IMAGE:overview]",
		Summary:  "Monstera basics.",
		Category: model.CategoryPlants,
		VideoURL: "https://www.youtube.com/watch?v=abc123",
		Images: []model.PostImage{
			{ImageType: model.ImageTypeOverview, ImageURL: "http://cdn/o.jpg", AltText: "alt", Caption: "cap", SortOrder: 1},
		},
		Tags:        []model.Tag{{Name: "monstera"}},
		IsPublished: true,
		PublishedAt: time.Now(),
	}
}

func newPostTestService(postRepo *fakePostRepo, tagRepo *fakeTagRepo, categoryRepo *fakeCategoryRepo) PostService {
	if tagRepo == nil {
		tagRepo = &fakeTagRepo{}
	}
	if categoryRepo == nil {
		categoryRepo = &fakeCategoryRepo{}
	}
	return NewPostService(postRepo, tagRepo, categoryRepo)
}

func TestGetPostBySlugRendersDetail(t *testing.T) {
	postRepo := newFakePostRepo()
	post := samplePost()
	postRepo.posts[post.Slug] = post
	postRepo.related = []*model.Post{{ID: 9, Title: "Fern Plant Care", Slug: "fern-plant-care", Category: model.CategoryPlants}}
	svc := newPostTestService(postRepo, nil, nil)

	detail, err := svc.GetPostBySlug(context.Background(), post.Slug)
	require.NoError(t, err)

	assert.Equal(t, "Monstera Deliciosa Care Guide", detail.Title)
	assert.NotContains(t, detail.Content, "[IMAGE:")
	assert.Contains(t, detail.Content, "http://cdn/o.jpg")
	assert.Equal(t, "https://www.youtube.com/embed/abc123", detail.VideoEmbedURL)
	assert.Equal(t, []string{"monstera"}, detail.Tags)
	require.Len(t, detail.Related, 1)
	assert.Equal(t, "fern-plant-care", detail.Related[0].Slug)
}

func TestGetPostBySlugIncrementsViewCount(t *testing.T) {
	postRepo := newFakePostRepo()
	post := samplePost()
	postRepo.posts[post.Slug] = post
	svc := newPostTestService(postRepo, nil, nil)

	detail, err := svc.GetPostBySlug(context.Background(), post.Slug)
	require.NoError(t, err)

	assert.Equal(t, 1, postRepo.increments[post.ID])
	assert.Equal(t, uint64(1), detail.ViewCount)
}

func TestGetPostBySlugViewCountFailureIsSoft(t *testing.T) {
	postRepo := newFakePostRepo()
	post := samplePost()
	postRepo.posts[post.Slug] = post
	postRepo.incErr = gorm.ErrInvalidDB
	svc := newPostTestService(postRepo, nil, nil)

	detail, err := svc.GetPostBySlug(context.Background(), post.Slug)
	require.NoError(t, err)
	assert.Zero(t, detail.ViewCount)
}

func TestGetPostBySlugNotFound(t *testing.T) {
	svc := newPostTestService(newFakePostRepo(), nil, nil)

	_, err := svc.GetPostBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestSearchPostsEmptyKeyword(t *testing.T) {
	postRepo := newFakePostRepo()
	postRepo.listed = []*model.Post{samplePost()}
	svc := newPostTestService(postRepo, nil, nil)

	page, err := svc.SearchPosts(context.Background(), "", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
}

func TestListByCategoryInvalid(t *testing.T) {
	svc := newPostTestService(newFakePostRepo(), nil, nil)

	_, err := svc.ListByCategory(context.Background(), "rocks", 1, 10)
	assert.ErrorIs(t, err, ErrCategoryInvalid)
}

func TestListByTagUnknown(t *testing.T) {
	tagRepo := &fakeTagRepo{tagErr: gorm.ErrRecordNotFound}
	svc := newPostTestService(newFakePostRepo(), tagRepo, nil)

	_, err := svc.ListByTag(context.Background(), "nope", 1, 10)
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestListPostsBuildsPage(t *testing.T) {
	postRepo := newFakePostRepo()
	postRepo.listed = []*model.Post{samplePost()}
	svc := newPostTestService(postRepo, nil, nil)

	page, err := svc.ListPosts(context.Background(), 2, 5)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.PageSize)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "monstera-deliciosa-care-guide", page.Items[0].Slug)
	assert.Equal(t, "plants", page.Items[0].Category)
}

func TestListCategories(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{records: []*model.CategoryRecord{
		{Name: "Plants", Slug: model.CategoryPlants, Description: "Indoor and outdoor plants"},
	}}
	svc := newPostTestService(newFakePostRepo(), nil, categoryRepo)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 1)
	assert.Equal(t, "plants", categories[0].Slug)
}
