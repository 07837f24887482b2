package unsplash

import (
	"Verdure/internal/api/config"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.UnsplashConfig{
		BaseURL:   server.URL,
		AccessKey: "test-key",
	})
	return server, client
}

func writePhotoJSON(w http.ResponseWriter, results []photoResult) {
	data, _ := json.Marshal(searchResponse{Results: results})
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func TestSearchFiltersNonPlantPhotos(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))

		results := []photoResult{
			{ID: "1", Description: "sports car on highway"},
			{ID: "2", Description: "monstera leaf in sunlight"},
			{ID: "3", AltDescription: "green foliage wall"},
		}
		results[0].URLs.Regular = "http://img/1.jpg"
		results[1].URLs.Regular = "http://img/2.jpg"
		results[2].URLs.Regular = "http://img/3.jpg"
		writePhotoJSON(w, results)
	})

	photos := client.Search(context.Background(), "monstera", 5)

	require.Len(t, photos, 2)
	assert.Equal(t, "http://img/2.jpg", photos[0].URL)
	assert.Equal(t, "http://img/3.jpg", photos[1].URL)
}

func TestSearchMatchesByTag(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		result := photoResult{ID: "1", Description: "untitled"}
		result.URLs.Regular = "http://img/1.jpg"
		result.Tags = []struct {
			Title string `json:"title"`
		}{{Title: "garden"}}
		writePhotoJSON(w, []photoResult{result})
	})

	photos := client.Search(context.Background(), "rose", 1)
	require.Len(t, photos, 1)
}

func TestSearchTruncatesToCount(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		// per_page 带 over-fetch 余量
		assert.Equal(t, "7", r.URL.Query().Get("per_page"))

		var results []photoResult
		for i := 0; i < 6; i++ {
			p := photoResult{ID: "x", Description: "plant"}
			p.URLs.Regular = "http://img/x.jpg"
			results = append(results, p)
		}
		writePhotoJSON(w, results)
	})

	photos := client.Search(context.Background(), "fern", 2)
	assert.Len(t, photos, 2)
}

func TestSearchWithoutAccessKey(t *testing.T) {
	client := NewClient(config.UnsplashConfig{})
	photos := client.Search(context.Background(), "monstera", 1)
	assert.Nil(t, photos)
}

func TestSearchUpstreamErrorReturnsEmpty(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	photos := client.Search(context.Background(), "monstera", 1)
	assert.Nil(t, photos)
}

func TestSearchRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		result := photoResult{ID: "1", Description: "plant"}
		result.URLs.Regular = "http://img/1.jpg"
		writePhotoJSON(w, []photoResult{result})
	})

	photos := client.Search(context.Background(), "monstera", 1)

	require.Len(t, photos, 1)
	assert.Equal(t, int32(2), calls.Load())
}
