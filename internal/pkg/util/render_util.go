package util

import (
	"Verdure/internal/model"
	"Verdure/internal/pkg/consts"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	imagePlaceholderRegex = regexp.MustCompile(`\[IMAGE:([a-z]+)\]`)
	youtubeWatchRegex     = regexp.MustCompile(`v=([a-zA-Z0-9_-]+)`)
)

// RenderContent 将正文中的 [IMAGE:type] 占位符替换为对应图片的 HTML 片段。
// 找不到对应类型的图片时占位符被移除。
func RenderContent(content string, images []model.PostImage) string {
	byType := make(map[model.ImageType]model.PostImage, len(images))
	for _, img := range images {
		if _, exists := byType[img.ImageType]; !exists {
			byType[img.ImageType] = img
		}
	}

	return imagePlaceholderRegex.ReplaceAllStringFunc(content, func(tag string) string {
		m := imagePlaceholderRegex.FindStringSubmatch(tag)
		img, ok := byType[model.ImageType(m[1])]
		if !ok {
			return ""
		}
		return fmt.Sprintf(
			`<div class="injected-image"><img src="%s" alt="%s" class="img-fluid rounded mb-3"/><div class="image-caption">%s</div></div>`,
			img.ImageURL, img.AltText, img.Caption,
		)
	})
}

// YoutubeEmbedURL 将 watch 链接转换为 embed 链接，无法识别时原样返回
func YoutubeEmbedURL(url string) string {
	m := youtubeWatchRegex.FindStringSubmatch(url)
	if m == nil {
		return url
	}
	return consts.YoutubeEmbedURL + m[1]
}

// YoutubeSearchURL 由搜索词构造视频搜索结果页链接
func YoutubeSearchURL(query string) string {
	return consts.YoutubeSearchURL + url.QueryEscape(strings.TrimSpace(query))
}
