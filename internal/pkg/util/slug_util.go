package util

import (
	"regexp"
	"strings"
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 生成 URL 安全的短标识：小写，非字母数字连续段替换为单个连字符
func Slugify(text string) string {
	s := nonAlnumRegex.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(s, "-")
}
