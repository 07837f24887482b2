package consts

const (
	// ContentImageCount 正文固定图片槽位数
	ContentImageCount = 6

	// SummaryMaxLen 摘要长度上限
	SummaryMaxLen = 160
)

const (
	YoutubeSearchURL = "https://www.youtube.com/results?search_query="
	YoutubeEmbedURL  = "https://www.youtube.com/embed/"
)
