package llm

import (
	"context"
	"errors"
	log "log/slog"

	"github.com/goccy/go-json"
)

// ErrEmptyCompletion 模型未返回任何候选内容
var ErrEmptyCompletion = errors.New("llm returned no choices")

type articleRequest struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
}

// GenerateArticle 请求模型生成一篇结构化文章。话题与分类作为用户消息传入，
// 文章要求与 JSON 模式约束在系统 prompt 中。返回前完成围栏剥离与字段校验，
// 任何一步失败都视为本次生成失败。
func GenerateArticle(ctx context.Context, topic string, category string) (*ArticleResponse, error) {
	reqJSON, err := json.Marshal(articleRequest{Topic: topic, Category: category})
	if err != nil {
		return nil, err
	}

	resp, err := fetchModel(ctx, articleGeneratePrompt, string(reqJSON), 0.7)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	article, err := ParseArticleResponse(resp.Choices[0].Content)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型返回数据解析失败", "err", err)
		return nil, err
	}

	return article, nil
}
