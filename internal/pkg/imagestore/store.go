package imagestore

import (
	"Verdure/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Backend 图片存储后端，minio 与本地目录二选一，由配置决定
type Backend interface {
	// Put 写入优化后的 JPEG 数据，返回可公开访问的 URL
	Put(ctx context.Context, objectName string, data []byte) (string, error)
}

// Store 负责 下载源图 -> 压缩 -> 写入后端 的完整存储流程。
// 任何一步失败都吞掉错误并返回占位图 URL，图片存储失败不允许中断建帖。
type Store struct {
	backend     Backend
	http        *resty.Client
	placeholder string
}

func New(cfg config.StorageConfig, generatorCfg config.GeneratorConfig) (*Store, error) {
	var backend Backend
	var err error

	switch cfg.Backend {
	case "local":
		backend, err = newLocalBackend(cfg)
	default:
		backend, err = newMinioBackend(cfg)
	}
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(8 * time.Second)

	return &Store{
		backend:     backend,
		http:        client,
		placeholder: generatorCfg.PlaceholderURL,
	}, nil
}

// StoreImage 按 publicID 存储源图并返回托管 URL，失败时返回占位图
func (s *Store) StoreImage(ctx context.Context, sourceURL string, publicID string) string {
	hosted, err := s.storeImage(ctx, sourceURL, publicID)
	if err != nil {
		log.WarnContext(ctx, "图片存储失败，使用占位图", "public_id", publicID, "err", err)
		return s.placeholder
	}
	return hosted
}

func (s *Store) storeImage(ctx context.Context, sourceURL string, publicID string) (string, error) {
	if sourceURL == "" || publicID == "" {
		return "", errors.New("missing source url or public id")
	}

	resp, err := s.http.R().SetContext(ctx).Get(sourceURL)
	if err != nil {
		return "", errors.Wrap(err, "download source image")
	}
	if resp.IsError() {
		return "", errors.Errorf("download source image: status %d", resp.StatusCode())
	}

	optimized, err := optimize(resp.Body())
	if err != nil {
		return "", errors.Wrap(err, "optimize image")
	}

	return s.backend.Put(ctx, publicID+".jpg", optimized)
}
