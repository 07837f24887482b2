package imagestore

import (
	"Verdure/internal/api/config"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// localBackend 把图片写到本地目录，由外部静态服务器提供访问
type localBackend struct {
	dir     string
	baseURL string
}

func newLocalBackend(cfg config.StorageConfig) (Backend, error) {
	if cfg.LocalDir == "" {
		return nil, errors.New("storage.local_dir is required for local backend")
	}
	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create local storage dir")
	}
	return &localBackend{
		dir:     cfg.LocalDir,
		baseURL: strings.TrimSuffix(cfg.LocalURL, "/"),
	}, nil
}

func (s *localBackend) Put(_ context.Context, objectName string, data []byte) (string, error) {
	target := filepath.Join(s.dir, objectName)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", errors.Wrap(err, "write local image")
	}
	return s.baseURL + "/" + objectName, nil
}
