package imagestore

import (
	"Verdure/internal/api/config"
	"Verdure/internal/pkg/minio"
	"bytes"
	"context"
	"path"

	"github.com/pkg/errors"
)

type minioBackend struct {
	folder string
}

func newMinioBackend(cfg config.StorageConfig) (Backend, error) {
	folder := cfg.Folder
	if folder == "" {
		folder = "blog"
	}
	return &minioBackend{folder: folder}, nil
}

func (s *minioBackend) Put(ctx context.Context, objectName string, data []byte) (string, error) {
	key := path.Join(s.folder, objectName)

	_, err := minio.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), "image/jpeg")
	if err != nil {
		return "", errors.Wrap(err, "minio upload")
	}

	return minio.GetPublicURL(key), nil
}
