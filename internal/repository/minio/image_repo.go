package minio

import (
	"bytes"
	"context"
	"strings"

	"github.com/akshop/go-backend/internal/cfg"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo реализует хранилище изображений товаров поверх MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает изображение в MinIO и возвращает публичный URL объекта.
func (i *ImageRepo) Upload(ctx context.Context, req *usecase.UploadImageReq) (string, error) {
	ext, err := extensionFromMIME(req.Image.MimeType)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	key := objectKey(req.ProductName, ext)
	reader := bytes.NewReader(req.Image.Data)

	info, err := i.mc.PutObject(ctx, i.cfg.BucketName, key, reader, req.Image.Size, minio.PutObjectOptions{
		ContentType: req.Image.MimeType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return i.publicURL(info.Key), nil
}

// Delete удаляет объект по публичному URL, полученному из Upload.
func (i *ImageRepo) Delete(ctx context.Context, url string) error {
	key := i.objectKeyFromURL(url)

	if err := i.mc.RemoveObject(ctx, i.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (i *ImageRepo) publicURL(key string) string {
	return strings.TrimSuffix(i.cfg.PublicBaseURL, "/") + "/" + i.cfg.BucketName + "/" + key
}

func (i *ImageRepo) objectKeyFromURL(url string) string {
	prefix := strings.TrimSuffix(i.cfg.PublicBaseURL, "/") + "/" + i.cfg.BucketName + "/"
	return strings.TrimPrefix(url, prefix)
}

// objectKey собирает ключ объекта вида "pro-headphones-700/3f2a9c...e1.jpg".
// Имя товара нормализуется до латиницы нижнего регистра с дефисами.
func objectKey(productName, ext string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(productName))
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "product"
	}

	return slug + "/" + uuid.NewString() + "." + ext
}

// extensionFromMIME возвращает расширение файла по MIME-типу изображения.
// Поддерживает jpeg, jpg, png, webp.
func extensionFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/webp":
		return "webp", nil
	default:
		return "", e.ErrUnsupportedMedia
	}
}
