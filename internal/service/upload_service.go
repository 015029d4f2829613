package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"ai-solution-go/internal/config"
	"ai-solution-go/pkg/storage"
)

// UploadService 接口定义了图片上传的业务操作。
// 上传成功后返回的 URL 可直接作为各资源的 image_url 字段使用。
type UploadService interface {
	UploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)
}

type uploadService struct {
	minioCfg config.MinIOConfig
}

// NewUploadService 创建一个新的 UploadService 实例。
func NewUploadService(minioCfg config.MinIOConfig) UploadService {
	return &uploadService{minioCfg: minioCfg}
}

// UploadImage 将图片写入对象存储并返回访问地址。
// 对象名带纳秒时间戳前缀，避免同名文件互相覆盖。
func (s *uploadService) UploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	objectName := fmt.Sprintf("images/%d_%s", time.Now().UnixNano(), filepath.Base(header.Filename))

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := storage.PutObject(ctx, s.minioCfg, objectName, file, header.Size, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return url, nil
}
