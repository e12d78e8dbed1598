// internal/services/storage_service.go
package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/openshop/storefront-backend/internal/config"
)

// StorageService writes uploaded images to local disk under the configured
// directory, which the router serves at /uploads.
type StorageService struct {
	cfg config.UploadConfig
}

func NewStorageService(cfg config.UploadConfig) *StorageService {
	return &StorageService{cfg: cfg}
}

type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

func (s *StorageService) SaveImage(file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return nil, fmt.Errorf("file type %s is not allowed", ext)
	}
	if s.cfg.MaxSize > 0 && header.Size > s.cfg.MaxSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, s.cfg.MaxSize)
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFileName(header.Filename))
	dst, err := os.Create(filepath.Join(s.cfg.Dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		Filename: filename,
		URL:      "/uploads/" + filename,
		Size:     size,
	}, nil
}

// SanitizeFileName strips any path component and replaces characters that
// are unsafe in a filename or a URL.
func SanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	return unsafeFileChars.ReplaceAllString(name, "_")
}
