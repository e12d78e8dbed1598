// internal/services/storage_service_test.go
package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshop/storefront-backend/internal/config"
)

func multipartImage(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	header := req.MultipartForm.File["image"][0]
	file, err := header.Open()
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return file, header
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(config.UploadConfig{Dir: dir, MaxSize: 1024})

	file, header := multipartImage(t, "my photo.png", []byte("fake png bytes"))
	res, err := svc.SaveImage(file, header)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(res.Filename, "-my_photo.png"), res.Filename)
	assert.Equal(t, "/uploads/"+res.Filename, res.URL)
	assert.Equal(t, int64(len("fake png bytes")), res.Size)

	data, err := os.ReadFile(filepath.Join(dir, res.Filename))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))
}

func TestSaveImageRejectsExtension(t *testing.T) {
	svc := NewStorageService(config.UploadConfig{Dir: t.TempDir(), MaxSize: 1024})

	file, header := multipartImage(t, "malware.exe", []byte("nope"))
	_, err := svc.SaveImage(file, header)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestSaveImageRejectsOversizedFile(t *testing.T) {
	svc := NewStorageService(config.UploadConfig{Dir: t.TempDir(), MaxSize: 4})

	file, header := multipartImage(t, "big.jpg", []byte("way too large"))
	_, err := svc.SaveImage(file, header)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "photo.png", SanitizeFileName("photo.png"))
	assert.Equal(t, "my_photo.png", SanitizeFileName("my photo.png"))
	assert.Equal(t, "passwd", SanitizeFileName("../../etc/passwd"))
	assert.Equal(t, "a_b_.gif", SanitizeFileName("a%b?.gif"))
}
