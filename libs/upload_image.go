package libs

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/config"
)

// SaveUploadedImage validates and stores a multipart image under the upload
// directory, returning the local path for a following Cloudinary upload.
func SaveUploadedImage(c *gin.Context, header *multipart.FileHeader, folder string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" && ext != ".gif" && ext != ".webp" {
		return "", fmt.Errorf("unsupported image format, allowed: .png, .jpg, .jpeg, .gif, .webp")
	}

	if header.Size > config.AppConfig.MaxUploadSize {
		return "", fmt.Errorf("file too large (max %d bytes)", config.AppConfig.MaxUploadSize)
	}

	dir := filepath.Join(config.AppConfig.UploadDir, folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	path := filepath.Join(dir, filename)

	if err := c.SaveUploadedFile(header, path); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return path, nil
}
