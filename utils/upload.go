package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxUploadSize = 5 * 1024 * 1024 // 5 MiB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ValidateImageUpload checks the size ceiling and content-type allow-list
// and returns a collision-free filename for the stored file.
func ValidateImageUpload(header *multipart.FileHeader) (string, error) {
	if header.Size > MaxUploadSize {
		return "", fmt.Errorf("file too large (max 5MB)")
	}

	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", fmt.Errorf("only image files (jpeg, png, gif, webp) are allowed")
	}

	// Prefer the original extension when it agrees with the content type.
	if orig := strings.ToLower(filepath.Ext(header.Filename)); orig != "" {
		for _, allowed := range allowedImageTypes {
			if orig == allowed || (orig == ".jpeg" && allowed == ".jpg") {
				ext = orig
				break
			}
		}
	}

	return uuid.New().String() + ext, nil
}
