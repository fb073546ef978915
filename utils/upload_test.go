package utils

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateImageUploadAccepts(t *testing.T) {
	name, err := ValidateImageUpload(fileHeader("photo.png", "image/png", 1024))
	if err != nil {
		t.Fatalf("valid png rejected: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("filename %q should keep the .png extension", name)
	}
	if strings.Contains(name, "photo") {
		t.Errorf("filename %q should not reuse the client-supplied name", name)
	}
}

func TestValidateImageUploadUniqueNames(t *testing.T) {
	header := fileHeader("photo.jpg", "image/jpeg", 1024)
	first, err := ValidateImageUpload(header)
	if err != nil {
		t.Fatalf("ValidateImageUpload: %v", err)
	}
	second, err := ValidateImageUpload(header)
	if err != nil {
		t.Fatalf("ValidateImageUpload: %v", err)
	}
	if first == second {
		t.Error("two uploads of the same file should get distinct names")
	}
}

func TestValidateImageUploadRejectsOversize(t *testing.T) {
	_, err := ValidateImageUpload(fileHeader("big.png", "image/png", MaxUploadSize+1))
	if err == nil {
		t.Error("oversize upload accepted")
	}
}

func TestValidateImageUploadRejectsContentType(t *testing.T) {
	for _, contentType := range []string{"application/pdf", "text/html", "image/svg+xml", ""} {
		if _, err := ValidateImageUpload(fileHeader("f", contentType, 10)); err == nil {
			t.Errorf("content type %q accepted", contentType)
		}
	}
}
