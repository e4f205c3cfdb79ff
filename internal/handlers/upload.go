// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"digitallink/internal/models"
)

const (
	// maxUploadSize is the maximum allowed image upload size (10 MB).
	maxUploadSize = 10 << 20

	// thumbMaxWidth is the maximum thumbnail width in pixels.
	thumbMaxWidth = 400

	// thumbQuality is the JPEG quality for generated thumbnails.
	thumbQuality = 80

	// maxImagePixels caps decoded pixel count to prevent memory bombs.
	maxImagePixels = 100_000_000
)

// allowedImageTypes defines MIME types accepted for upload.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// thumbableTypes are image types that support thumbnail generation.
// GIF is excluded to preserve animation; SVG is vector.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Upload handles a multipart image upload to S3. On success the response
// body is {"url": ...}; every failure is {"error": ...}.
func (a *Admin) Upload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeUploadError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeUploadError(w, "File too large. Maximum size is 10 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeUploadError(w, "No image provided.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeUploadError(w, "File too large. Maximum size is 10 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeUploadError(w, "Failed to read file.", http.StatusInternalServerError)
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// SVG detection: DetectContentType returns text/xml or application/xml for SVGs.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedImageTypes[contentType] {
		writeUploadError(w, fmt.Sprintf("File type %q is not allowed.", contentType), http.StatusBadRequest)
		return
	}

	// Seek back to start after sniffing.
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeUploadError(w, "Failed to process file.", http.StatusInternalServerError)
		return
	}

	// Generate a unique storage key.
	now := time.Now()
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	fileID := uuid.New().String()
	s3Key := fmt.Sprintf("uploads/%d/%02d/%s%s", now.Year(), now.Month(), fileID, ext)

	// Read the entire file into memory for upload and thumbnail generation.
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeUploadError(w, "Failed to read file.", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	if err := a.storageClient.Upload(ctx, s3Key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", s3Key)
		writeUploadError(w, "Failed to upload file.", http.StatusInternalServerError)
		return
	}

	// Generate and upload a thumbnail for supported image types. Failures
	// here degrade to no thumbnail rather than failing the upload.
	var thumbKey *string
	if thumbableTypes[contentType] {
		thumbData, err := generateThumbnail(bytes.NewReader(fileBytes), thumbMaxWidth)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", s3Key)
		} else if thumbData != nil {
			tk := fmt.Sprintf("uploads/%d/%02d/%s_thumb.jpg", now.Year(), now.Month(), fileID)
			if err := a.storageClient.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumbData), int64(len(thumbData))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				thumbKey = &tk
			}
		}
	}

	if a.mediaStore != nil {
		_, err = a.mediaStore.Create(&models.Media{
			FileName:    header.Filename,
			ContentType: contentType,
			SizeBytes:   int64(len(fileBytes)),
			S3Key:       s3Key,
			ThumbS3Key:  thumbKey,
		})
		if err != nil {
			slog.Error("media db insert failed", "error", err, "key", s3Key)
			writeUploadError(w, "Failed to save file metadata.", http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"url": a.storageClient.FileURL(s3Key),
	})
}

// writeUploadError writes the {"error": ...} response the upload endpoint
// uses (no kind field, matching the form consumers).
func writeUploadError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// generateThumbnail creates a JPEG thumbnail from an image, constrained
// to maxWidth while preserving aspect ratio. Returns nil if the image is
// already smaller than maxWidth.
func generateThumbnail(src io.Reader, maxWidth int) ([]byte, error) {
	// Decode config first to check dimensions without a full decode.
	imgCfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if int64(imgCfg.Width)*int64(imgCfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", imgCfg.Width, imgCfg.Height, maxImagePixels)
	}

	// Skip thumbnail if image is already small enough.
	if imgCfg.Width <= maxWidth {
		return nil, nil
	}

	seeker, ok := src.(io.Seeker)
	if !ok {
		return nil, fmt.Errorf("source does not support seeking")
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	newWidth := maxWidth
	newHeight := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
