package constants

import (
	"path/filepath"
	"strings"
)

// Avatar upload constraints shared by the household and kid upload endpoints.

const (
	ErrAvatarFileNameNotImage    = "file_name must be an image (.png, .jpg, .jpeg, .webp, .gif)"
	ErrAvatarContentTypeNotImage = "content_type must be an image type"
)

var allowedAvatarExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

var allowedAvatarContentTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/gif":  true,
}

// IsAllowedAvatarExt accepts names without an extension (the object key then
// carries none).
func IsAllowedAvatarExt(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(fileName)))
	if ext == "" {
		return true
	}
	return allowedAvatarExts[ext]
}

// IsAllowedAvatarContentType accepts an empty content type; the presigned PUT
// then carries no Content-Type restriction.
func IsAllowedAvatarContentType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if ct == "" {
		return true
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return allowedAvatarContentTypes[ct]
}
