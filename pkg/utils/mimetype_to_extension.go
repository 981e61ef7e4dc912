package utils

import (
	"path/filepath"
	"strings"
)

// mimeTypeToExtension maps common MIME types to their typical file extensions.
var mimeTypeToExtension = map[string]string{
	"application/json": ".json",
	"application/pdf":  ".pdf",
	"application/xml":  ".xml",
	"application/zip":  ".zip",
	"application/gzip": ".gz",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         ".xlsx",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   ".docx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": ".pptx",
	"application/x-tar":        ".tar",
	"application/vnd.rar":      ".rar",
	"application/x-sh":         ".sh",
	"application/octet-stream": ".bin",
	"audio/aac":                ".aac",
	"audio/mpeg":               ".mp3",
	"audio/ogg":                ".ogg",
	"audio/wav":                ".wav",
	"audio/webm":               ".webm",
	"image/bmp":                ".bmp",
	"image/avif":               ".avif",
	"image/gif":                ".gif",
	"image/heic":               ".heic",
	"image/jpeg":               ".jpg",
	"image/png":                ".png",
	"image/svg+xml":            ".svg",
	"image/tiff":               ".tif",
	"image/webp":               ".webp",
	"text/css":                 ".css",
	"text/csv":                 ".csv",
	"text/html":                ".html",
	"text/javascript":          ".js",
	"text/plain":               ".txt",
	"text/xml":                 ".xml",
	"video/avi":                ".avi",
	"video/mpeg":               ".mpeg",
	"video/mp4":                ".mp4",
	"video/ogg":                ".ogv",
	"video/quicktime":          ".mov",
	"video/webm":               ".webm",
	"video/x-flv":              ".flv",
	"video/x-ms-wmv":           ".wmv",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	if ext, ok := mimeTypeToExtension[BaseMimeType(mimeType)]; ok {
		return ext
	}

	return ".bin"
}

// BaseMimeType strips parameters and case from a MIME type,
// so "Text/Plain; charset=utf-8" becomes "text/plain".
func BaseMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

// FileExtension prefers the extension of the uploaded file name and falls back
// to the one registered for mimeType. Names with odd extensions are ignored.
func FileExtension(name, mimeType string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 || len(ext) > 10 {
		return GetExtensionFromMimeType(mimeType)
	}

	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return GetExtensionFromMimeType(mimeType)
		}
	}

	return ext
}
