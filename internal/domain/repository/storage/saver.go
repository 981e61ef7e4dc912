package storage

import (
	"context"

	"moodfeed/internal/domain/entity"
)

// DefaultTextContentType is used by SaveText when no content type is given.
const DefaultTextContentType = "text/plain; charset=utf-8"

// Saver writes content under a caller chosen key, overwriting what was there.
type Saver interface {
	SaveObject(ctx context.Context, key string, data []byte, contentType string) (entity.StoredObject, error)
	SaveText(ctx context.Context, key, text, contentType string) (entity.StoredObject, error)
}
