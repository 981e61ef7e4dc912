package database

import (
	"context"

	"moodfeed/internal/domain/model"
)

// Writer persists new post records.
type Writer interface {
	CreateFile(ctx context.Context, post model.NewPost) (model.Post, error)
}
