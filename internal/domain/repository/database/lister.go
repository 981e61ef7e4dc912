package database

import (
	"context"

	"moodfeed/internal/domain/model"
)

// DefaultListLimit caps ListFiles when the caller passes a non-positive limit.
const DefaultListLimit = 100

// Lister defines the interface for listing posts, newest first.
// An empty kind lists every kind.
type Lister interface {
	ListFiles(ctx context.Context, kind model.Kind, limit int) ([]model.Post, error)
}
