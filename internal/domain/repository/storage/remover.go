package storage

import "context"

// Remover deletes content by key. Missing keys are not an error.
type Remover interface {
	DeleteObject(ctx context.Context, key string) error
}
