package database

import "context"

// Remover deletes a post record. Unknown ids are not an error.
type Remover interface {
	DeleteFile(ctx context.Context, id string) error
}
