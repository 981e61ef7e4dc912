package database

import "context"

// Initializer prepares the backing file, table or collection. It is idempotent.
type Initializer interface {
	Init(ctx context.Context) error
}

// Store is a complete metadata backend.
type Store interface {
	Initializer
	Writer
	Lister
	Remover
	Close() error
}
