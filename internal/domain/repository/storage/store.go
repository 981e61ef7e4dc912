package storage

// URLer derives the public URL of a key without touching the content.
type URLer interface {
	PublicURL(key string) string
}

// Store is a complete blob backend.
type Store interface {
	Saver
	Remover
	URLer
}
