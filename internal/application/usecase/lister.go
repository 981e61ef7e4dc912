package usecase

import (
	"context"

	"moodfeed/internal/domain/model"
	"moodfeed/internal/domain/repository/database"
)

type Lister struct {
	lister database.Lister
}

func NewLister(lister database.Lister) *Lister {
	return &Lister{lister: lister}
}

// List returns the newest posts of one kind, or of every kind when kind is empty.
func (l *Lister) List(ctx context.Context, kind model.Kind) ([]model.Post, error) {
	if kind != "" && !kind.Valid() {
		return nil, invalid("invalid kind: %q", kind)
	}

	return l.lister.ListFiles(ctx, kind, database.DefaultListLimit)
}
