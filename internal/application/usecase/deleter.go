package usecase

import (
	"context"
	"strings"
	"time"

	"moodfeed/internal/domain/model"
	"moodfeed/internal/domain/repository/broker"
	"moodfeed/internal/domain/repository/database"
)

// Deleter removes post records. The stored content is left in place.
type Deleter struct {
	remover   database.Remover
	publisher broker.Publisher
}

func NewDeleter(remover database.Remover, publisher broker.Publisher) *Deleter {
	return &Deleter{
		remover:   remover,
		publisher: publisher,
	}
}

func (d *Deleter) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("id is required")
	}

	if err := d.remover.DeleteFile(ctx, id); err != nil {
		return err
	}

	publish(ctx, d.publisher, model.Event{
		Type:    model.EventPostDeleted,
		PostID:  id,
		Created: time.Now().UTC(),
	})

	return nil
}
