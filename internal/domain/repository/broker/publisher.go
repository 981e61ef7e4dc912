package broker

import (
	"context"

	"moodfeed/internal/domain/model"
)

type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
}
