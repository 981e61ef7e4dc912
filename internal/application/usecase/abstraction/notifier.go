package abstraction

import (
	"context"

	"moodfeed/internal/domain/model"
)

type Notifier interface {
	Recent(ctx context.Context, count int) ([]model.Event, error)
}
