package broker

import (
	"context"

	"moodfeed/internal/domain/model"
)

// Reader returns the most recent events, newest first.
type Reader interface {
	Recent(ctx context.Context, count int64) ([]model.Event, error)
}
