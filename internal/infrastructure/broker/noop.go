package broker

import (
	"context"

	"moodfeed/internal/domain/model"
)

// Noop stands in for the broker when no URI is configured.
type Noop struct{}

func (Noop) Publish(context.Context, model.Event) error { return nil }

func (Noop) Recent(context.Context, int64) ([]model.Event, error) { return []model.Event{}, nil }
