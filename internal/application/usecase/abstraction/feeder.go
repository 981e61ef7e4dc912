package abstraction

import (
	"context"

	"moodfeed/internal/domain/dto"
	"moodfeed/internal/domain/model"
)

type Feeder interface {
	Feed(ctx context.Context, filter dto.FeedFilter) ([]model.Post, error)
}
