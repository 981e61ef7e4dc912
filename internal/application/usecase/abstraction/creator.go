package abstraction

import (
	"context"

	"moodfeed/internal/domain/dto"
	"moodfeed/internal/domain/model"
)

type Creator interface {
	Create(ctx context.Context, req dto.CreatePost) (model.Post, error)
}
