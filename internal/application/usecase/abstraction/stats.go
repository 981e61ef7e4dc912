package abstraction

import (
	"context"

	"moodfeed/internal/domain/dto"
)

type Stats interface {
	Summary(ctx context.Context) (dto.Stats, error)
}
