package abstraction

import (
	"context"

	"moodfeed/internal/domain/model"
)

type Lister interface {
	List(ctx context.Context, kind model.Kind) ([]model.Post, error)
}
