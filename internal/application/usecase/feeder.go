package usecase

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"moodfeed/internal/domain/dto"
	"moodfeed/internal/domain/model"
	"moodfeed/internal/domain/repository/database"
)

// FeedKindLimit is how many posts of each kind the feed looks at.
const FeedKindLimit = 200

type Feeder struct {
	lister database.Lister
}

func NewFeeder(lister database.Lister) *Feeder {
	return &Feeder{lister: lister}
}

// Feed merges the newest posts of every kind and applies the filter.
func (f *Feeder) Feed(ctx context.Context, filter dto.FeedFilter) ([]model.Post, error) {
	posts, err := f.all(ctx)
	if err != nil {
		return nil, err
	}

	mood := strings.TrimSpace(filter.Mood)
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	items := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if mood != "" && p.Meta.Mood() != mood {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Title+" "+p.Meta.Caption()), query) {
			continue
		}
		items = append(items, p)
	}

	return items, nil
}

func (f *Feeder) all(ctx context.Context) ([]model.Post, error) {
	perKind := make([][]model.Post, len(model.Kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range model.Kinds {
		g.Go(func() error {
			posts, err := f.lister.ListFiles(gctx, kind, FeedKindLimit)
			perKind[i] = posts

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []model.Post
	for _, posts := range perKind {
		merged = append(merged, posts...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged, nil
}
