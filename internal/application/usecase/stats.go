package usecase

import (
	"context"

	"moodfeed/internal/application/usecase/abstraction"
	"moodfeed/internal/domain/dto"
	"moodfeed/internal/domain/model"
)

// Stats summarises the feed for the profile view.
type Stats struct {
	feeder abstraction.Feeder
}

func NewStats(feeder abstraction.Feeder) *Stats {
	return &Stats{feeder: feeder}
}

func (s *Stats) Summary(ctx context.Context) (dto.Stats, error) {
	posts, err := s.feeder.Feed(ctx, dto.FeedFilter{})
	if err != nil {
		return dto.Stats{}, err
	}

	stats := dto.Stats{
		Total:  len(posts),
		ByKind: make(map[model.Kind]int, len(model.Kinds)),
		ByMood: make(map[string]int),
	}
	for _, k := range model.Kinds {
		stats.ByKind[k] = 0
	}

	for _, p := range posts {
		stats.ByKind[p.Kind]++
		stats.ByMood[p.Meta.Mood()]++
	}

	best := 0
	for mood, n := range stats.ByMood {
		if n > best || (n == best && mood < stats.TopMood) {
			best, stats.TopMood = n, mood
		}
	}

	return stats, nil
}
