package usecase

import (
	"context"

	"moodfeed/internal/domain/model"
	"moodfeed/internal/domain/repository/broker"
)

const (
	DefaultNotifications = 20
	MaxNotifications     = 100
)

type Notifier struct {
	reader broker.Reader
}

func NewNotifier(reader broker.Reader) *Notifier {
	return &Notifier{reader: reader}
}

// Recent returns the latest post events, newest first. n is clamped to [1, MaxNotifications].
func (n *Notifier) Recent(ctx context.Context, count int) ([]model.Event, error) {
	switch {
	case count <= 0:
		count = DefaultNotifications
	case count > MaxNotifications:
		count = MaxNotifications
	}

	events, err := n.reader.Recent(ctx, int64(count))
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []model.Event{}
	}

	return events, nil
}
