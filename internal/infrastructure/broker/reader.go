package broker

import (
	"context"
	"encoding/json"
	"time"

	"moodfeed/internal/domain/model"
	"moodfeed/pkg/logger"
)

type Reader struct {
	client  *Client
	timeout time.Duration
}

func NewReader(client *Client, cfg ReaderConfig) *Reader {
	return &Reader{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

// Recent returns up to count events, newest first. Undecodable entries are skipped.
func (r *Reader) Recent(ctx context.Context, count int64) ([]model.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	msgs, err := r.client.redis.XRevRangeN(ctx, r.client.stream, "+", "-", count).Result()
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(msgs))
	for _, msg := range msgs {
		body, ok := msg.Values["body"].(string)
		if !ok {
			logger.Warn("stream entry without body", "id", msg.ID)

			continue
		}

		var event model.Event
		if err := json.Unmarshal([]byte(body), &event); err != nil {
			logger.Warn("can't decode stream entry", "id", msg.ID, "err", err)

			continue
		}
		event.ID = msg.ID
		events = append(events, event)
	}

	return events, nil
}
