package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"moodfeed/internal/domain/model"
)

type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

// Publish appends the event to the stream, trimming it to roughly MaxLen entries.
func (p *Publisher) Publish(ctx context.Context, event model.Event) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{"body": string(body)},
	}
	if p.client.maxLen > 0 {
		args.MaxLen = p.client.maxLen
		args.Approx = true
	}

	return p.client.redis.XAdd(ctx, args).Err()
}
