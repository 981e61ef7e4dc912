package broker

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	redis  *redis.Client
	stream string
	maxLen int64
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parse broker uri: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("ping broker: %w", err)
	}

	return &Client{
		redis:  rdb,
		stream: cfg.StreamName,
		maxLen: cfg.MaxLen,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}

// Broker publishes and reads post events over one client.
type Broker struct {
	*Publisher
	*Reader
}

func New(client *Client, cfg Config) *Broker {
	return &Broker{
		Publisher: NewPublisher(client, cfg.PublisherConfig),
		Reader:    NewReader(client, cfg.ReaderConfig),
	}
}
