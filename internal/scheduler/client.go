package scheduler

import (
	"context"
	"fmt"

	"bankwise_support_backend/platform/config"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Client enqueues delivery tasks onto the configured queue. A nil client
// refuses every enqueue so callers fall back to synchronous delivery when
// Redis is not configured.
type Client struct {
	client *asynq.Client
	queue  string
}

// ErrNotConnected is returned for enqueue attempts on a nil client.
var ErrNotConnected = fmt.Errorf("delivery queue not connected")

// Enqueuer is the producer side of the delivery queue.
type Enqueuer interface {
	EnqueueSMS(ctx context.Context, payload SMSDeliverPayload) error
	EnqueueEmail(ctx context.Context, payload EmailDeliverPayload) error
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) EnqueueSMS(ctx context.Context, payload SMSDeliverPayload) error {
	if c == nil || c.client == nil {
		return ErrNotConnected
	}

	task, err := NewSMSDeliverTask(payload)
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue))
	return err
}

func (c *Client) EnqueueEmail(ctx context.Context, payload EmailDeliverPayload) error {
	if c == nil || c.client == nil {
		return ErrNotConnected
	}

	task, err := NewEmailDeliverTask(payload)
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue))
	return err
}

func redisClientOpt(redisURL string) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: opt.TLSConfig,
	}, nil
}
