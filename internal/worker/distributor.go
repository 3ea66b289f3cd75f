package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor hands sync events to the background drainer.
type TaskDistributor interface {
	DistributeTaskProcessSyncEvent(
		ctx context.Context,
		payload *PayloadProcessSyncEvent,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
