package worker

import (
	"context"

	"github.com/atsdev/go-ats-search/internal/db"
	"github.com/atsdev/go-ats-search/internal/esearch"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// TaskProcessor drains pending sync events: each task replays the
// authoritative entity store row into the search index and records the
// outcome on the event.
type TaskProcessor interface {
	Start() error
	Shutdown()
	ProcessTaskProcessSyncEvent(ctx context.Context, task *asynq.Task) error
}

type RedisTaskProcessor struct {
	server *asynq.Server
	store  db.Store
	client esearch.ESearchClient
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store, client esearch.ESearchClient) TaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(
				func(ctx context.Context, task *asynq.Task, err error) {
					log.Error().Err(err).Str("type", task.Type()).
						Bytes("payload", task.Payload()).
						Msg("process task failed")
				}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server: server,
		store:  store,
		client: client,
	}
}

// Start starts the processor
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskProcessSyncEvent, processor.ProcessTaskProcessSyncEvent)

	return processor.server.Start(mux)
}

// Shutdown stops the processor, waiting for in-flight tasks.
func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
