package worker

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atsdev/go-ats-search/internal/db"
	"github.com/atsdev/go-ats-search/internal/esearch"
	"github.com/atsdev/go-ats-search/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const TaskProcessSyncEvent = "task:process_sync_event"

type PayloadProcessSyncEvent struct {
	EventID int64 `json:"event_id"`
}

// DistributeTaskProcessSyncEvent distributes the task of processing one sync event.
func (distributor *RedisTaskDistributor) DistributeTaskProcessSyncEvent(
	ctx context.Context,
	payload *PayloadProcessSyncEvent,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskProcessSyncEvent, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("enqueued task")

	return nil
}

// ProcessTaskProcessSyncEvent replays one sync event against the search
// index. The entity store is the source of truth: inserts and updates
// re-index the current row, deletes remove the document. The event moves
// pending -> processing -> completed|failed; a lost row on a non-delete
// event fails the event rather than guessing.
func (processor *RedisTaskProcessor) ProcessTaskProcessSyncEvent(ctx context.Context, task *asynq.Task) error {
	var payload PayloadProcessSyncEvent
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	event, err := processor.store.GetSyncEvent(ctx, payload.EventID)
	if err != nil {
		return fmt.Errorf("failed to get sync event %d: %w", payload.EventID, err)
	}
	if event.Status != db.EventStatusPending {
		// already drained by an earlier attempt
		return nil
	}

	err = processor.store.UpdateSyncEventStatus(ctx, db.UpdateSyncEventStatusParams{
		ID:      event.ID,
		Status:  db.EventStatusProcessing,
		Details: event.Details,
	})
	if err != nil {
		return fmt.Errorf("failed to mark sync event %d processing: %w", event.ID, err)
	}

	replayErr := processor.replay(ctx, event)

	status := db.EventStatusCompleted
	details := event.Details
	if replayErr != nil {
		status = db.EventStatusFailed
		details = replayErr.Error()
	}

	err = processor.store.UpdateSyncEventStatus(ctx, db.UpdateSyncEventStatusParams{
		ID:      event.ID,
		Status:  status,
		Details: details,
	})
	if err != nil {
		return fmt.Errorf("failed to finish sync event %d: %w", event.ID, err)
	}

	log.Info().Str("type", task.Type()).Int64("event_id", event.ID).
		Str("entity_type", event.EntityType).Str("entity_id", event.EntityID).
		Str("status", status).Msg("processed task")

	if replayErr != nil {
		return replayErr
	}
	return nil
}

func (processor *RedisTaskProcessor) replay(ctx context.Context, event db.SyncEvent) error {
	collection, ok := model.CollectionByKind(event.EntityType)
	if !ok {
		// applications live inside the job document; there is no row to replay
		return nil
	}

	if event.Operation == model.OpDelete {
		err := processor.client.DeleteDocument(ctx, collection.Index, event.EntityID)
		if errors.Is(err, esearch.ErrDocumentNotFound) {
			return nil
		}
		return err
	}

	row, err := processor.store.SelectByID(ctx, collection.Table, event.EntityID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s has no entity store row", event.EntityType, event.EntityID)
	}
	if err != nil {
		return err
	}

	return processor.client.IndexDocument(ctx, collection.Index, event.EntityID, collection.DocumentFromRow(row))
}
