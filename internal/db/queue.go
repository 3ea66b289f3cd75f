package db

import (
	"context"
	"database/sql"
	"time"
)

// Sync event statuses. An event starts pending and ends completed or failed.
const (
	EventStatusPending    = "pending"
	EventStatusProcessing = "processing"
	EventStatusCompleted  = "completed"
	EventStatusFailed     = "failed"
)

// SyncEvent is one row of the sync_queue table: a durable record of a
// propagation attempt between the entity store and the search index.
type SyncEvent struct {
	ID         int64     `json:"id"`
	Operation  string    `json:"operation"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Details    string    `json:"details,omitempty"`
}

type AppendSyncEventParams struct {
	Operation  string
	EntityType string
	EntityID   string
	Details    string
}

// AppendSyncEvent inserts a new sync event. The status is always forced
// to pending on insert; the log is append-only and has no delete path.
func (store *SQLStore) AppendSyncEvent(ctx context.Context, arg AppendSyncEventParams) (SyncEvent, error) {
	const query = `
		INSERT INTO sync_queue (operation, entity_type, entity_id, status, timestamp, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	event := SyncEvent{
		Operation:  arg.Operation,
		EntityType: arg.EntityType,
		EntityID:   arg.EntityID,
		Status:     EventStatusPending,
		Timestamp:  time.Now().UTC(),
		Details:    arg.Details,
	}

	row := store.db.QueryRowContext(ctx, query,
		event.Operation,
		event.EntityType,
		event.EntityID,
		event.Status,
		event.Timestamp,
		event.Details,
	)
	if err := row.Scan(&event.ID); err != nil {
		return SyncEvent{}, err
	}

	return event, nil
}

type ListSyncEventsParams struct {
	// Status restricts the listing to one status; empty means all.
	Status string
	Limit  int32
}

// ListSyncEvents returns events oldest first, up to the given limit.
func (store *SQLStore) ListSyncEvents(ctx context.Context, arg ListSyncEventsParams) ([]SyncEvent, error) {
	const listAll = `
		SELECT id, operation, entity_type, entity_id, status, timestamp, details
		FROM sync_queue
		ORDER BY timestamp ASC
		LIMIT $1`
	const listByStatus = `
		SELECT id, operation, entity_type, entity_id, status, timestamp, details
		FROM sync_queue
		WHERE status = $1
		ORDER BY timestamp ASC
		LIMIT $2`

	var (
		rows *sql.Rows
		err  error
	)
	if arg.Status == "" {
		rows, err = store.db.QueryContext(ctx, listAll, arg.Limit)
	} else {
		rows, err = store.db.QueryContext(ctx, listByStatus, arg.Status, arg.Limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []SyncEvent
	for rows.Next() {
		var event SyncEvent
		err = rows.Scan(
			&event.ID,
			&event.Operation,
			&event.EntityType,
			&event.EntityID,
			&event.Status,
			&event.Timestamp,
			&event.Details,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// GetSyncEvent returns a single event by its identifier.
func (store *SQLStore) GetSyncEvent(ctx context.Context, id int64) (SyncEvent, error) {
	const query = `
		SELECT id, operation, entity_type, entity_id, status, timestamp, details
		FROM sync_queue
		WHERE id = $1`

	var event SyncEvent
	row := store.db.QueryRowContext(ctx, query, id)
	err := row.Scan(
		&event.ID,
		&event.Operation,
		&event.EntityType,
		&event.EntityID,
		&event.Status,
		&event.Timestamp,
		&event.Details,
	)
	return event, err
}

type UpdateSyncEventStatusParams struct {
	ID      int64
	Status  string
	Details string
}

// UpdateSyncEventStatus transitions an event's status. Transitions out of a
// terminal status are not rejected; retries append a fresh event instead
// of resurrecting an old one, so in practice terminal rows stay terminal.
func (store *SQLStore) UpdateSyncEventStatus(ctx context.Context, arg UpdateSyncEventStatusParams) error {
	const query = `UPDATE sync_queue SET status = $1, details = $2 WHERE id = $3`
	_, err := store.db.ExecContext(ctx, query, arg.Status, arg.Details, arg.ID)
	return err
}
