package syncer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/atsdev/go-ats-search/internal/db"
	"github.com/atsdev/go-ats-search/internal/esearch"
	"github.com/atsdev/go-ats-search/internal/model"
	"github.com/atsdev/go-ats-search/internal/search"
	"github.com/atsdev/go-ats-search/internal/worker"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Policy decides what a collection does when a search query fails at the
// index: degrade to an unranked full listing, or surface the error.
type Policy string

const (
	FailOpen   Policy = "fail_open"
	FailClosed Policy = "fail_closed"
)

// listSize bounds plain listings and search results.
const listSize = 1000

// Service keeps the entity store and the search index consistent: every
// mutation writes the store first, then the index, then appends a sync
// event recording the outcome. Reconcile repairs drift in bulk.
type Service struct {
	store       db.Store
	client      esearch.ESearchClient
	distributor worker.TaskDistributor
	policies    map[string]Policy
}

// NewService creates a sync service. The distributor may be nil, in which
// case sync events are recorded but not handed to the background drainer.
func NewService(
	store db.Store,
	client esearch.ESearchClient,
	distributor worker.TaskDistributor,
	policies map[string]Policy,
) *Service {
	return &Service{
		store:       store,
		client:      client,
		distributor: distributor,
		policies:    policies,
	}
}

func (s *Service) policy(kind string) Policy {
	if policy, ok := s.policies[kind]; ok {
		return policy
	}
	return FailClosed
}

// Create writes a new entity to the store and the index and appends an
// insert event. The identifier is generated when the caller supplies none.
// On an index failure the store write stands, the event records the error
// and an IndexWriteError is returned so the caller can reconcile.
func (s *Service) Create(ctx context.Context, c model.Collection, doc map[string]any) (map[string]any, error) {
	entity := make(map[string]any, len(doc)+3)
	for key, value := range doc {
		entity[key] = value
	}

	id, _ := entity["id"].(string)
	if id == "" {
		id = uuid.New().String()
	}
	entity["id"] = id

	now := time.Now().UTC()
	if _, ok := entity["createdAt"]; !ok {
		entity["createdAt"] = now
	}
	entity["updatedAt"] = now

	if err := s.store.Insert(ctx, c.Table, c.StoreFields(entity)); err != nil {
		return nil, &StoreWriteError{Err: err}
	}

	indexErr := s.client.IndexDocument(ctx, c.Index, id, entity)

	details := c.Kind + " created"
	if indexErr != nil {
		details = fmt.Sprintf("%s created, index write failed: %v", c.Kind, indexErr)
	}
	s.appendEvent(ctx, model.OpInsert, c.Kind, id, details)

	if indexErr != nil {
		return nil, &IndexWriteError{Err: indexErr}
	}
	return entity, nil
}

// Update applies a partial mutation to an existing entity. Existence is
// decided by the entity store, not the index, so an entity whose index
// write previously failed can still be updated and repaired.
func (s *Service) Update(ctx context.Context, c model.Collection, id string, partial map[string]any) (map[string]any, error) {
	row, err := s.store.SelectByID(ctx, c.Table, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	changes := make(map[string]any, len(partial)+1)
	for key, value := range partial {
		if key == "id" {
			// the identifier is immutable once assigned
			continue
		}
		changes[key] = value
	}
	changes["updatedAt"] = time.Now().UTC()

	if err = s.store.Update(ctx, c.Table, id, c.StoreFields(changes)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &StoreWriteError{Err: err}
	}

	indexErr := s.client.PartialUpdate(ctx, c.Index, id, changes)

	details := c.Kind + " updated"
	if indexErr != nil {
		details = fmt.Sprintf("%s updated, index write failed: %v", c.Kind, indexErr)
	}
	s.appendEvent(ctx, model.OpUpdate, c.Kind, id, details)

	if indexErr != nil {
		return nil, &IndexWriteError{Err: indexErr}
	}

	entity := c.DocumentFromRow(row)
	for key, value := range changes {
		entity[key] = value
	}
	return entity, nil
}

// Delete removes the entity from both stores and appends a delete event.
// A second delete of the same identifier reports ErrNotFound.
func (s *Service) Delete(ctx context.Context, c model.Collection, id string) error {
	_, err := s.store.SelectByID(ctx, c.Table, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err = s.store.Delete(ctx, c.Table, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return &StoreWriteError{Err: err}
	}

	indexErr := s.client.DeleteDocument(ctx, c.Index, id)
	if errors.Is(indexErr, esearch.ErrDocumentNotFound) {
		// the index never had the document; the delete still converged
		indexErr = nil
	}

	details := c.Kind + " deleted"
	if indexErr != nil {
		details = fmt.Sprintf("%s deleted, index write failed: %v", c.Kind, indexErr)
	}
	s.appendEvent(ctx, model.OpDelete, c.Kind, id, details)

	if indexErr != nil {
		return &IndexWriteError{Err: indexErr}
	}
	return nil
}

// Get reads one entity through the search index, the system's read path.
func (s *Service) Get(ctx context.Context, c model.Collection, id string) (map[string]any, error) {
	doc, err := s.client.GetDocument(ctx, c.Index, id)
	if errors.Is(err, esearch.ErrDocumentNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// List returns the whole collection, newest first.
func (s *Service) List(ctx context.Context, c model.Collection) ([]map[string]any, error) {
	return s.client.Search(ctx, c.Index, search.MatchAll(c, listSize))
}

// Search translates the query and filters into a search expression and
// executes it. On an index failure the collection's policy applies:
// fail-open degrades to the unranked full listing, fail-closed surfaces
// a QueryExecutionError.
func (s *Service) Search(ctx context.Context, c model.Collection, query string, filters search.Filters) ([]map[string]any, error) {
	expression := search.Translate(c, query, filters)
	expression["size"] = listSize

	docs, err := s.client.Search(ctx, c.Index, expression)
	if err == nil {
		return docs, nil
	}

	if s.policy(c.Kind) == FailOpen {
		log.Warn().Err(err).Str("entity_type", c.Kind).
			Msg("search failed, falling back to full listing")
		return s.List(ctx, c)
	}
	return nil, &QueryExecutionError{Err: err}
}

// Reconcile replays the entire entity store into the search index in one
// bulk replace keyed by identifier. It appends no per-row sync events: a
// full resynchronization would only flood the log, and re-running it on
// an unchanged store changes nothing.
func (s *Service) Reconcile(ctx context.Context, c model.Collection) (int, error) {
	rows, err := s.store.SelectAll(ctx, c.Table)
	if err != nil {
		return 0, err
	}

	docs := make([]esearch.Document, 0, len(rows))
	for _, row := range rows {
		doc := c.DocumentFromRow(row)
		id, _ := doc["id"].(string)
		if id == "" {
			continue
		}
		docs = append(docs, esearch.Document{ID: id, Body: doc})
	}

	if err = s.client.BulkIndex(ctx, c.Index, docs); err != nil {
		return 0, err
	}

	log.Info().Str("entity_type", c.Kind).Int("count", len(docs)).
		Msg("reconciled entity store into search index")
	return len(docs), nil
}

// CreateApplication links a candidate into a job document's candidateIds
// and records an insert event for the application. Applications have no
// authoritative table of their own; the job document carries the link.
func (s *Service) CreateApplication(ctx context.Context, app model.Application) (model.Application, error) {
	jobDoc, err := s.client.GetDocument(ctx, model.Jobs.Index, app.JobID)
	if errors.Is(err, esearch.ErrDocumentNotFound) {
		return model.Application{}, ErrNotFound
	}
	if err != nil {
		return model.Application{}, err
	}

	candidateIDs := appendCandidateID(jobDoc["candidateIds"], app.CandidateID)
	indexErr := s.client.PartialUpdate(ctx, model.Jobs.Index, app.JobID, map[string]any{
		"candidateIds": candidateIDs,
	})

	details := "job application created"
	if indexErr != nil {
		details = fmt.Sprintf("job application created, index write failed: %v", indexErr)
	}
	s.appendEvent(ctx, model.OpInsert, model.KindApplication, app.CandidateID, details)

	if indexErr != nil {
		return model.Application{}, &IndexWriteError{Err: indexErr}
	}
	return app, nil
}

func appendCandidateID(existing any, candidateID string) []string {
	var ids []string
	switch v := existing.(type) {
	case []string:
		ids = v
	case []any:
		for _, id := range v {
			if s, ok := id.(string); ok {
				ids = append(ids, s)
			}
		}
	}
	return append(ids, candidateID)
}

// appendEvent records one sync event for a mutation and hands it to the
// background drainer. Append failures are logged, not surfaced: the
// mutation itself already succeeded or failed on its own terms.
func (s *Service) appendEvent(ctx context.Context, operation, entityType, entityID, details string) {
	event, err := s.store.AppendSyncEvent(ctx, db.AppendSyncEventParams{
		Operation:  operation,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	})
	if err != nil {
		log.Error().Err(err).Str("operation", operation).Str("entity_type", entityType).
			Str("entity_id", entityID).Msg("failed to append sync event")
		return
	}

	if s.distributor == nil {
		return
	}
	payload := &worker.PayloadProcessSyncEvent{EventID: event.ID}
	if err = s.distributor.DistributeTaskProcessSyncEvent(ctx, payload); err != nil {
		log.Error().Err(err).Int64("event_id", event.ID).
			Msg("failed to enqueue sync event task")
	}
}
