// Package scheduler wires up the cron job that periodically reconciles
// the entity store into the search index for every collection.
package scheduler

import (
	"context"

	"github.com/atsdev/go-ats-search/internal/model"
	"github.com/atsdev/go-ats-search/internal/syncer"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler wraps robfig/cron and manages the reconcile loop.
type Scheduler struct {
	cron    *cron.Cron
	service *syncer.Service
	spec    string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler firing on the given cron spec.
func New(service *syncer.Service, spec string) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		service: service,
		spec:    spec,
	}
}

// Start registers the reconcile job and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runReconcile(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Str("spec", s.spec).Msg("reconcile scheduler started")
	return nil
}

// Stop stops the scheduler without interrupting a running pass.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runReconcile(ctx context.Context) {
	for _, collection := range []model.Collection{model.Candidates, model.Jobs} {
		count, err := s.service.Reconcile(ctx, collection)
		if err != nil {
			log.Error().Err(err).Str("entity_type", collection.Kind).
				Msg("scheduled reconcile failed")
			continue
		}
		log.Info().Str("entity_type", collection.Kind).Int("count", count).
			Msg("scheduled reconcile finished")
	}
}
