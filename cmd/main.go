package main

import (
	"context"
	"database/sql"

	"github.com/atsdev/go-ats-search/internal/api"
	"github.com/atsdev/go-ats-search/internal/config"
	"github.com/atsdev/go-ats-search/internal/db"
	"github.com/atsdev/go-ats-search/internal/esearch"
	"github.com/atsdev/go-ats-search/internal/model"
	"github.com/atsdev/go-ats-search/internal/scheduler"
	"github.com/atsdev/go-ats-search/internal/syncer"
	"github.com/atsdev/go-ats-search/internal/worker"
	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func main() {
	// === config, env file ===
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load env file")
	}

	// === database ===
	conn, err := sql.Open(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the db")
	}
	conn.SetMaxOpenConns(cfg.DBMaxOpenConns)
	conn.SetMaxIdleConns(cfg.DBMaxIdleConns)

	store := db.NewStore(conn)

	// === elasticsearch ===
	newClient, err := esearch.ConnectWithElasticsearch(cfg.ElasticSearchAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the elasticsearch")
	}

	client := esearch.NewClient(newClient)

	// === background drainer ===
	redisOpt := asynq.RedisClientOpt{
		Addr: cfg.RedisAddress,
	}

	distributor := worker.NewRedisTaskDistributor(redisOpt)
	go runTaskProcessor(redisOpt, store, client)

	// === sync service ===
	service := syncer.NewService(store, client, distributor, map[string]syncer.Policy{
		model.KindCandidate: syncer.Policy(cfg.CandidateOnQueryError),
		model.KindJob:       syncer.Policy(cfg.JobOnQueryError),
	})

	// === scheduled reconciliation ===
	reconciler := scheduler.New(service, cfg.ReconcileSchedule)
	if err = reconciler.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot start the reconcile scheduler")
	}

	// === HTTP server ===
	server, err := api.NewServer(cfg, store, service)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	err = server.Start(cfg.ServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start the server")
	}
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store, client esearch.ESearchClient) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store, client)
	log.Info().Msg("starting the task processor")

	err := taskProcessor.Start()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start the task processor")
	}
}
