// Command server runs the GrowthSphere backend: a JSON API over a document
// store exposing organization programs and strategy profiles.
//
// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal services packages.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"growthsphere/internal/platform/config"
	"growthsphere/internal/platform/docstore"
	"growthsphere/internal/platform/httpserver"
	"growthsphere/internal/platform/logger"
	"growthsphere/internal/platform/metrics"
	programhandler "growthsphere/internal/program/handler"
	programservice "growthsphere/internal/program/service"
	programstore "growthsphere/internal/program/store"
	strategyhandler "growthsphere/internal/strategy/handler"
	strategyservice "growthsphere/internal/strategy/service"
	strategystore "growthsphere/internal/strategy/store"
	httptransport "growthsphere/internal/transport/http"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	// The store connection is opened once and reused for the process
	// lifetime. A missing or unreachable store degrades the service rather
	// than failing startup; the /test endpoint reports the gap.
	var conn *docstore.Conn
	var programs programstore.Store = programstore.NewUnavailable()
	var strategies strategystore.Store = strategystore.NewUnavailable()

	if cfg.StoreConfigured() {
		c, err := docstore.Connect(context.Background(), cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			log.Error("document store unreachable, starting degraded", "error", err)
		} else {
			conn = c
			programs = programstore.NewMongo(conn.Database())
			strategies = strategystore.NewMongo(conn.Database())
		}
	} else {
		log.Warn("DATABASE_URL or DATABASE_NAME not set, starting degraded")
	}

	programSvc := programservice.New(programs, m)
	strategySvc := strategyservice.New(strategies, programSvc, m)

	router := httptransport.NewRouter(log, m, cfg, conn,
		programhandler.New(programSvc, log),
		strategyhandler.New(strategySvc, log),
	)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting growthsphere backend", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if conn != nil {
		_ = conn.Disconnect(ctx)
	}
}
