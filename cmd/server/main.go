package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	addresshandler "rolodex/internal/address/handler"
	addressservice "rolodex/internal/address/service"
	addressstore "rolodex/internal/address/store"
	contacthandler "rolodex/internal/contact/handler"
	contactmetrics "rolodex/internal/contact/metrics"
	contactservice "rolodex/internal/contact/service"
	contactstore "rolodex/internal/contact/store"
	"rolodex/internal/platform/config"
	"rolodex/internal/platform/httpserver"
	"rolodex/internal/platform/logger"
	"rolodex/internal/platform/postgres"
	httptransport "rolodex/internal/transport/http"
	userhandler "rolodex/internal/user/handler"
	usermetrics "rolodex/internal/user/metrics"
	userservice "rolodex/internal/user/service"
	userstore "rolodex/internal/user/store"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal feature packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		users     userservice.Store
		contacts  contactservice.Store
		addresses addressservice.Store
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		users = userstore.NewPostgres(db)
		contacts = contactstore.NewPostgres(db)
		addresses = addressstore.NewPostgres(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		users = userstore.NewInMemory()
		contacts = contactstore.NewInMemory()
		addresses = addressstore.NewInMemory()
	}

	userService := userservice.New(users, usermetrics.New())
	contactService := contactservice.New(contacts, contactmetrics.New())
	addressService := addressservice.New(addresses, contactService)

	router := httptransport.NewRouter(
		userhandler.New(userService, log),
		contacthandler.New(contactService, log),
		addresshandler.New(addressService, log),
		userService,
		log,
	)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting rolodex", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
