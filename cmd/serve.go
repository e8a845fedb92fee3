// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/lnrlnrleite/social/internal/config"
	"github.com/lnrlnrleite/social/internal/db"
	"github.com/lnrlnrleite/social/internal/gemini"
	"github.com/lnrlnrleite/social/internal/instagram"
	"github.com/lnrlnrleite/social/internal/locking"
	"github.com/lnrlnrleite/social/internal/logging"
	"github.com/lnrlnrleite/social/internal/monitoring/prometheus"
	"github.com/lnrlnrleite/social/internal/secrets"
	"github.com/lnrlnrleite/social/internal/storage"
	"github.com/lnrlnrleite/social/internal/tracing"
	"github.com/lnrlnrleite/social/pkg/content"
	"github.com/lnrlnrleite/social/pkg/publish"
	"github.com/lnrlnrleite/social/pkg/tenant"
	"github.com/lnrlnrleite/social/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("social-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	codec, err := secrets.NewCodec(specs.EncryptionKey)
	if err != nil {
		return fmt.Errorf("invalid encryption key: %w", err)
	}

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	geminiClient := gemini.NewClient(
		gemini.Config{
			BaseURL:    specs.GeminiBaseURL,
			TextModel:  specs.GeminiTextModel,
			ImageModel: specs.GeminiImageModel,
			Timeout:    specs.GeminiTimeout,
		},
		tracer,
		monitor,
		logger,
	)
	instagramClient := instagram.NewClient(
		instagram.Config{
			BaseURL: specs.InstagramBaseURL,
			Timeout: specs.InstagramTimeout,
		},
		tracer,
		monitor,
		logger,
	)

	// One keyed mutex shared by settings updates and both pipelines, so a
	// pipeline run never observes a half-applied credential change.
	locks := locking.NewKeyedMutex()

	tenantService := tenant.NewService(s, codec, locks, tracer, monitor, logger)
	contentService := content.NewService(tenantService, geminiClient, locks, tracer, monitor, logger)
	publishService := publish.NewService(tenantService, instagramClient, locks, tracer, monitor, logger)

	router := web.NewRouter(
		tenantService,
		contentService,
		publishService,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
