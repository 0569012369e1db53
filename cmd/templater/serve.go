package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sureshguna14/template-automation/internal/mapping"
	"github.com/sureshguna14/template-automation/internal/picklist"
	"github.com/sureshguna14/template-automation/internal/synth"
	"github.com/sureshguna14/template-automation/internal/validation"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the template automation HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := os.MkdirAll(cfg.StagingDir, 0o755); err != nil {
		return err
	}

	synthService := synth.NewService(logger)
	validationEngine := validation.NewEngine(logger)
	mappingService := mapping.NewService(logger)
	picklistService := picklist.NewService(logger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	})

	mux := http.NewServeMux()
	mux.Handle("/templates/update", corsHandler.Handler(synth.NewHTTPHandler(synthService, cfg.StagingDir, cfg.DefaultSheet)))
	mux.Handle("/templates/validate", corsHandler.Handler(validation.NewHTTPHandler(validationEngine, cfg.StagingDir, cfg.DefaultSheet)))
	mux.Handle("/templates/picklist", corsHandler.Handler(picklist.NewHTTPHandler(picklistService, cfg.StagingDir, cfg.DefaultSheet)))
	mux.Handle("/mappings/update", corsHandler.Handler(mapping.NewUpdateHandler(mappingService, cfg.StagingDir)))
	mux.Handle("/mappings/validate", corsHandler.Handler(mapping.NewValidateHandler(mappingService, cfg.StagingDir)))

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting template automation server", zap.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server exited")
	return nil
}
