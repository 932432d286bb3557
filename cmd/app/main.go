package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/partnerhub/iis-host/config"
	"github.com/partnerhub/iis-host/internal/common"
	"github.com/partnerhub/iis-host/internal/cron"
	miscApi "github.com/partnerhub/iis-host/internal/misc/api"
	miscService "github.com/partnerhub/iis-host/internal/misc/service"
	repositoryApi "github.com/partnerhub/iis-host/internal/repository/api"
	repositoryService "github.com/partnerhub/iis-host/internal/repository/service"
	"github.com/partnerhub/iis-host/internal/server"
	"github.com/partnerhub/iis-host/pkg/format"
	"github.com/partnerhub/iis-host/pkg/logger"
)

func main() {
	log := logger.New()

	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic recovered: %v", r)
			os.Exit(1)
		}
	}()

	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal("Invalid arguments: %v", err)
	}

	// Initialize configuration
	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}
	if err := log.SetLevelName(cfg.Log.Level); err != nil {
		log.Fatal("%v", err)
	}

	// Initialize services
	repoSvc, err := repositoryService.New(cfg)
	if err != nil {
		log.Fatal("Failed to initialize repository service: %v", err)
	}
	miscSvc := miscService.New()

	rootPath, _ := cfg.Repository.RootPath()
	_, available := repoSvc.Roots().Resolve()
	log.Info("%s", format.FormatRepositoryRoot(rootPath, available))

	// Initialize cron manager
	cronManager := cron.NewManager(log, repoSvc.Roots(), rootPath)
	if err := cronManager.Start(cfg.Repository.Watch); err != nil {
		log.Fatal("Failed to schedule repository root watch: %v", err)
	}
	defer cronManager.Stop()

	// Initialize API handlers
	container, endpoints := server.NewContainer(log,
		repositoryApi.NewRepositoryHandler(repoSvc),
		miscApi.NewMiscHandler(miscSvc))
	format.LogAPIEndpoints(log, endpoints)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting server on %s", addr)

	log.Info("Accessible URLs:")
	for _, ip := range common.GetLocalIPs() {
		log.Info("  http://%s:%d%s", ip, cfg.Server.Port, server.RootPath)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	srv := &http.Server{
		Addr:              addr,
		Handler:           container,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	<-sigChan
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited properly")
}
