package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/advisorhub/agentcrm/config"
	"github.com/advisorhub/agentcrm/middleware"
	"github.com/advisorhub/agentcrm/repository"
	"github.com/advisorhub/agentcrm/routes"
	"github.com/advisorhub/agentcrm/utils"
)

func main() {
	utils.InitLogger()

	cfg := config.LoadConfig()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// all state is in-memory for the process lifetime, seeded at startup
	if err := repository.InitStores(cfg.SeedFile); err != nil {
		utils.Logger.Fatal().Err(err).Msg("failed to seed stores")
	}

	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	routes.RegisterRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Logger.Info().Msgf("server listening on port %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal().Err(err).Msg("server shutdown failed")
	}

	utils.Logger.Info().Msg("server stopped")
}
