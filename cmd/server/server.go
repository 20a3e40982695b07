package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/savant/server/internal/config"
	"codeberg.org/savant/server/internal/dispatch"
	"codeberg.org/savant/server/internal/quota"
	"codeberg.org/savant/server/internal/tracking"
	"codeberg.org/savant/server/savant/conversions"
	"codeberg.org/savant/server/savant/users"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small for hosted pooler compatibility
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// PgBouncer in transaction mode doesn't support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	conversionRepo := conversions.NewRepository(db)

	services := InitializeServices(cfg)

	router := gin.Default()

	server := &Server{
		db:             db,
		config:         cfg,
		userRepo:       userRepo,
		conversionRepo: conversionRepo,
		guard:          quota.NewGuard(conversionRepo),
		recorder:       tracking.NewRecorder(conversionRepo),
		dispatcher:     dispatch.NewDispatcher(),
		services:       services,
		router:         router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
