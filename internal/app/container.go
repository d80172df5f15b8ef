package app

import (
	"context"
	"log"
	"time"

	"jobtrack/internal/config"
	"jobtrack/internal/database"
	dbpostgres "jobtrack/internal/database/postgres"
	"jobtrack/internal/database/schema"
	"jobtrack/internal/infrastructure/session"
	"jobtrack/internal/llm"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Sessions *session.Store
	LLM      *llm.Client
	Logger   *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := schema.Ensure(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	completer, err := llm.NewOpenAI(cfg.OpenAI)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sessions := session.NewStore(cfg.Redis, cfg.JWT.RefreshExpiresIn, logger)

	return &Container{
		Config:   cfg,
		DB:       db,
		Sessions: sessions,
		LLM:      llm.NewClient(completer, logger),
		Logger:   logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Sessions != nil {
		_ = c.Sessions.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
