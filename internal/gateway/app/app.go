package app

import (
	"context"
	"fmt"
	"log"

	"careercompass/internal/books"
	"careercompass/internal/gateway/config"
	"careercompass/internal/gateway/handler"
	"careercompass/internal/gateway/server"
	"careercompass/internal/llm"
)

type App struct {
	server *server.Server
	ai     llm.Client
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Dependencies
	stores, err := initStores(cfg)
	if err != nil {
		return nil, err
	}

	var ai llm.Client
	if cfg.Gemini.APIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
		}
		ai = gemini
	} else {
		log.Printf("GEMINI_API_KEY not set; AI endpoints will answer 500")
	}

	h := handler.New(ai, stores.users, stores.results, books.NewClient())

	// Routing & Server
	mux := server.NewMux(h)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
		ai:     ai,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if a.ai != nil {
		if closeErr := a.ai.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
