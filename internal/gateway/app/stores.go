package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"careercompass/internal/gateway/config"
	"careercompass/internal/gateway/repository/testresult"
	"careercompass/internal/gateway/repository/user"
)

type gatewayStores struct {
	users   user.Repository
	results testresult.Repository
}

func initStores(cfg *config.Config) (*gatewayStores, error) {
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		return initPostgresStores(dsn)
	}
	return initInMemoryStores(), nil
}

func initPostgresStores(dsn string) (*gatewayStores, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	log.Printf("stores: postgres")
	return &gatewayStores{
		users:   user.NewPostgresStore(db),
		results: testresult.NewPostgresStore(db),
	}, nil
}

func initInMemoryStores() *gatewayStores {
	users := user.NewMemoryStore()
	nameOf := func(ctx context.Context, id int64) string {
		u, ok, err := users.GetByID(ctx, id)
		if err != nil || !ok {
			return ""
		}
		return u.Name
	}
	log.Printf("stores: in-memory (DATABASE_URL not set)")
	return &gatewayStores{
		users:   users,
		results: testresult.NewMemoryStore(nameOf),
	}
}
