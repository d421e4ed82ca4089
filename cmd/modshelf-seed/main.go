// modshelf-seed wipes the mods collection and installs the sample data set.
// It is an administrative, out-of-band tool for demos and local development;
// never point it at a database you care about.
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/modshelf/modshelf/internal/app/bootstrap"
	"github.com/modshelf/modshelf/internal/app/seed"
	modstore "github.com/modshelf/modshelf/internal/app/store/mods"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	coreCfg, appCfg, err := bootstrap.LoadConfig(logger)
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}
	if err := bootstrap.ValidateConfig(coreCfg, appCfg, logger); err != nil {
		logger.Fatal("config validation failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deps, err := bootstrap.ConnectDB(ctx, coreCfg, appCfg, logger)
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	defer func() {
		if err := bootstrap.Shutdown(ctx, coreCfg, appCfg, deps, logger); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	store := modstore.New(deps.MongoDatabase)
	n, err := seed.Load(ctx, store)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	logger.Info("seeded sample mods",
		zap.Int("count", n),
		zap.String("database", appCfg.MongoDatabase))
}
