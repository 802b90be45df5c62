package storage

import (
	"context"
	"fmt"

	"github.com/avGenie/flexihire/internal/app/config"
	"github.com/avGenie/flexihire/internal/app/storage/api/model"
	"github.com/avGenie/flexihire/internal/app/storage/memory"
	"github.com/avGenie/flexihire/internal/app/storage/postgres"
	"go.uber.org/zap"
)

func InitStorage(ctx context.Context, config config.Config) (model.Storage, error) {
	if len(config.DBConnect) == 0 {
		zap.L().Warn("database uri is empty, using in-memory storage")

		return memory.NewStorage(), nil
	}

	pg, err := postgres.NewPostgresStorage(ctx, config.DBConnect)
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres storage: %w", err)
	}

	return pg, nil
}
