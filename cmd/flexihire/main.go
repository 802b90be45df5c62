package main

import (
	"context"

	"github.com/avGenie/flexihire/internal/app/config"
	server "github.com/avGenie/flexihire/internal/app/controller/http/server"
	"github.com/avGenie/flexihire/internal/app/logger"
	storage "github.com/avGenie/flexihire/internal/app/storage/api"
	"github.com/avGenie/flexihire/internal/app/usecase/crypto"
	"github.com/avGenie/flexihire/internal/app/usecase/events"
	"github.com/avGenie/flexihire/internal/app/usecase/gateway"
	"github.com/avGenie/flexihire/internal/app/usecase/order"
	"go.uber.org/zap"
)

type publisher interface {
	order.EventPublisher
	Close()
}

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	crypto.ConfigureTokens(config.JWTSecret, config.TokenTTL)

	db, err := storage.InitStorage(context.Background(), config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			zap.L().Error("error while closing storage", zap.Error(err))
		}
	}()

	if len(config.StripeSecretKey) == 0 {
		zap.L().Warn("stripe secret key is empty, checkout requests will fail")
	}
	if len(config.StripeWebhookSecret) == 0 {
		zap.L().Warn("stripe webhook secret is empty, webhook events are rejected")
	}

	statusEvents := createPublisher(config)
	defer statusEvents.Close()

	httpServer := server.New(config, db, gateway.New(config), statusEvents)
	httpServer.StartHTTPServer()
}

func createPublisher(config config.Config) publisher {
	if len(config.KafkaBrokers) == 0 {
		zap.L().Info("kafka brokers are not set, status events are dropped")

		return events.Nop{}
	}

	kafka, err := events.NewKafka(config.KafkaBrokers, config.KafkaTopic)
	if err != nil {
		zap.L().Fatal("error while creating kafka publisher", zap.Error(err))
	}

	return kafka
}
