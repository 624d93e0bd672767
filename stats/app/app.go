package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuskit/lending-service/pkg/kafka"
	"github.com/campuskit/lending-service/pkg/logger"
	"github.com/campuskit/lending-service/pkg/postgres"
	"github.com/campuskit/lending-service/stats/config"
	"github.com/campuskit/lending-service/stats/internal/handler"
	"github.com/campuskit/lending-service/stats/internal/repository"
	"github.com/campuskit/lending-service/stats/internal/server"
	"github.com/campuskit/lending-service/stats/internal/service"
	"github.com/campuskit/lending-service/stats/migrations"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "stats")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresPool(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %w", err)
	}
	svc := service.NewService(repo, log)

	consumer, err := kafka.NewConsumerGroup(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumerGroup %w", err)
	}
	go kafka.Consume(ctx, consumer, handler.NewConsumer(svc.Stats, log), cfg.Kafka.Topic)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err = srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	cancel()
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
