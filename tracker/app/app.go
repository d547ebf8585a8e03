package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/reading-tracker/pkg/kafka"
	"github.com/Astemirdum/reading-tracker/pkg/logger"
	"github.com/Astemirdum/reading-tracker/pkg/postgres"
	"github.com/Astemirdum/reading-tracker/tracker/config"
	"github.com/Astemirdum/reading-tracker/tracker/internal/handler"
	"github.com/Astemirdum/reading-tracker/tracker/internal/repository"
	"github.com/Astemirdum/reading-tracker/tracker/internal/server"
	"github.com/Astemirdum/reading-tracker/tracker/internal/service"
	"github.com/Astemirdum/reading-tracker/tracker/internal/service/catalog"
	"github.com/Astemirdum/reading-tracker/tracker/migrations"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "tracker")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Error("db init", zap.Error(err))
		return err
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Error("repo", zap.Error(err))
		return err
	}

	opts := make([]service.Option, 0, 1)
	if cfg.Kafka.Enabled() {
		if err = kafka.CreateTopics(cfg.Kafka, kafka.ReadingTopic); err != nil {
			log.Error("create topics", zap.Error(err))
		}
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Error("kafka.NewProducer", zap.Error(err))
			return err
		}
		defer producer.Close()
		opts = append(opts, service.WithPublisher(service.NewKafkaPublisher(producer)))
	} else {
		log.Info("kafka addrs are empty, reading events are not published")
	}

	svc := service.NewService(repo, catalog.New(cfg.Catalog, log), log, opts...)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})
	if err = g.Wait(); err != nil {
		log.Error("server", zap.Error(err))
		return err
	}

	log.Info("Graceful shutdown finished")
	return nil
}

// Migrate runs a single goose command against the configured database.
func Migrate(cfg config.Config, command string) error {
	log := logger.NewLogger(cfg.Log, "migrate")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, nil)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = postgres.Migrate(db, migrations.MigrationFiles, command); err != nil {
		return err
	}
	log.Info("migrate done", zap.String("command", command))
	return nil
}
