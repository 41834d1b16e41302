package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/config"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/handler"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/repository"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/scheduler"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/server"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/service"
	"github.com/Astemirdum/notebook-loan-service/loans/migrations"
	"github.com/Astemirdum/notebook-loan-service/pkg/auth"
	"github.com/Astemirdum/notebook-loan-service/pkg/circuit_breaker"
	"github.com/Astemirdum/notebook-loan-service/pkg/kafka"
	"github.com/Astemirdum/notebook-loan-service/pkg/logger"
	"github.com/Astemirdum/notebook-loan-service/pkg/postgres"
	"github.com/Astemirdum/notebook-loan-service/pkg/upload"
	"github.com/IBM/sarama"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "loans")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo := repository.NewRepository(db, log)

	pub := kafka.NewNoopPublisher()
	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		pub = kafka.NewPublisher(producer)
	} else {
		log.Warn("kafka disabled, reconcile steps and loan events are dropped")
	}
	svc := service.NewService(repo, pub, log)

	revoker := auth.NewNoopRevoker()
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("redis ping", zap.Error(err))
		}
		revoker = auth.NewRedisRevoker(rdb)
	} else {
		log.Warn("redis disabled, logout does not revoke tokens")
	}

	uploader := upload.NewClient(cfg.Upload, circuit_breaker.New(cfg.CircuitBreaker), log)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var consumer sarama.ConsumerGroup
	if cfg.Kafka.Enabled() {
		consumer, err = kafka.NewConsumer(cfg.Kafka, kafka.ReconcileConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		reconciler := service.NewReconciler(repo, repo, log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			kafka.Consume(ctx, consumer, handler.NewConsumer(reconciler.Apply, log), log, kafka.ReconcileTopic)
		}()
	}

	sched := scheduler.NewScheduler(cfg.Scheduler, svc, log)
	if err := sched.Start(); err != nil {
		log.Fatal("scheduler start", zap.Error(err))
	}

	h := handler.New(svc, uploader, revoker, cfg.Auth, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
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
		log.DPanic("srv.Stop", zap.Error(err))
	}
	sched.Stop()
	cancel()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			log.Error("consumer.Close", zap.Error(err))
		}
	}
	wg.Wait()
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
