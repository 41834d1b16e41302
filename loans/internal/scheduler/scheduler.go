package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSpec runs the overdue scan every day at 07:00.
const DefaultSpec = "0 7 * * *"

type Config struct {
	OverdueSpec string        `yaml:"overdueSpec" envconfig:"SCHEDULER_OVERDUE_SPEC" default:"0 7 * * *"`
	Timeout     time.Duration `yaml:"timeout" envconfig:"SCHEDULER_TIMEOUT" default:"2m"`
}

// OverdueScanner publishes overdue notices and reports how many were sent.
type OverdueScanner interface {
	ScanOverdue(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron    *cron.Cron
	scanner OverdueScanner
	cfg     Config
	log     *zap.Logger
}

func NewScheduler(cfg Config, scanner OverdueScanner, log *zap.Logger) *Scheduler {
	if cfg.OverdueSpec == "" {
		cfg.OverdueSpec = DefaultSpec
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &Scheduler{
		cron:    cron.New(),
		scanner: scanner,
		cfg:     cfg,
		log:     log.Named("scheduler"),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.OverdueSpec, s.scanOverdue); err != nil {
		return err
	}
	s.log.Info("starting scheduler", zap.String("overdue", s.cfg.OverdueSpec))
	s.cron.Start()
	return nil
}

// Stop waits for a running scan to finish.
func (s *Scheduler) Stop() {
	s.log.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) scanOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()

	n, err := s.scanner.ScanOverdue(ctx)
	if err != nil {
		s.log.Error("overdue scan", zap.Error(err))
		return
	}
	s.log.Info("overdue scan done", zap.Int("notices", n))
}
