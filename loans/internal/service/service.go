package service

import (
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/repository"
	"github.com/Astemirdum/notebook-loan-service/pkg/kafka"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	pub  kafka.Publisher
	now  func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, pub kafka.Publisher, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log.Named("service"),
		repo: repo,
		pub:  pub,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
