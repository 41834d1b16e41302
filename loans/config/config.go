package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/scheduler"
	"github.com/Astemirdum/notebook-loan-service/pkg/auth"
	"github.com/Astemirdum/notebook-loan-service/pkg/circuit_breaker"
	"github.com/Astemirdum/notebook-loan-service/pkg/kafka"
	"github.com/Astemirdum/notebook-loan-service/pkg/logger"
	"github.com/Astemirdum/notebook-loan-service/pkg/postgres"
	"github.com/Astemirdum/notebook-loan-service/pkg/upload"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LOANS_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LOANS_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"15s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"15s"`
}

type Config struct {
	Server         HTTPServer             `yaml:"server"`
	Database       postgres.DB            `yaml:"db"`
	Kafka          kafka.Config           `yaml:"kafka"`
	Redis          auth.RedisConfig       `yaml:"redis"`
	Auth           auth.Config            `yaml:"auth"`
	Upload         upload.Config          `yaml:"upload"`
	CircuitBreaker circuit_breaker.Config `yaml:"circuitBreaker"`
	Scheduler      scheduler.Config       `yaml:"scheduler"`
	Log            logger.Log             `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options override what was read.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = &config
	})

	return cfg
}
