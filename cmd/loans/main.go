package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/app"
	"github.com/Astemirdum/notebook-loan-service/loans/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	opts := []config.Option{config.WithWriteTimeout(time.Minute)}
	if os.Getenv("LOG_LEVEL") == "" {
		opts = append(opts, config.WithLogLevel(zapcore.DebugLevel))
	}
	cfg := config.NewConfig(opts...)

	app.Run(cfg)
}
