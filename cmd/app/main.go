package main

import (
	"fmt"
	"os"

	"github.com/gabrielBlankenburg/exbanking-go/internal/bootstrap"
	"github.com/gabrielBlankenburg/exbanking-go/pkg/mlog"
)

func main() {
	cfg := bootstrap.NewConfigFromEnv()

	logger, err := mlog.NewZapLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	defer logger.Sync() //nolint:errcheck

	service := bootstrap.NewService(cfg, logger)

	if err := service.Run(); err != nil {
		logger.Errorf("service stopped: %v", err)
		os.Exit(1)
	}
}
