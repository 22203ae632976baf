package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mtallentb/nes-outage-viewer/internal/cli"
	"github.com/mtallentb/nes-outage-viewer/internal/config"
	"github.com/mtallentb/nes-outage-viewer/internal/service"
	"github.com/mtallentb/nes-outage-viewer/internal/upstream"
	"github.com/mtallentb/nes-outage-viewer/pkg/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

func run() int {
	var watch bool
	var format string
	var verbose bool
	flag.BoolVar(&watch, "watch", false, "repeat the check on the poll interval")
	flag.BoolVar(&watch, "w", false, "shorthand for --watch")
	flag.StringVar(&format, "format", cli.FormatText, "output format: text or csv")
	flag.BoolVar(&verbose, "v", false, "log at LOG_LEVEL instead of warnings only")
	flag.Parse()

	if format != cli.FormatText && format != cli.FormatCSV {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want text or csv)\n", format)
		return 2
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	home, err := cfg.Home()
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Error: HOME_LAT and HOME_LNG must be set in .env file (%s)\n", cfgErr.Key)
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Логи CLI уходят в stderr, чтобы не смешиваться с таблицей и CSV
	log := logger.New(cfg.LogLevel, "text", os.Stderr)
	if !verbose {
		log.SetLevel(logrus.WarnLevel)
	}

	client := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout, log)
	outageService := service.NewOutageService(client, nil, log)
	checker := cli.NewChecker(outageService, home, cfg.RadiusMiles, format, os.Stdout, os.Stderr, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if watch {
		if err := checker.Watch(ctx, cfg.PollInterval); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := checker.CheckOnce(ctx); err != nil {
		return 1
	}
	return 0
}
