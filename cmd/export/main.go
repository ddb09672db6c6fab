package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/vfg2006/ga4-traffic-export/infrastructure/exporter"
	"github.com/vfg2006/ga4-traffic-export/infrastructure/integrator/ga4"
	"github.com/vfg2006/ga4-traffic-export/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/ga4-traffic-export/internal/config"
	"github.com/vfg2006/ga4-traffic-export/internal/usecases/exporting"
	"github.com/vfg2006/ga4-traffic-export/pkg/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("ga4-traffic-export", pflag.ContinueOnError)
	config.RegisterFlags(flags)

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exporting.ExitOK
		}
		fmt.Fprintln(os.Stderr, err)
		return exporting.ExitConfigError
	}

	cfg, err := config.NewConfig(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exporting.ExitConfigError
	}

	logger, closer, err := log.New(log.Options{
		Level:    cfg.App.LogLevel,
		FilePath: cfg.App.LogFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exporting.ExitConfigError
	}
	defer closer.Close()

	if cfg.EnvFile != "" {
		logger.Debugf("Arquivo .env carregado: %s", cfg.EnvFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fs := afero.NewOsFs()

	authenticator := ga4client.NewAuthenticator(cfg, fs, logger)
	ga4Integrator := ga4.New(cfg, logger)
	csvExporter := exporter.NewCSVExporter(cfg, fs, logger)

	service := exporting.NewService(cfg, authenticator, ga4Integrator, csvExporter, logger)

	_, err = service.Run(ctx, exporting.RunRequest{
		StartDate: cfg.Export.StartDate,
		EndDate:   cfg.Export.EndDate,
		Today:     time.Now(),
	})

	return exporting.ExitCode(err)
}
