package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"github.com/viperadnan-git/seeksim/internal/config"
	"github.com/viperadnan-git/seeksim/internal/core/event"
	"github.com/viperadnan-git/seeksim/internal/core/service"
	"github.com/viperadnan-git/seeksim/internal/core/track"
)

// setup loads config, applies the logging flags and wires the scheduling
// service. The returned func detaches the outcome logger.
func setup(cmd *cli.Command) (*config.Config, *service.ScheduleService, func(), error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := cmd.String("log-format"); v != "" {
		cfg.Logging.Format = v
	}
	configureLogging(cfg.Logging)

	bus := event.NewBus()
	detach := service.LogOutcomes(bus)
	svc := service.NewScheduleService(track.DefaultRegistry(), bus)
	return cfg, svc, detach, nil
}

func configureLogging(lc config.LoggingConfig) {
	level, err := zerolog.ParseLevel(lc.Level)
	if err == nil {
		zerolog.SetGlobalLevel(level)
	}
	if lc.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	log.Debug().Str("level", lc.Level).Str("format", lc.Format).Msg("log level configured")
}
