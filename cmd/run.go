package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"
	"github.com/viperadnan-git/seeksim/internal/core/service"
	"github.com/viperadnan-git/seeksim/internal/core/track"
	"github.com/viperadnan-git/seeksim/internal/shell"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Schedule one batch of track requests and print the report",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "tracks",
				Aliases:  []string{"t"},
				Usage:    "Track numbers, comma or space separated",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "start",
				Aliases:  []string{"s"},
				Usage:    "Track currently under the head",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "policy",
				Aliases: []string{"p"},
				Usage:   "sstf (1) or scan (2); defaults to scheduler.policy",
			},
			&cli.StringFlag{
				Name:    "direction",
				Aliases: []string{"d"},
				Usage:   "SCAN direction, inward or outward; defaults to scheduler.direction",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format (text, json)",
				Value: "text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, svc, detach, err := setup(cmd)
			if err != nil {
				return err
			}
			defer detach()

			req := service.ScheduleRequest{
				Policy:    cfg.Policy(),
				Direction: cfg.Direction(),
			}
			if req.Tracks, err = track.ParseTracks(cmd.String("tracks")); err != nil {
				return fmt.Errorf("--tracks: %w", err)
			}
			if req.Start, err = strconv.Atoi(cmd.String("start")); err != nil {
				return fmt.Errorf("--start: %w: %q is not an integer", track.ErrInvalidInput, cmd.String("start"))
			}
			if v := cmd.String("policy"); v != "" {
				if req.Policy, err = track.ParsePolicy(v); err != nil {
					return fmt.Errorf("--policy: %w", err)
				}
			}
			if v := cmd.String("direction"); v != "" {
				if req.Direction, err = track.ParseDirection(v); err != nil {
					return fmt.Errorf("--direction: %w", err)
				}
			}

			res, err := svc.Schedule(ctx, req)
			if err != nil {
				return err
			}

			switch cmd.String("format") {
			case "json":
				enc := json.NewEncoder(stdout(cmd))
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			case "text":
				return shell.WriteReport(stdout(cmd), res)
			default:
				return fmt.Errorf("--format: unknown format %q", cmd.String("format"))
			}
		},
	}
}
