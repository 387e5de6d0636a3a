package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/viperadnan-git/seeksim/internal/core/track"
	"github.com/viperadnan-git/seeksim/internal/shell"
)

func shellCmd() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Interactive menu: enter tracks once, then schedule them repeatedly (default)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "tracks",
				Usage: "Preload track numbers (comma or space separated) instead of prompting",
			},
		},
		Action: shellAction,
	}
}

func shellAction(ctx context.Context, cmd *cli.Command) error {
	cfg, svc, detach, err := setup(cmd)
	if err != nil {
		return err
	}
	defer detach()

	opts := []shell.Option{shell.WithDefaultDirection(cfg.Direction())}
	if v := cmd.String("tracks"); v != "" {
		tracks, err := track.ParseTracks(v)
		if err != nil {
			return fmt.Errorf("--tracks: %w", err)
		}
		opts = append(opts, shell.WithTracks(tracks))
	}

	return shell.New(stdin(cmd), stdout(cmd), svc, opts...).Run(ctx)
}
