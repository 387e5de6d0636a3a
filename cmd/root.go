package cmd

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func App() *cli.Command {
	return &cli.Command{
		Name:    "seeksim",
		Version: version,
		Usage:   "Disk head scheduling simulator (SSTF and SCAN) with seek distance statistics.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML config file",
				Sources: cli.EnvVars("SEEKSIM_CONFIG_PATH"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error); overrides logging.level",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (pretty, json); overrides logging.format",
			},
		},
		Action: shellAction,
		Commands: []*cli.Command{
			shellCmd(),
			runCmd(),
			policiesCmd(),
		},
	}
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
