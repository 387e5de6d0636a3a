package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func policiesCmd() *cli.Command {
	return &cli.Command{
		Name:  "policies",
		Usage: "List the available scheduling policies",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, svc, detach, err := setup(cmd)
			if err != nil {
				return err
			}
			defer detach()

			for _, p := range svc.Policies() {
				fmt.Fprintln(stdout(cmd), p)
			}
			return nil
		},
	}
}
