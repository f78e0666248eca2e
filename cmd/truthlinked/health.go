package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer c.Close()

			health, err := c.Health(cmd.Context())
			if err != nil {
				return err
			}

			if a.flags.jsonOutput {
				return printJSON(health)
			}

			statusColor(health.Status).Print(health.Status)
			fmt.Printf(" (version %s)\n", health.Version)
			return nil
		},
	}
}
