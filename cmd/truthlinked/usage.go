package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsageCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show usage statistics for the configured license",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer c.Close()

			usage, err := c.Usage(cmd.Context())
			if err != nil {
				return err
			}

			if a.flags.jsonOutput {
				return printJSON(usage)
			}

			printField("tier", usage.Tier)
			printField("usage", fmt.Sprintf("%d / %d (%.1f%%)", usage.Usage, usage.Limit, usage.Percentage))
			printField("days remaining", usage.DaysRemaining)

			if usage.Percentage >= 90 {
				warnColor.Println("usage is close to the license limit")
			}
			return nil
		},
	}
}
