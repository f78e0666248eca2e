package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newAuditCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "List audit log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer c.Close()

			logs, err := c.AuditLogs(cmd.Context())
			if err != nil {
				return err
			}

			if a.flags.jsonOutput {
				return printJSON(logs)
			}

			for _, entry := range logs {
				when := time.Unix(entry.Timestamp, 0).UTC().Format(time.RFC3339)
				marker := okColor
				if entry.Result != "allowed" {
					marker = failColor
				}
				dimColor.Printf("%s  ", when)
				fmt.Printf("%-24s %-16s %-24s ", entry.EventType, entry.Subject, entry.Action)
				marker.Println(entry.Result)
			}
			return nil
		},
	}
}
