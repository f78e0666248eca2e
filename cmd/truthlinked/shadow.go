package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/truthlinked/go-sdk/pkg/client"
)

func newShadowCommand(a *app) *cobra.Command {
	shadow := &cobra.Command{
		Use:   "shadow",
		Short: "Shadow-mode policy evaluation",
	}
	shadow.AddCommand(newShadowDecisionsCommand(a), newShadowReplayCommand(a))
	return shadow
}

func newShadowDecisionsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decisions",
		Short: "List divergences between IAM and policy decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer c.Close()

			decisions, err := c.ShadowDecisions(cmd.Context())
			if err != nil {
				return err
			}

			if a.flags.jsonOutput {
				return printJSON(decisions)
			}

			if len(decisions) == 0 {
				okColor.Println("no divergences recorded")
				return nil
			}

			for _, decision := range decisions {
				marker := dimColor
				if decision.BreachPrevented {
					marker = failColor
				}
				marker.Printf("%-24s", decision.DivergenceID)
				fmt.Printf("iam=%-5t af=%-5t breach_prevented=%t\n",
					decision.IAMAllowed, decision.AFWouldAllow, decision.BreachPrevented)
			}
			return nil
		},
	}
}

func newShadowReplayCommand(a *app) *cobra.Command {
	var adapter string

	replay := &cobra.Command{
		Use:   "replay <logfile>",
		Short: "Replay IAM logs through the policy engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read log file: %w", err)
			}

			var logs []string
			for _, line := range strings.Split(string(data), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					logs = append(logs, line)
				}
			}
			if len(logs) == 0 {
				return fmt.Errorf("log file %s contains no entries", args[0])
			}

			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer c.Close()

			result, err := c.ReplayIAMLogs(cmd.Context(), client.ReplayRequest{
				Logs:    logs,
				Adapter: adapter,
			})
			if err != nil {
				return err
			}

			if a.flags.jsonOutput {
				return printJSON(result)
			}

			printField("events", result.EventsProcessed)
			printField("breaches", result.BreachesPrevented)
			printField("false positives", result.FalsePositivesAvoided)
			return nil
		},
	}

	replay.Flags().StringVar(&adapter, "adapter", "generic", "log adapter to parse entries with")
	return replay
}
