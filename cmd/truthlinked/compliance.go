package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/truthlinked/go-sdk/pkg/client"
	"golang.org/x/sync/errgroup"
)

func newComplianceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compliance",
		Short: "Fetch SOX and PCI-DSS compliance reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer c.Close()

			var (
				sox *client.SOXReport
				pci *client.PCIReport
			)

			group, ctx := errgroup.WithContext(cmd.Context())
			group.Go(func() error {
				var err error
				sox, err = c.SOXReport(ctx)
				return err
			})
			group.Go(func() error {
				var err error
				pci, err = c.PCIReport(ctx)
				return err
			})
			if err := group.Wait(); err != nil {
				return err
			}

			if a.flags.jsonOutput {
				return printJSON(map[string]any{"sox": sox, "pci": pci})
			}

			fmt.Println("SOX", dimColor.Sprintf("(period %s)", sox.Period))
			printCheck("audit trail complete", sox.AuditTrailComplete)
			printCheck("no gaps", sox.NoGaps)
			printField("total events", sox.TotalEvents)

			fmt.Println()
			fmt.Println("PCI-DSS", dimColor.Sprintf("(period %s)", pci.Period))
			printCheck("access controls", pci.AccessControlsEnforced)
			printCheck("encryption", pci.EncryptionVerified)
			printCheck("audit complete", pci.AuditComplete)
			return nil
		},
	}
}

func printCheck(name string, ok bool) {
	if ok {
		okColor.Print("  ✓ ")
	} else {
		failColor.Print("  ✗ ")
	}
	fmt.Println(name)
}
