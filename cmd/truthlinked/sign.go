package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/truthlinked/go-sdk/pkg/signing"
)

func newSignCommand(a *app) *cobra.Command {
	var (
		body      string
		bodyFile  string
		timestamp int64
	)

	sign := &cobra.Command{
		Use:   "sign <method> <path>",
		Short: "Sign a request locally and print the signature headers",
		Long: `Sign computes the signature headers for a request without sending it,
useful for debugging signed requests with curl or similar tools.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			licenseKey := a.flags.licenseKey
			if licenseKey == "" {
				licenseKey = os.Getenv(envLicenseKey)
			}

			signer, err := signing.NewRequestSigner(licenseKey)
			if err != nil {
				return err
			}
			defer signer.Destroy()

			payload := []byte(body)
			if bodyFile != "" {
				payload, err = os.ReadFile(bodyFile)
				if err != nil {
					return fmt.Errorf("read body file: %w", err)
				}
			}

			var signature string
			if timestamp > 0 {
				signature, err = signer.SignAt(args[0], args[1], payload, timestamp)
			} else {
				timestamp, signature, err = signer.Sign(args[0], args[1], payload)
			}
			if err != nil {
				return err
			}

			if a.flags.jsonOutput {
				return printJSON(map[string]string{
					"timestamp": strconv.FormatInt(timestamp, 10),
					"signature": signature,
				})
			}

			printField("X-Timestamp", timestamp)
			printField("X-Signature", signature)
			return nil
		},
	}

	sign.Flags().StringVar(&body, "body", "", "request body to sign")
	sign.Flags().StringVar(&bodyFile, "body-file", "", "read request body from this file")
	sign.Flags().Int64Var(&timestamp, "timestamp", 0, "sign at this Unix timestamp instead of now")
	return sign
}
