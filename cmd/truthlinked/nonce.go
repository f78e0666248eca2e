package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/truthlinked/go-sdk/pkg/signing"
)

func newNonceCommand(a *app) *cobra.Command {
	var count int

	nonce := &cobra.Command{
		Use:   "nonce",
		Short: "Generate random nonces for token exchange",
		RunE: func(cmd *cobra.Command, args []string) error {
			for range count {
				value, err := signing.GenerateNonce()
				if err != nil {
					return err
				}
				fmt.Println(value)
			}
			return nil
		},
	}

	nonce.Flags().IntVar(&count, "count", 1, "number of nonces to generate")
	return nonce
}
