package main

import (
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

func newPinCmd(opts *globalOptions, svc func() *service.GeneratorService) *cobra.Command {
	var length, count int

	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Generate numeric PINs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := svc().Pin(model.PinRequest{Length: length, Count: count, Profile: opts.profile})
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeCredentials(cmd.OutOrStdout(), opts, resp.Pins, resp.Strength)
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", service.DefaultPinLength, "Number of digits (4-18)")
	cmd.Flags().IntVarP(&count, "count", "n", service.DefaultCount, "Number of PINs (1-10)")
	return cmd
}
