package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

func newProfilesCmd(opts *globalOptions, svc func() *service.GeneratorService) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the adversary profiles used for crack-time estimates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp := svc().Profiles()
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeProfiles(cmd.OutOrStdout(), resp)
		},
	}
}

func writeProfiles(w io.Writer, resp model.ProfilesResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGUESSES/S\tLABEL\tDEFAULT")
	for _, p := range resp.Profiles {
		def := ""
		if p.Name == resp.DefaultProfile {
			def = "*"
		}
		rate := fmt.Sprintf("%.0e", p.GuessesPerSecond)
		if p.Quantum {
			rate += " (sqrt)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, rate, p.Label, def)
	}
	fmt.Fprintf(tw, "\ntable version %d\n", resp.Version)
	return tw.Flush()
}
