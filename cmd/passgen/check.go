package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// maxCheckInput bounds how much of stdin is read.
const maxCheckInput = 4 << 10

func newCheckCmd(opts *globalOptions, svc func() *service.GeneratorService) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Rate a password read from standard input",
		Long:  "check reads one password from standard input and rates it. The password is never accepted as an argument so it stays out of the shell history.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxCheckInput))
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password, _, _ := strings.Cut(string(raw), "\n")
			password = strings.TrimSuffix(password, "\r")

			resp, err := svc().Check(model.CheckRequest{Password: password, Profile: opts.profile})
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeCheck(cmd.OutOrStdout(), resp)
		},
	}
}

func writeCheck(w io.Writer, a model.CheckResponse) error {
	if a.Empty {
		_, err := fmt.Fprintln(w, "no password given")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "length:\t%d (%d unique)\n", a.Length, a.UniqueChars)
	fmt.Fprintf(tw, "classes:\t%s\n", classList(a))
	fmt.Fprintf(tw, "pool size:\t%d\n", a.PoolSize)
	fmt.Fprintf(tw, "entropy:\t%.1f bits\n", a.EntropyBits)
	fmt.Fprintf(tw, "score:\t%d/100\n", a.Score)
	if a.Level != nil {
		fmt.Fprintf(tw, "strength:\t%s (%s, %s)\n", a.Level.Label, a.Level.Tier, a.Profile)
	}
	fmt.Fprintln(tw)
	for _, s := range a.Scenarios {
		fmt.Fprintf(tw, "%s\t%s\n", s.Label, s.CrackTime)
	}
	return tw.Flush()
}

func classList(a model.CheckResponse) string {
	var classes []string
	if a.HasUpper {
		classes = append(classes, "upper")
	}
	if a.HasLower {
		classes = append(classes, "lower")
	}
	if a.HasDigit {
		classes = append(classes, "digits")
	}
	if a.HasSpecial {
		classes = append(classes, "special")
	}
	if len(classes) == 0 {
		return "none"
	}
	return strings.Join(classes, ", ")
}
