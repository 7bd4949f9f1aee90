package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	profile string
	quiet   bool
	json    bool
}

func newRootCmd(gen *crypto.Generator) *cobra.Command {
	opts := &globalOptions{}
	svc := func() *service.GeneratorService {
		return service.NewGeneratorService(gen, os.Getenv("DEFAULT_PROFILE"))
	}

	root := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate credentials and estimate their strength",
		Long:          "passgen draws passwords, passphrases and PINs from a cryptographic random source and rates them by entropy and brute-force time.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.profile, "profile", "p", "", "Adversary profile used for the rating (see 'passgen profiles')")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Print only the credentials")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print the full response as JSON")

	root.AddCommand(
		newPasswordCmd(opts, svc),
		newPassphraseCmd(opts, svc),
		newPinCmd(opts, svc),
		newCheckCmd(opts, svc),
		newProfilesCmd(opts, svc),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeCredentials prints one credential per line followed by the rating.
func writeCredentials(w io.Writer, opts *globalOptions, creds []string, s model.StrengthResponse) error {
	for _, c := range creds {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	if opts.quiet {
		return nil
	}
	return writeStrength(w, s)
}

func writeStrength(w io.Writer, s model.StrengthResponse) error {
	_, err := fmt.Fprintf(w,
		"\nstrength:      %s (%s)\nentropy:       %.1f bits\npool size:     %d\ncombinations:  %s\ncrack time:    %s (%s)\n",
		s.Label, s.Tier, s.EntropyBits, s.PoolSize, s.Combinations, s.CrackTime, s.Profile)
	return err
}
