package main

import (
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

func newPassphraseCmd(opts *globalOptions, svc func() *service.GeneratorService) *cobra.Command {
	var (
		words, count              int
		language, separator       string
		capitalize, nums, special bool
	)

	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate passphrases from a built-in word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := svc().Passphrase(model.PassphraseRequest{
				Words:         words,
				Count:         count,
				Language:      language,
				Capitalize:    &capitalize,
				AppendNumbers: &nums,
				AppendSpecial: &special,
				Separator:     &separator,
				Profile:       opts.profile,
			})
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeCredentials(cmd.OutOrStdout(), opts, resp.Passphrases, resp.Strength)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&words, "words", "w", service.DefaultWordCount, "Number of words (3-10)")
	f.IntVarP(&count, "count", "n", service.DefaultCount, "Number of passphrases (1-10)")
	f.StringVar(&language, "language", "english", "Word list: english or german")
	f.StringVar(&separator, "separator", "hyphen", "Word separator: hyphen, underscore, space or none")
	f.BoolVar(&capitalize, "capitalize", true, "Capitalize the first letter of each word")
	f.BoolVar(&nums, "numbers", false, "Randomly append a number to words")
	f.BoolVar(&special, "special", false, "Randomly append a special character to words")
	return cmd
}
