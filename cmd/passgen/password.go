package main

import (
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

func newPasswordCmd(opts *globalOptions, svc func() *service.GeneratorService) *cobra.Command {
	var (
		length, count                              int
		upper, lower, numbers, special             bool
		extended, brackets, spaces, excludeSimilar bool
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := svc().Password(model.PasswordRequest{
				Length:         length,
				Count:          count,
				Uppercase:      &upper,
				Lowercase:      &lower,
				Numbers:        &numbers,
				Special:        &special,
				Extended:       &extended,
				Brackets:       &brackets,
				Spaces:         &spaces,
				ExcludeSimilar: &excludeSimilar,
				Profile:        opts.profile,
			})
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeCredentials(cmd.OutOrStdout(), opts, resp.Passwords, resp.Strength)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&length, "length", "l", service.DefaultPasswordLength, "Number of characters (4-128)")
	f.IntVarP(&count, "count", "n", service.DefaultCount, "Number of passwords (1-10)")
	f.BoolVar(&upper, "uppercase", true, "Include A-Z")
	f.BoolVar(&lower, "lowercase", true, "Include a-z")
	f.BoolVar(&numbers, "numbers", true, "Include 0-9")
	f.BoolVar(&special, "special", true, "Include ASCII punctuation")
	f.BoolVar(&extended, "extended", false, "Include German umlauts and ß")
	f.BoolVar(&brackets, "brackets", false, "Include brackets")
	f.BoolVar(&spaces, "spaces", false, "Include the space character")
	f.BoolVar(&excludeSimilar, "exclude-similar", false, "Drop look-alike characters such as O/0 and l/1")
	return cmd
}
