// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"sort"

	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pwd-strength/internal/util"
	"pwd-strength/pkg/hibp"
	"pwd-strength/pkg/strength"
)

var (
	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the strength of a password",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				// Dummy string
				return analyzeCommand("")
			} else {
				return analyzeCommand(args[0])
			}
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	analyzeCmd.Flags().StringVarP(&wordlistFile, "wordlist", "w", "", "Newline-delimited wordlist of known weak passwords (required)")
	analyzeCmd.MarkFlagRequired("wordlist")
	analyzeCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode.")
	analyzeCmd.Flags().BoolVar(&noBreach, "no-breach", false, "Skip the haveibeenpwned.com breach lookup. The report then shows breach status unavailable.")
	analyzeCmd.Flags().StringSliceVarP(&attackerProfiles, "profiles", "a", nil, "Attacker profiles to project crack times for. Defaults to all known profiles.")

	rootCmd.AddCommand(analyzeCmd)
}

func analyzeCommand(password string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	wordlist, err := strength.LoadWordlist(wordlistFile)
	if err != nil {
		// A silently missing dictionary would inflate every score.
		log.Fatal().Err(err).Msg("error loading wordlist")
	}

	var checker strength.BreachChecker
	if !noBreach {
		checker = hibp.NewClient()
	}

	analyzer, err := strength.NewAnalyzer(wordlist, checker)
	if err != nil {
		return err
	}

	opts := strength.Options{
		SkipBreachCheck:  noBreach,
		AttackerProfiles: attackerProfiles,
	}

	if interactive {
		prompt := promptui.Prompt{
			Label: "Password",
			Mask:  '*',
			Validate: func(input string) error {
				if len(input) == 0 {
					return errors.New("please enter a password")
				}
				return nil
			},
		}

		log.Info().Msgf("Running interactive session. ^C to exit")
		if err = runInteractiveSession(prompt, analyzer, opts); err != nil {
			if err.Error() == "^C" || err.Error() == "^D" {
				log.Info().Msgf("Goodbye")
			} else {
				log.Error().Err(err).Msgf("Error during interactive session")
			}
			// No return to avoid the default cobra error message
			return nil
		}

		return nil
	}

	return renderReport(analyzer, password, opts)
}

func runInteractiveSession(prompt promptui.Prompt, analyzer *strength.Analyzer, opts strength.Options) error {
	for {
		result, err := prompt.Run()
		if err != nil {
			return err
		}

		if err = renderReport(analyzer, result, opts); err != nil {
			log.Error().Err(err).Msg("Error during analysis")
		}
	}
}

func renderReport(analyzer *strength.Analyzer, password string, opts strength.Options) error {
	report, err := analyzer.Analyze(context.Background(), password, opts)
	if err != nil {
		return err
	}

	log.Info().Msgf("score: %d/10 (%s)", report.Score, report.Rating)
	log.Info().Msgf("entropy: %.2f bits effective (%.2f before penalties)",
		report.Entropy.AdjustedBits, report.Entropy.BaseBits)

	names := make([]string, 0, len(report.CrackTime.Display))
	for name := range report.CrackTime.Display {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		log.Info().Msgf("crack time (%s): %s", name, report.CrackTime.Display[name])
	}

	for _, p := range report.Entropy.Penalties {
		log.Info().Msgf("penalty: -%.0f bits (%s)", p.Bits, p.Source)
	}

	for _, note := range report.Notes {
		log.Info().Msgf("note: %s", note)
	}

	return nil
}
