// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pwd-strength [COMMAND] [OPTIONS]",
		Short: "Estimate how resistant a password is to realistic cracking attempts",
		Long: "Analyze passwords for crackability: character composition, entropy with penalties " +
			"for human-chosen patterns (repetition, sequences, keyboard walks, dates, dictionary " +
			"words), crack time projections, and an optional k-anonymity check against the " +
			"haveibeenpwned.com breach corpus.",
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
}

func Execute() error {
	return rootCmd.Execute()
}
