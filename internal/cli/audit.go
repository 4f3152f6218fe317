package cli

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pwd-strength/internal/audit"
	"pwd-strength/internal/util"
	"pwd-strength/pkg/strength"
)

var (
	auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Analyze every candidate in a file and write a metrics report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return auditCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	auditCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Candidate passwords input file, one per line (required)")
	auditCmd.MarkFlagRequired("in-file")
	auditCmd.Flags().StringVarP(&wordlistFile, "wordlist", "w", "", "Newline-delimited wordlist of known weak passwords (required)")
	auditCmd.MarkFlagRequired("wordlist")
	auditCmd.Flags().StringVarP(&outFile, "out-file", "o", "./audit-results.tsv", "Output file path. Can be absolute or relative.")
	auditCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite any existing files while writing the results.")
	auditCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of threads to use for the audit. If omitted or less than 1, defaults to twice the number of logical processors of the machine.")

	rootCmd.AddCommand(auditCmd)
}

func auditCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	wordlist, err := strength.LoadWordlist(wordlistFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading wordlist")
	}

	// No breach checker here: audits never query the corpus.
	analyzer, err := strength.NewAnalyzer(wordlist, nil)
	if err != nil {
		return err
	}

	in, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(in *os.File) {
		if err = in.Close(); err != nil {
			log.Error().Err(err).Msg("error closing candidates file")
		}
	}(in)

	abs, err := filepath.Abs(outFile)
	if err != nil {
		log.Fatal().Err(err).Msgf("could not get absolute path of file")
	}

	if !overwrite {
		_, err = os.Stat(abs)
		if err == nil {
			log.Fatal().Msgf("file %s exists and overwrite flag is not set", abs)
		}
	}

	out, err := os.Create(abs)
	if err != nil {
		return err
	}

	defer func(out *os.File) {
		if err = out.Close(); err != nil {
			log.Error().Err(err).Msg("error closing results file")
		}
	}(out)

	a := audit.NewAuditor(analyzer, out, threads)
	return a.ProcessFile(in)
}
