// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package audit

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pwd-strength/internal/util"
	"pwd-strength/pkg/strength"
)

// Auditor runs the analysis engine over every candidate in a wordlist-style
// file and writes a result row per candidate. Rows carry metrics only, never
// the candidate text: line number, length, score, adjusted bits, rating.
type Auditor struct {
	analyzer    *strength.Analyzer
	parallelism int
	stat        *status
	wm          sync.Mutex
	fileName    string
	writer      *bufio.Writer
	bits        []float64
}

func NewAuditor(analyzer *strength.Analyzer, out *os.File, parallelism int) *Auditor {
	return &Auditor{
		analyzer:    analyzer,
		parallelism: parallelism,
		writer:      bufio.NewWriter(out),
		fileName:    out.Name(),
	}
}

// ProcessFile analyzes every line of the input concurrently. Breach checking
// stays off here: auditing a list must not turn into mass queries against the
// corpus.
func (a *Auditor) ProcessFile(in *os.File) error {
	s := util.Stats()
	defer s()

	if stat, err := in.Stat(); err == nil {
		// The adjusted-bits series is held in memory for the summary.
		util.CheckRam(uint64(stat.Size()) / 8)
	}

	var threads int
	if a.parallelism > 0 {
		threads = a.parallelism
	} else {
		threads = runtime.NumCPU() * 2
	}

	// A bounded thread pool. I just didn't want to implement it myself...
	pool, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * threads,
		NumWorkers:    threads,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	log.Info().Msgf("auditing candidates into file %s with %d threads", a.fileName, threads)
	a.stat = newStatus()
	a.stat.BeginProgress()

	if _, err = fmt.Fprintf(a.writer, "line\tlength\tscore\tbits\trating\n"); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		candidate := scanner.Text()
		if candidate == "" {
			continue
		}
		if err = pool.Publish(a.processCandidate, line, candidate); err != nil {
			log.Panic().Err(err).Msgf("there is a programming error here.")
		}
	}
	if err = scanner.Err(); err != nil {
		return err
	}

	pool.Wait()
	a.stat.Done()
	a.summarize()

	return a.writer.Flush()
}

func (a *Auditor) processCandidate(line int, candidate string) {
	report, err := a.analyzer.Analyze(context.Background(), candidate, strength.Options{SkipBreachCheck: true})
	if err != nil {
		log.Error().Err(err).Msgf("error analyzing candidate at line %d", line)
		return
	}

	// Synchronize writes, we don't want intersected or incomplete lines.
	a.wm.Lock()
	defer a.wm.Unlock()
	if _, err = fmt.Fprintf(a.writer, "%d\t%d\t%d\t%.2f\t%s\n",
		line, report.Profile.Length, report.Score, report.Entropy.AdjustedBits, report.Rating); err != nil {
		log.Fatal().Err(err).Msgf("error during file write for line %d. Stopping process", line)
	}
	a.bits = append(a.bits, report.Entropy.AdjustedBits)
	a.stat.CandidateAnalyzed(report.Score <= 3)
}

func (a *Auditor) summarize() {
	if len(a.bits) == 0 {
		return
	}
	sorty.SortSlice(a.bits)

	percentile := func(p float64) float64 {
		i := int(p * float64(len(a.bits)-1))
		return a.bits[i]
	}

	pr := message.NewPrinter(language.English)
	log.Info().Msgf("audited %s candidates. adjusted entropy p10 %.2f, median %.2f, p90 %.2f bits",
		pr.Sprintf("%d", len(a.bits)), percentile(0.1), percentile(0.5), percentile(0.9))
}
