package audit

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type status struct {
	candidatesAnalyzed uint64
	weakCandidates     uint64
	start              time.Time
	ticker             *time.Ticker
	progress           chan bool
}

func newStatus() *status {
	return &status{
		start:    time.Now(),
		ticker:   time.NewTicker(10 * time.Second),
		progress: make(chan bool),
	}
}

// BeginProgress reports the progress of the audit every 10 seconds.
func (s *status) BeginProgress() {
	go func() {
		for {
			select {
			case <-s.progress:
				return
			case <-s.ticker.C:
				log.Info().Msgf("%d candidates analyzed. %.0f candidates/s",
					atomic.LoadUint64(&s.candidatesAnalyzed), s.candidatesPerSecond())
			}
		}
	}()
}

func (s *status) CandidateAnalyzed(weak bool) {
	atomic.AddUint64(&s.candidatesAnalyzed, 1)
	if weak {
		atomic.AddUint64(&s.weakCandidates, 1)
	}
}

func (s *status) candidatesPerSecond() float64 {
	elapsed := time.Since(s.start)
	if elapsed.Nanoseconds() > 0 {
		return float64(atomic.LoadUint64(&s.candidatesAnalyzed)) / elapsed.Seconds()
	}
	return float64(atomic.LoadUint64(&s.candidatesAnalyzed))
}

func (s *status) Done() {
	s.progress <- true
	s.ticker.Stop()

	total := atomic.LoadUint64(&s.candidatesAnalyzed)
	weak := atomic.LoadUint64(&s.weakCandidates)
	var weakPercent float64
	if total > 0 {
		weakPercent = float64(weak*100) / float64(total)
	}

	p := message.NewPrinter(language.English)
	log.Info().Msgf("finished auditing all candidates in %v. %.0f candidates/s", time.Since(s.start), s.candidatesPerSecond())
	log.Info().Msgf("%s of %s candidates scored weak (%.2f%%)", p.Sprintf("%d", weak), p.Sprintf("%d", total), weakPercent)
}
