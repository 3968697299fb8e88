package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/service"
)

// sessionSweeper periodically purges expired sessions from the session
// store. Expired sessions are also dropped lazily on access; the sweeper
// keeps the store from accumulating records for visitors who never
// return.
type sessionSweeper struct {
	sessions service.SessionService
	interval time.Duration

	logger *logger.Logger
}

func newSessionSweeper(sessions service.SessionService, interval time.Duration, logger *logger.Logger) *sessionSweeper {
	return &sessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run implements Worker. The sweep loop runs in its own goroutine for
// the lifetime of the process.
func (s *sessionSweeper) Run() {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for range ticker.C {
			s.sweep()
		}
	}()
}

func (s *sessionSweeper) sweep() {
	purged, err := s.sessions.PurgeExpired(context.Background())
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionSweeper.sweep").Msg("error purging expired sessions")
		return
	}

	if purged > 0 {
		s.logger.Info().Int("purged", purged).Msg("expired sessions removed")
	}
}
