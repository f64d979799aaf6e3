package jobs

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/kien091/movie-system/internal/core"
	"github.com/kien091/movie-system/internal/store"
)

// StartJobs starts the background job scheduler.
func StartJobs(app *core.App) {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	startSessionCleanupJob(s, app)

	log.Println("Starting background job scheduler...")
	s.StartAsync()
}

// startSessionCleanupJob schedules the periodic purge of expired sessions.
func startSessionCleanupJob(s *gocron.Scheduler, app *core.App) {
	interval := app.Config.Session.CleanupInterval
	if interval == 0 {
		log.Println("Session cleanup interval is 0, scheduled cleanup is disabled.")
		return
	}

	jobID := "session-cleanup"
	log.Printf("Scheduling job: '%s' to run every %d minutes.", jobID, interval)

	st := store.New(app.DB)
	_, err := s.Every(interval).Minutes().Do(func() {
		purged, err := st.DeleteExpiredSessions()
		if err != nil {
			log.Printf("Job '%s' failed: %v", jobID, err)
			return
		}
		if purged > 0 {
			log.Printf("Job '%s' purged %d expired sessions.", jobID, purged)
		}
	})
	if err != nil {
		log.Printf("Error scheduling '%s' job: %v", jobID, err)
	}
}
