// Package jobs runs the background tasks (cron).
// scheduler.go posts the daily calendar summary to the announce chat.
package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/features/calendar"
)

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron           *cron.Cron
	calendars      *calendar.Service
	announceChatID int64
	sendFunc       func(chatID int64, text string)
}

// NewScheduler creates the scheduler in the given timezone. announceChatID
// of 0 disables the daily post.
func NewScheduler(
	calendars *calendar.Service,
	timezone string,
	announceChatID int64,
	sendFunc func(chatID int64, text string),
) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}

	return &Scheduler{
		cron:           cron.New(cron.WithLocation(loc)),
		calendars:      calendars,
		announceChatID: announceChatID,
		sendFunc:       sendFunc,
	}, nil
}

// Start registers and starts the jobs.
func (s *Scheduler) Start() {
	if s.announceChatID == 0 {
		log.Info("scheduler: announce chat not configured, daily post disabled")
		return
	}

	// Morning calendar post at 08:00 local time.
	s.cron.AddFunc("0 8 * * *", func() {
		log.WithField("chat_id", s.announceChatID).Info("[CRON] daily calendar post")
		s.sendFunc(s.announceChatID, calendar.RenderSummary(s.calendars.Now()))
	})

	s.cron.Start()
	log.Info("scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("scheduler stopped")
}
