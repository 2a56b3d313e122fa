// services/scheduler_service.go
package services

import (
	"log"
	"os"
	"strconv"

	"github.com/maverick001/EasyVocab/config"

	"github.com/go-co-op/gocron"
)

const defaultReminderHour = 20

// Scheduler runs the background jobs: the ledger-midnight rollover
// broadcast (connected pages flip their counter to the new day) and the
// daily debt reminder.
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  *NotifyService
}

func NewScheduler(notifier *NotifyService) *Scheduler {
	// Jobs run on ledger time so "midnight" means the ledger day boundary,
	// not the server's.
	s := gocron.NewScheduler(config.LedgerTZ)
	return &Scheduler{scheduler: s, notifier: notifier}
}

// Start registers and launches all jobs without blocking.
func (s *Scheduler) Start() {
	if _, err := s.scheduler.Every(1).Day().At("00:00").Do(s.rolloverLedgerDay); err != nil {
		log.Printf("scheduler: failed to schedule rollover: %v", err)
	}

	if s.notifier.Enabled() {
		hour := defaultReminderHour
		if v := os.Getenv("REMINDER_HOUR"); v != "" {
			if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
				hour = h
			}
		}
		at := strconv.Itoa(hour) + ":00"
		if hour < 10 {
			at = "0" + at
		}
		if _, err := s.scheduler.Every(1).Day().At(at).Do(s.sendDebtReminder); err != nil {
			log.Printf("scheduler: failed to schedule debt reminder: %v", err)
		}
	}

	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) rolloverLedgerDay() {
	day := LedgerToday()
	log.Printf("scheduler: ledger rolled over to %s", day)
	Counter.BroadcastCount(day, 0)
}

func (s *Scheduler) sendDebtReminder() {
	if err := s.notifier.SendDebtSummary(); err != nil {
		log.Printf("scheduler: debt reminder failed: %v", err)
	}
}
