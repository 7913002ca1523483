// Package reminder runs the upcoming-birthday check once a day.
package reminder

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/username/contact-book/internal/addressbook"
	"github.com/username/contact-book/internal/assistant"
	"github.com/username/contact-book/pkg/dateutil"
	"go.uber.org/zap"
)

// BookLoader loads the current address book
type BookLoader interface {
	Load() (*addressbook.AddressBook, error)
}

// Reminder reports upcoming birthdays at a fixed local time every day
type Reminder struct {
	store       BookLoader
	windowDays  int
	dailyHour   int // 0-23
	dailyMinute int // 0-59
	out         io.Writer
	logger      *zap.Logger
	now         func() time.Time
	mu          sync.Mutex
	lastRunDate string // prevents a second run on the same day
}

// New creates a reminder that loads the book from store on every check
func New(store BookLoader, windowDays, dailyHour, dailyMinute int, out io.Writer, logger *zap.Logger) *Reminder {
	return &Reminder{
		store:       store,
		windowDays:  windowDays,
		dailyHour:   dailyHour,
		dailyMinute: dailyMinute,
		out:         out,
		logger:      logger,
		now:         time.Now,
	}
}

// Start runs until ctx is cancelled.
// If today's scheduled time already passed, the first check runs immediately.
func (r *Reminder) Start(ctx context.Context) error {
	r.logger.Info("Reminder started",
		zap.Int("daily_hour", r.dailyHour),
		zap.Int("daily_minute", r.dailyMinute),
		zap.Int("window_days", r.windowDays))

	now := r.now()
	if !now.Before(r.scheduledOn(now)) {
		r.logger.Info("Scheduled time already passed today, checking now",
			zap.Time("scheduled_time", r.scheduledOn(now)))
		r.runScheduled(now)
	}

	nextRun := r.calculateNextRun(r.now())
	r.logger.Info("Next check scheduled",
		zap.Time("next_run", nextRun),
		zap.Duration("wait_duration", nextRun.Sub(r.now())))

	// Check every minute if it's time to run
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Reminder stopped")
			return nil

		case <-ticker.C:
			now := r.now()
			if !r.shouldRunAt(now) {
				continue
			}
			if r.runScheduled(now) {
				nextRun = r.calculateNextRun(now)
				r.logger.Info("Next check scheduled",
					zap.Time("next_run", nextRun),
					zap.Duration("wait_duration", nextRun.Sub(now)))
			}
		}
	}
}

// runScheduled checks once per calendar day and reports whether it ran
func (r *Reminder) runScheduled(now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	today := now.Format("2006-01-02")
	if r.lastRunDate == today {
		r.logger.Debug("Already checked today, skipping")
		return false
	}

	if _, err := r.check(now); err != nil {
		r.logger.Error("Birthday check failed", zap.Error(err))
		return false
	}

	r.lastRunDate = today
	return true
}

// RunOnce performs a single check for today and prints the result
func (r *Reminder) RunOnce() ([]addressbook.UpcomingBirthday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.check(r.now())
}

func (r *Reminder) check(now time.Time) ([]addressbook.UpcomingBirthday, error) {
	book, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}

	today := dateutil.StartOfDay(now)
	upcoming := book.UpcomingBirthdaysAt(today, r.windowDays)

	names := make([]string, len(upcoming))
	for i, u := range upcoming {
		names[i] = u.Name
	}
	r.logger.Info("Birthday check completed",
		zap.Time("date", today),
		zap.Int("window_days", r.windowDays),
		zap.Int("records", book.Len()),
		zap.Strings("upcoming", names))

	if len(upcoming) == 0 {
		fmt.Fprintf(r.out, "%s: no upcoming birthdays\n", dateutil.FormatDate(today))
		return upcoming, nil
	}

	fmt.Fprintf(r.out, "🎂 %s: upcoming birthdays in the next %d days\n",
		dateutil.FormatDate(today), r.windowDays)
	fmt.Fprintln(r.out, assistant.FormatUpcoming(upcoming))

	return upcoming, nil
}

// scheduledOn returns the scheduled check time on the day of now
func (r *Reminder) scheduledOn(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(),
		r.dailyHour, r.dailyMinute, 0, 0, now.Location())
}

// calculateNextRun calculates the next scheduled check after now
func (r *Reminder) calculateNextRun(now time.Time) time.Time {
	today := r.scheduledOn(now)

	// If target time already passed today, schedule for tomorrow
	if !now.Before(today) {
		return today.AddDate(0, 0, 1)
	}

	return today
}

// shouldRunAt checks if the check should run at the given time (1 minute resolution)
func (r *Reminder) shouldRunAt(now time.Time) bool {
	return now.Hour() == r.dailyHour && now.Minute() == r.dailyMinute
}
