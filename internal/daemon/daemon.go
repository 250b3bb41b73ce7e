package daemon

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/username/address-book/internal/birthdays"
	"github.com/username/address-book/internal/contacts"
	"github.com/username/address-book/pkg/dateutil"
	"go.uber.org/zap"
)

// Daemon posts the upcoming-birthday digest once a day
type Daemon struct {
	dir          *contacts.Directory
	scheduler    *birthdays.Scheduler
	clock        func() time.Time
	dailyHour    int  // Hour to post the digest (0-23)
	dailyMinute  int  // Minute to post the digest (0-59)
	systemTray   bool // Show system tray icon
	tickInterval time.Duration
	logger       *zap.Logger
	trayApp      *TrayApp

	mu          sync.Mutex // Serialises digest runs
	cancel      context.CancelFunc
	running     bool
	lastRunDate string // Last day a digest was posted, DD.MM.YYYY
	lastDigest  birthdays.Digest
}

// NewScheduledDaemon creates a new daemon instance with daily schedule
func NewScheduledDaemon(
	dir *contacts.Directory,
	scheduler *birthdays.Scheduler,
	dailyHour, dailyMinute int,
	systemTray bool,
	logger *zap.Logger,
) *Daemon {
	return &Daemon{
		dir:          dir,
		scheduler:    scheduler,
		clock:        time.Now,
		dailyHour:    dailyHour,
		dailyMinute:  dailyMinute,
		systemTray:   systemTray,
		tickInterval: time.Minute,
		logger:       logger,
	}
}

// Start runs the daemon until ctx is cancelled or Stop is called
func (d *Daemon) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.mu.Lock()
	d.cancel = cancel
	d.mu.Unlock()
	defer cancel()

	// Initialize system tray if enabled (Windows only)
	if d.systemTray {
		d.logger.Info("Initializing system tray")
		trayApp, err := NewTrayApp(d, d.logger)
		if err != nil {
			d.logger.Warn("Failed to initialize system tray", zap.Error(err))
			d.runScheduledLogic(ctx)
			return nil
		}
		d.trayApp = trayApp
		// Run tray (blocks until Quit)
		d.trayApp.Run(ctx)
		return nil
	}

	d.logger.Info("Running without system tray")
	d.runScheduledLogic(ctx)
	return nil
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
	}
}

// runScheduledLogic posts the digest whenever the daily time has been
// reached and it has not been posted today yet
func (d *Daemon) runScheduledLogic(ctx context.Context) {
	d.logger.Info("Daemon scheduled logic started",
		zap.Int("daily_hour", d.dailyHour),
		zap.Int("daily_minute", d.dailyMinute))

	d.checkAndRun(d.clock())

	nextRun := d.calculateNextRun(d.clock())
	d.logger.Info("Next digest scheduled",
		zap.Time("next_run", nextRun),
		zap.Duration("wait_duration", nextRun.Sub(d.clock())))

	ticker := time.NewTicker(d.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Daemon stopped")
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			return

		case <-ticker.C:
			d.checkAndRun(d.clock())
		}
	}
}

func (d *Daemon) checkAndRun(now time.Time) {
	if !d.isDue(now) {
		return
	}
	if _, err := d.RunDigest(); err != nil {
		d.logger.Error("Digest failed", zap.Error(err))
	}
}

// isDue reports whether the daily time has passed and no digest was
// posted on now's calendar day
func (d *Daemon) isDue(now time.Time) bool {
	if now.Before(d.scheduledAt(now)) {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastRunDate != dateutil.FormatDate(now)
}

// scheduledAt returns the daily time on now's calendar day
func (d *Daemon) scheduledAt(now time.Time) time.Time {
	return dateutil.StartOfDay(now).
		Add(time.Duration(d.dailyHour)*time.Hour + time.Duration(d.dailyMinute)*time.Minute)
}

// calculateNextRun calculates the next scheduled digest time
func (d *Daemon) calculateNextRun(now time.Time) time.Time {
	today := d.scheduledAt(now)

	// If target time already passed today, schedule for tomorrow
	if !now.Before(today) {
		return today.AddDate(0, 0, 1)
	}

	return today
}

// RunDigest computes and posts today's digest. Concurrent calls and a
// second call on the same day are skipped.
func (d *Daemon) RunDigest() (birthdays.Digest, error) {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		d.logger.Warn("Digest already running, skipping concurrent execution")
		return nil, fmt.Errorf("digest already in progress")
	}

	now := d.clock()
	todayStr := dateutil.FormatDate(now)
	if d.lastRunDate == todayStr {
		digest := d.lastDigest
		d.mu.Unlock()
		d.logger.Info("Digest already posted today, skipping",
			zap.String("last_run_date", todayStr))
		return digest, nil
	}
	d.running = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.running = false
		d.mu.Unlock()
	}()

	digest := d.scheduler.Run(d.dir, dateutil.Truncate(now))

	d.logger.Info("Birthday digest",
		zap.String("date", todayStr),
		zap.Int("days", len(digest)),
		zap.String("digest", digest.String()))

	if d.trayApp != nil {
		d.trayApp.ShowNotification("Birthdays this week", digestMessage(digest))
	}

	d.mu.Lock()
	d.lastRunDate = todayStr
	d.lastDigest = digest
	d.mu.Unlock()

	return digest, nil
}

// LastDigest returns the most recently posted digest and its date
func (d *Daemon) LastDigest() (birthdays.Digest, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastDigest, d.lastRunDate
}

func digestMessage(digest birthdays.Digest) string {
	if len(digest) == 0 {
		return "No birthdays in the coming week"
	}
	return digest.String()
}
