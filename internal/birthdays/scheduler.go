package birthdays

import (
	"strings"
	"time"

	"github.com/username/address-book/internal/contacts"
	"github.com/username/address-book/pkg/dateutil"
	"go.uber.org/zap"
)

// Window is the look-ahead span in days. Only celebrations strictly after
// today and strictly before today+Window are reported.
const Window = 7

// DayGroup lists the contacts congratulated on one weekday
type DayGroup struct {
	Weekday time.Weekday
	Names   []string
}

func (g DayGroup) String() string {
	return g.Weekday.String() + ": " + strings.Join(g.Names, ", ")
}

// Digest is the upcoming-birthday view, one group per weekday in the order
// the weekdays occur starting from today.
type Digest []DayGroup

// String renders one "<Weekday>: <names>" line per group; an empty digest is ""
func (d Digest) String() string {
	lines := make([]string, 0, len(d))
	for _, g := range d {
		lines = append(lines, g.String())
	}
	return strings.Join(lines, "\n")
}

// Scheduler computes the weekly birthday digest
type Scheduler struct {
	logger     *zap.Logger
	wraparound bool
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithYearWraparound makes a birthday that already passed this year count
// on its date next year, so late-December digests can list early January.
// Off by default.
func WithYearWraparound(enabled bool) Option {
	return func(s *Scheduler) { s.wraparound = enabled }
}

// NewScheduler creates a new Scheduler
func NewScheduler(logger *zap.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scheduler{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run computes the digest for every record of dir
func (s *Scheduler) Run(dir *contacts.Directory, today time.Time) Digest {
	return s.Upcoming(dir.Records(), today)
}

// Upcoming computes the digest for records as seen from today.
// Records without a birthday are skipped.
func (s *Scheduler) Upcoming(records []*contacts.Record, today time.Time) Digest {
	today = dateutil.Truncate(today)

	groups := make(map[time.Weekday][]string)
	for _, r := range records {
		bday := r.Birthday()
		if bday.IsZero() {
			continue
		}

		celebration := s.celebrationDate(bday.Date(), today)
		delta := dateutil.DaysBetween(today, celebration)
		if delta <= 0 || delta >= Window {
			continue
		}

		day := CongratulationDay(celebration)
		groups[day] = append(groups[day], r.Name().String())

		s.logger.Debug("Upcoming birthday",
			zap.String("name", r.Name().String()),
			zap.String("celebration", dateutil.FormatDate(celebration)),
			zap.Int("delta_days", delta),
			zap.String("congratulate_on", day.String()))
	}

	digest := Digest{}
	for i := 0; i < Window; i++ {
		day := dateutil.AddDays(today, i).Weekday()
		if names, ok := groups[day]; ok {
			digest = append(digest, DayGroup{Weekday: day, Names: names})
			delete(groups, day)
		}
	}
	return digest
}

// CelebrationDate projects dob onto today's year
func CelebrationDate(dob, today time.Time) time.Time {
	return projectOnto(dob, today.Year())
}

func (s *Scheduler) celebrationDate(dob, today time.Time) time.Time {
	celebration := CelebrationDate(dob, today)
	if s.wraparound && dateutil.DaysBetween(today, celebration) < 0 {
		celebration = projectOnto(dob, today.Year()+1)
	}
	return celebration
}

// projectOnto moves dob into year. February 29 becomes February 28 in
// common years.
func projectOnto(dob time.Time, year int) time.Time {
	day := dob.Day()
	if dob.Month() == time.February && day == 29 && !dateutil.IsLeapYear(year) {
		day = 28
	}
	return dateutil.Date(year, dob.Month(), day)
}

// CongratulationDay is the weekday a celebration is filed under:
// Saturday and Sunday move to Monday.
func CongratulationDay(celebration time.Time) time.Weekday {
	if dateutil.IsWeekend(celebration) {
		return time.Monday
	}
	return celebration.Weekday()
}
