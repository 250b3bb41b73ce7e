package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestTruncate(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	input := time.Date(2024, 10, 25, 23, 59, 0, 0, loc)

	result := Truncate(input)

	if !result.Equal(Date(2024, time.October, 25)) {
		t.Errorf("Truncate(%v) = %v, want 2024-10-25 UTC", input, result)
	}
	if result.Location() != time.UTC {
		t.Errorf("Truncate(%v) location = %v, want UTC", input, result.Location())
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{"same day", Date(2024, 10, 25), Date(2024, 10, 25), 0},
		{"two days ahead", Date(2024, 10, 25), Date(2024, 10, 27), 2},
		{"in the past", Date(2024, 10, 25), Date(2024, 10, 20), -5},
		{"across new year", Date(2024, 12, 29), Date(2025, 1, 2), 4},
		{"across leap day", Date(2024, 2, 28), Date(2024, 3, 1), 2},
		{
			"time of day ignored",
			time.Date(2024, 10, 25, 23, 0, 0, 0, time.UTC),
			time.Date(2024, 10, 26, 1, 0, 0, 0, time.UTC),
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d",
					tt.a.Format("2006-01-02"), tt.b.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	got := AddDays(time.Date(2024, 12, 30, 15, 0, 0, 0, time.UTC), 3)
	if !got.Equal(Date(2025, 1, 2)) {
		t.Errorf("AddDays() = %v, want 2025-01-02", got)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is weekend", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), true},
		{"Monday is not weekend", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), false},
		{"Friday is not weekend", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},
		{2024, true},
		{1900, false},
		{2023, false},
		{2100, false},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"valid date", "15.01.2025", Date(2025, 1, 15), false},
		{"leap day in leap year", "29.02.2000", Date(2000, 2, 29), false},
		{"leap day in common year", "29.02.2023", time.Time{}, true},
		{"day out of range", "30.02.2020", time.Time{}, true},
		{"month out of range", "01.13.2020", time.Time{}, true},
		{"single digit day", "1.02.2020", time.Time{}, true},
		{"ISO layout", "2025-01-15", time.Time{}, true},
		{"two digit year", "15.01.25", time.Time{}, true},
		{"trailing text", "15.01.2025x", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	for _, s := range []string{"01.01.1970", "29.02.2000", "31.12.1999", "25.10.2024"} {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q) error = %v", s, err)
		}
		if got := FormatDate(d); got != s {
			t.Errorf("FormatDate(ParseDate(%q)) = %q", s, got)
		}
	}
}
