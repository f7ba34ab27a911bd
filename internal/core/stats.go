// Workout stat values, defensive parsing and label formatting
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// WorkoutStats holds the values shown on the story overlay. Heart rate and
// temperature are optional; a nil pointer means the row is not rendered at
// all. Pace is always derived from elapsed time and distance, never stored.
type WorkoutStats struct {
	Hours   int
	Minutes int
	Seconds int

	// DistanceKm is the covered distance in kilometres.
	DistanceKm float64

	HeartRate   *int
	Temperature *float64

	// ShowIcons prefixes every stat label with its icon glyph. One global
	// switch, no per-label override.
	ShowIcons bool

	// Filter selects the photo filter by id.
	Filter string

	// Date is the story date shown in the frame's top margin. It is set
	// when the form is read so rendering stays a pure function of its
	// inputs.
	Date time.Time
}

// StatsForm carries the raw strings coming from the form layer. Nothing in
// it is trusted: empty or non-numeric fields degrade to zero/absent.
type StatsForm struct {
	Hours       string
	Minutes     string
	Seconds     string
	Distance    string
	HeartRate   string
	Temperature string
	ShowIcons   bool
	Filter      string
}

// ParseStats converts raw form fields into WorkoutStats. It never fails;
// every unparseable field falls back to zero or absent.
func ParseStats(form StatsForm, date time.Time) WorkoutStats {
	stats := WorkoutStats{
		Hours:      parseInt(form.Hours),
		Minutes:    min(parseInt(form.Minutes), 59),
		Seconds:    min(parseInt(form.Seconds), 59),
		DistanceKm: parseFloat(form.Distance),
		ShowIcons:  form.ShowIcons,
		Filter:     form.Filter,
		Date:       date,
	}

	if hr := parseInt(form.HeartRate); hr > 0 {
		stats.HeartRate = &hr
	}
	if strings.TrimSpace(form.Temperature) != "" {
		if temp, err := strconv.ParseFloat(strings.TrimSpace(form.Temperature), 64); err == nil {
			stats.Temperature = &temp
		}
	}

	return stats
}

// ElapsedSeconds returns the total elapsed time in seconds.
func (s WorkoutStats) ElapsedSeconds() int {
	return s.Hours*3600 + s.Minutes*60 + s.Seconds
}

// FormatElapsed renders the elapsed time as MM:SS, prefixed with a
// zero-padded HH: only when hours are non-zero.
func (s WorkoutStats) FormatElapsed() string {
	if s.Hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", s.Hours, s.Minutes, s.Seconds)
	}
	return fmt.Sprintf("%02d:%02d", s.Minutes, s.Seconds)
}

// FormatDistance renders the distance as a kilometre label.
func (s WorkoutStats) FormatDistance() string {
	return fmt.Sprintf("%.2f km", s.DistanceKm)
}

// FormatPace derives and renders the pace as M'SS" per kilometre.
// Distance at or below zero yields -'--"; a pace of 100 minutes or more per
// kilometre is treated as degenerate and yields --'--".
func (s WorkoutStats) FormatPace() string {
	if s.DistanceKm <= 0 {
		return `-'--"`
	}

	paceSeconds := int(float64(s.ElapsedSeconds()) / s.DistanceKm)
	minutes := paceSeconds / 60
	seconds := paceSeconds % 60

	if minutes >= 100 {
		return `--'--"`
	}
	return fmt.Sprintf(`%d'%02d"`, minutes, seconds)
}

// FormatDate renders the story date as a short month/day label.
func (s WorkoutStats) FormatDate() string {
	return s.Date.Format("Jan 2")
}

// FormatHeartRate renders the heart rate row, or "" when absent.
func (s WorkoutStats) FormatHeartRate() string {
	if s.HeartRate == nil {
		return ""
	}
	return fmt.Sprintf("%d bpm", *s.HeartRate)
}

// FormatTemperature renders the temperature row, or "" when absent.
func (s WorkoutStats) FormatTemperature() string {
	if s.Temperature == nil {
		return ""
	}
	return fmt.Sprintf("%.0f°C", *s.Temperature)
}

func parseInt(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseFloat(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
