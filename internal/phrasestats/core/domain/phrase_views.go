package domain

import (
	"fmt"
	"time"
)

type Event struct {
	CampaignID int64
	EventTime  time.Time
	Phrase     string
	Views      int64
}

// Day is a calendar date without a location.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

const dayLayout = "2006-01-02"

// DayOf returns the wall-clock date of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Contains reports whether t falls on d in t's own location.
func (d Day) Contains(t time.Time) bool {
	return DayOf(t) == d
}

type HourlyViews struct {
	Hour  int // 0..23
	Views int64
}

type PhraseViews struct {
	Phrase      string
	ViewsByHour []HourlyViews // ascending by Hour
}

func (p PhraseViews) TotalViews() int64 {
	var total int64
	for _, h := range p.ViewsByHour {
		total += h.Views
	}
	return total
}

type PhraseViewsReport struct {
	CampaignID int64
	Day        Day
	Phrases    []PhraseViews // ascending by Phrase
}

func (r *PhraseViewsReport) TotalViews() int64 {
	var total int64
	for _, p := range r.Phrases {
		total += p.TotalViews()
	}
	return total
}
