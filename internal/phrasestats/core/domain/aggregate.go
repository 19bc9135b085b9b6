package domain

import (
	"cmp"
	"slices"
)

// AggregateHourlyViews sums the views of events that belong to campaignID on
// day, bucketed by phrase and hour of day. Phrases come back in ascending
// order and each phrase's hours ascending. Hours whose views sum to zero are
// omitted, and so are phrases left without any hour.
func AggregateHourlyViews(events []Event, campaignID int64, day Day) []PhraseViews {
	byPhrase := make(map[string]map[int]int64)

	for _, e := range events {
		if e.CampaignID != campaignID || !day.Contains(e.EventTime) {
			continue
		}
		hours, ok := byPhrase[e.Phrase]
		if !ok {
			hours = make(map[int]int64)
			byPhrase[e.Phrase] = hours
		}
		hours[e.EventTime.Hour()] += e.Views
	}

	result := make([]PhraseViews, 0, len(byPhrase))
	for phrase, hours := range byPhrase {
		series := make([]HourlyViews, 0, len(hours))
		for h, v := range hours {
			if v == 0 {
				continue
			}
			series = append(series, HourlyViews{Hour: h, Views: v})
		}
		if len(series) == 0 {
			continue
		}
		slices.SortFunc(series, func(a, b HourlyViews) int {
			return cmp.Compare(a.Hour, b.Hour)
		})
		result = append(result, PhraseViews{Phrase: phrase, ViewsByHour: series})
	}

	slices.SortFunc(result, func(a, b PhraseViews) int {
		return cmp.Compare(a.Phrase, b.Phrase)
	})

	return result
}
