package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"phrase-views/internal/phrasestats/core/domain"
)

type ReportResponse struct {
	CampaignID int64                 `json:"campaign_id"`
	Date       string                `json:"date"`
	TotalViews int64                 `json:"total_views"`
	Phrases    []PhraseViewsResponse `json:"phrases"`
}

type PhraseViewsResponse struct {
	Phrase      string     `json:"phrase"`
	ViewsByHour [][2]int64 `json:"views_by_hour"` // [hour, views]
}

type renderFunc func(w io.Writer, r *domain.PhraseViewsReport) error

var renderers = map[string]renderFunc{
	"json": renderJSON,
	"text": renderText,
}

func toResponse(r *domain.PhraseViewsReport) ReportResponse {
	resp := ReportResponse{
		CampaignID: r.CampaignID,
		Date:       r.Day.String(),
		TotalViews: r.TotalViews(),
		Phrases:    make([]PhraseViewsResponse, 0, len(r.Phrases)),
	}

	for _, p := range r.Phrases {
		pairs := make([][2]int64, 0, len(p.ViewsByHour))
		for _, h := range p.ViewsByHour {
			pairs = append(pairs, [2]int64{int64(h.Hour), h.Views})
		}
		resp.Phrases = append(resp.Phrases, PhraseViewsResponse{
			Phrase:      p.Phrase,
			ViewsByHour: pairs,
		})
	}

	return resp
}

func renderJSON(w io.Writer, r *domain.PhraseViewsReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toResponse(r))
}

// renderText prints one line per phrase: "<phrase>\t<hour>:<views> ...".
func renderText(w io.Writer, r *domain.PhraseViewsReport) error {
	for _, p := range r.Phrases {
		pairs := make([]string, 0, len(p.ViewsByHour))
		for _, h := range p.ViewsByHour {
			pairs = append(pairs, fmt.Sprintf("%d:%d", h.Hour, h.Views))
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", p.Phrase, strings.Join(pairs, " ")); err != nil {
			return err
		}
	}
	return nil
}
