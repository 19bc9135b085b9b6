package ports

import (
	"context"

	"phrase-views/internal/phrasestats/core/domain"
)

type PhraseViewsFilter struct {
	CampaignID int64
	Day        domain.Day
}

type PhraseViewsReaderPort interface {
	// QueryHourlyViews returns phrases ascending, each with its hours
	// ascending. No matching events -> empty slice, nil error.
	QueryHourlyViews(ctx context.Context, f PhraseViewsFilter) ([]domain.PhraseViews, error)
}
