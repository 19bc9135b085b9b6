package memory

import (
	"context"

	"phrase-views/internal/phrasestats/core/domain"
	"phrase-views/internal/phrasestats/core/ports"
)

// PhraseViewsRepository answers hourly view queries from an in-process
// snapshot of events.
type PhraseViewsRepository struct {
	events []domain.Event
}

func NewPhraseViewsRepository(events []domain.Event) *PhraseViewsRepository {
	cp := make([]domain.Event, len(events))
	copy(cp, events)
	return &PhraseViewsRepository{events: cp}
}

var _ ports.PhraseViewsReaderPort = (*PhraseViewsRepository)(nil)

func (r *PhraseViewsRepository) QueryHourlyViews(ctx context.Context, f ports.PhraseViewsFilter) ([]domain.PhraseViews, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.AggregateHourlyViews(r.events, f.CampaignID, f.Day), nil
}
