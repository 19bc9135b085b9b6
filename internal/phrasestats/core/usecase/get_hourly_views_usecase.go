package usecase

import (
	"context"
	"log/slog"
	"time"

	"phrase-views/internal/phrasestats/core/domain"
	"phrase-views/internal/phrasestats/core/ports"
)

type GetHourlyViewsInput struct {
	CampaignID int64
	Day        *domain.Day // nil -> today in the use case's location
}

type GetHourlyViewsUseCase struct {
	reader ports.PhraseViewsReaderPort
	logger *slog.Logger
	loc    *time.Location
	now    func() time.Time
}

type Option func(*GetHourlyViewsUseCase)

// WithLocation sets the time zone that decides which date is "today".
func WithLocation(loc *time.Location) Option {
	return func(uc *GetHourlyViewsUseCase) {
		if loc != nil {
			uc.loc = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(uc *GetHourlyViewsUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(uc *GetHourlyViewsUseCase) {
		if logger != nil {
			uc.logger = logger
		}
	}
}

func NewGetHourlyViewsUseCase(reader ports.PhraseViewsReaderPort, opts ...Option) *GetHourlyViewsUseCase {
	uc := &GetHourlyViewsUseCase{
		reader: reader,
		logger: slog.Default(),
		loc:    time.UTC,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute resolves the report day and asks the reader for the hourly series.
func (uc *GetHourlyViewsUseCase) Execute(ctx context.Context, in GetHourlyViewsInput) (*domain.PhraseViewsReport, error) {
	day := domain.DayOf(uc.now().In(uc.loc))
	if in.Day != nil {
		day = *in.Day
	}

	filter := ports.PhraseViewsFilter{
		CampaignID: in.CampaignID,
		Day:        day,
	}

	phrases, err := uc.reader.QueryHourlyViews(ctx, filter)
	if err != nil {
		return nil, err
	}
	if phrases == nil {
		phrases = []domain.PhraseViews{}
	}

	report := &domain.PhraseViewsReport{
		CampaignID: in.CampaignID,
		Day:        day,
		Phrases:    phrases,
	}

	uc.logger.InfoContext(ctx, "hourly phrase views computed",
		slog.Int64("campaign_id", report.CampaignID),
		slog.String("day", report.Day.String()),
		slog.Int("phrases", len(report.Phrases)),
		slog.Int64("total_views", report.TotalViews()),
	)

	return report, nil
}
