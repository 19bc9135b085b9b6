package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"phrase-views/internal/phrasestats/core/domain"
	"phrase-views/internal/phrasestats/core/ports"

	"github.com/lib/pq"
)

var ErrInvalidTable = errors.New("invalid events table name")

type RowScanner interface {
	Next() bool
	StructScan(dest any) error
	Err() error
	Close() error
}

type DB interface {
	QueryxContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// hourlyViewsRow is one phrase's series as the engine returns it: two
// parallel arrays ordered by hour.
type hourlyViewsRow struct {
	Phrase string        `db:"phrase"`
	Hours  pq.Int64Array `db:"hours"`
	Views  pq.Int64Array `db:"views"`
}

type PhraseViewsRepository struct {
	db    DB
	query string
}

var _ ports.PhraseViewsReaderPort = (*PhraseViewsRepository)(nil)

// NewPhraseViewsRepository reads from table, which may be schema-qualified
// ("analytics.events").
func NewPhraseViewsRepository(db DB, table string) (*PhraseViewsRepository, error) {
	quoted, err := quoteTable(table)
	if err != nil {
		return nil, err
	}
	return &PhraseViewsRepository{
		db:    db,
		query: fmt.Sprintf(hourlyViewsSQL, quoted),
	}, nil
}

// event_time is TIMESTAMP (without time zone) and holds wall-clock times, so
// the date bounds and EXTRACT(HOUR) read it as stored. A timestamptz column
// would shift both with the session TimeZone. The day arrives as a date
// literal for the same reason. HAVING drops hours whose views sum to zero,
// and a phrase left with no hours never reaches the outer GROUP BY.
// COLLATE "C" keeps phrase order byte-wise regardless of the database locale.
const hourlyViewsSQL = `
SELECT
    phrase,
    array_agg(hour ORDER BY hour)  AS hours,
    array_agg(views ORDER BY hour) AS views
FROM (
    SELECT
        phrase,
        EXTRACT(HOUR FROM event_time)::int AS hour,
        SUM(views)::bigint                 AS views
    FROM %s
    WHERE campaign_id = $1
      AND event_time >= $2::date
      AND event_time <  $2::date + 1
    GROUP BY phrase, hour
    HAVING SUM(views) <> 0
) AS hourly
GROUP BY phrase
ORDER BY phrase COLLATE "C"`

func (r *PhraseViewsRepository) QueryHourlyViews(ctx context.Context, f ports.PhraseViewsFilter) ([]domain.PhraseViews, error) {
	rows, err := r.db.QueryxContext(ctx, r.query, f.CampaignID, f.Day.String())
	if err != nil {
		return nil, fmt.Errorf("query hourly phrase views: %w", err)
	}
	defer rows.Close()

	result := []domain.PhraseViews{}

	for rows.Next() {
		var row hourlyViewsRow
		if err := rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("scan hourly phrase views: %w", err)
		}
		if len(row.Hours) != len(row.Views) {
			return nil, fmt.Errorf("scan hourly phrase views: phrase %q has %d hours but %d view sums",
				row.Phrase, len(row.Hours), len(row.Views))
		}

		series := make([]domain.HourlyViews, len(row.Hours))
		for i := range row.Hours {
			series[i] = domain.HourlyViews{Hour: int(row.Hours[i]), Views: row.Views[i]}
		}

		result = append(result, domain.PhraseViews{
			Phrase:      row.Phrase,
			ViewsByHour: series,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hourly phrase views: %w", err)
	}

	return result, nil
}

func quoteTable(name string) (string, error) {
	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTable, name)
	}
	for i, p := range parts {
		if strings.TrimSpace(p) == "" {
			return "", fmt.Errorf("%w: %q", ErrInvalidTable, name)
		}
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, "."), nil
}
