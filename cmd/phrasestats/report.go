package main

import (
	"errors"
	"fmt"
	"log/slog"

	"phrase-views/internal/phrasestats/core/domain"
	"phrase-views/internal/phrasestats/core/usecase"

	"github.com/spf13/cobra"
)

var ErrInvalidFormat = errors.New("invalid output format")

func newReportCmd(a *app) *cobra.Command {
	var (
		campaignID int64
		date       string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print per-phrase view counts by hour of day",
		Long: `Sums the views of one campaign's events per phrase and hour of day.
Without --date the report covers today in REPORT_TIMEZONE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			render, ok := renderers[format]
			if !ok {
				return fmt.Errorf("%w: %q (want json or text)", ErrInvalidFormat, format)
			}

			in := usecase.GetHourlyViewsInput{CampaignID: campaignID}
			if date != "" {
				day, err := domain.ParseDay(date)
				if err != nil {
					return err
				}
				in.Day = &day
			}

			ctx := cmd.Context()

			reader, closeReader, err := a.openReader(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeReader(); err != nil {
					a.logger.Warn("failed to close events store", slog.Any("error", err))
				}
			}()

			uc := usecase.NewGetHourlyViewsUseCase(reader,
				usecase.WithLocation(a.cfg.Report.Location),
				usecase.WithClock(a.now),
				usecase.WithLogger(a.logger),
			)

			report, err := uc.Execute(ctx, in)
			if err != nil {
				return fmt.Errorf("campaign %d: %w", campaignID, err)
			}

			return render(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().Int64Var(&campaignID, "campaign-id", 0, "campaign to report on")
	cmd.Flags().StringVar(&date, "date", "", "report day as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json | text")
	_ = cmd.MarkFlagRequired("campaign-id")

	return cmd
}
