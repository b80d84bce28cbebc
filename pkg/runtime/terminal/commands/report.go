package commands

import (
	"context"
	"time"

	"github.com/pb-tools/partner-atlas/pkg/models/api"
	"github.com/pb-tools/partner-atlas/pkg/models/domain"
	"github.com/pb-tools/partner-atlas/pkg/runtime/terminal/export"
	"github.com/pb-tools/partner-atlas/pkg/services/config"
	"github.com/pb-tools/partner-atlas/pkg/services/partnerboost"
	"github.com/pb-tools/partner-atlas/pkg/services/report"
	"github.com/pb-tools/partner-atlas/pkg/store/sqlite"
	"github.com/pb-tools/partner-atlas/pkg/store/sqlite/product"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewReportCmd builds the report command tree. Each subcommand accepts at
// most one positional range selector (today, yesterday, last7, last14 or
// YYYY-MM-DD), defaulting to yesterday.
func NewReportCmd(reporter *export.Reporter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate per-brand reports",
	}

	cmd.AddCommand(newTransactionsCmd(reporter))
	cmd.AddCommand(newAmazonCmd(reporter))

	return cmd
}

func parseRangeArg(args []string) (domain.DateRange, error) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	return domain.ParseRange(arg, time.Now())
}

func newTransactionsCmd(reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "transactions [range]",
		Short: "Per-brand transaction report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadAPI()
			if err != nil {
				return err
			}
			rng, err := parseRangeArg(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx)

			client := partnerboost.NewClient(partnerboost.Options{
				BaseURL: cfg.BaseURL,
				Token:   cfg.Token,
				Timeout: cfg.HTTPTimeout,
			})

			rows, err := client.Transactions(ctx, rng, cfg.TransactionLimit)
			if err != nil {
				return err
			}
			logger.Info().Int("rows", len(rows)).Msg("transactions fetched")

			agg := report.AggregateTransactions(rows)
			if err := reporter.Handle("Brand Transaction Report", rng, agg); err != nil {
				return err
			}

			path, err := export.NewHTMLReporter(cfg.ReportsDir).
				Render("PartnerBoost Transaction Report", rng, agg)
			if err != nil {
				return err
			}
			logger.Info().Str("path", path).Msg("html report written")
			return nil
		},
	}
}

func newAmazonCmd(reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "amazon [range]",
		Short: "Per-brand Amazon datafeed report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadAPI()
			if err != nil {
				return err
			}
			rng, err := parseRangeArg(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx)

			client := partnerboost.NewClient(partnerboost.Options{
				BaseURL: cfg.BaseURL,
				Token:   cfg.Token,
				Timeout: cfg.HTTPTimeout,
			})

			rows, err := client.AmazonReport(ctx, rng, cfg.AmazonPageSize)
			if err != nil {
				return err
			}
			logger.Info().Int("rows", len(rows)).Msg("amazon report fetched")

			agg, err := aggregateWithLookup(ctx, cfg, rows)
			if err != nil {
				return err
			}

			if err := reporter.Handle("Brand Amazon Report", rng, agg); err != nil {
				return err
			}

			path, err := export.NewHTMLReporter(cfg.ReportsDir).
				Render("PartnerBoost Amazon Report", rng, agg)
			if err != nil {
				return err
			}
			logger.Info().Str("path", path).Msg("html report written")
			return nil
		},
	}
}

// aggregateWithLookup opens the lookup store for the duration of one
// aggregation pass and closes it again.
func aggregateWithLookup(ctx context.Context, cfg *config.Config, rows []api.AmazonReportRow) (domain.BrandReport, error) {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DbPath})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	productStore, err := product.NewStore(db)
	if err != nil {
		return nil, err
	}
	return report.AggregateDatafeed(ctx, productStore, rows)
}
