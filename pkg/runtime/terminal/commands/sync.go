package commands

import (
	"github.com/pb-tools/partner-atlas/pkg/services/config"
	"github.com/pb-tools/partner-atlas/pkg/services/partnerboost"
	"github.com/pb-tools/partner-atlas/pkg/services/sync"
	"github.com/pb-tools/partner-atlas/pkg/store/sqlite"
	"github.com/pb-tools/partner-atlas/pkg/store/sqlite/product"
	"github.com/spf13/cobra"
)

// NewSyncCmd refreshes the local product lookup table from the FBA product
// listing.
func NewSyncCmd() *cobra.Command {
	var pageSize int

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the product→brand lookup table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadAPI()
			if err != nil {
				return err
			}
			if pageSize == 0 {
				pageSize = cfg.ProductPageSize
			}

			db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DbPath})
			if err != nil {
				return err
			}
			defer db.Close()

			productStore, err := product.NewStore(db)
			if err != nil {
				return err
			}

			client := partnerboost.NewClient(partnerboost.Options{
				BaseURL: cfg.BaseURL,
				Token:   cfg.Token,
				Timeout: cfg.HTTPTimeout,
			})

			_, err = sync.NewSyncer(client, db, productStore).Run(cmd.Context(), pageSize)
			return err
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Products per page (default from configuration)")
	return cmd
}
