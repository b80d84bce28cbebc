package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pb-tools/partner-atlas/pkg/services/config"
	"github.com/pb-tools/partner-atlas/pkg/services/partnerboost"
	"github.com/spf13/cobra"
)

// NewBrandsCmd dumps one raw page of the brand monetization API, useful for
// inspecting which Amazon brands are partnered.
func NewBrandsCmd(out io.Writer) *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "Dump one page of the brand monetization API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadAPI()
			if err != nil {
				return err
			}

			client := partnerboost.NewClient(partnerboost.Options{
				BaseURL: cfg.BaseURL,
				Token:   cfg.Token,
				Timeout: cfg.HTTPTimeout,
			})

			body, err := client.Brands(cmd.Context(), page, limit)
			if err != nil {
				return err
			}

			var pretty bytes.Buffer
			if err := json.Indent(&pretty, body, "", "  "); err != nil {
				return fmt.Errorf("format response: %w", err)
			}
			fmt.Fprintln(out, pretty.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page to fetch")
	cmd.Flags().IntVar(&limit, "limit", 10, "Brands per page")
	return cmd
}
