package export

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pb-tools/partner-atlas/pkg/models/domain"
)

// Reporter renders a brand report as a console table.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(title string, rng domain.DateRange, agg domain.BrandReport) error {
	fmt.Fprintf(c.writer, "%s (%s)\n", title, rng.Label())

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(c.writer)
	t.AppendHeader(table.Row{"Brand", "Orders", "Sales", "Commission"})

	for _, brand := range agg.SortedBrands() {
		stats := agg[brand]
		t.AppendRow(table.Row{
			brand,
			stats.Orders,
			fmt.Sprintf("%.2f", stats.Sales),
			fmt.Sprintf("%.2f", stats.Commission),
		})
	}

	totals := agg.Totals()
	t.AppendFooter(table.Row{
		"Total",
		totals.Orders,
		fmt.Sprintf("%.2f", totals.Sales),
		fmt.Sprintf("%.2f", totals.Commission),
	})

	t.Render()
	return nil
}
