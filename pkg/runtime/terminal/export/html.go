package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/pb-tools/partner-atlas/pkg/models/domain"
)

// HTMLReporter writes self-contained HTML reports (inline styling, no
// external resources) into a target directory, typically served as static
// files afterwards.
type HTMLReporter struct {
	dir string
}

func NewHTMLReporter(dir string) *HTMLReporter {
	return &HTMLReporter{dir: dir}
}

type htmlRow struct {
	Brand      string
	Orders     int
	Sales      string
	Commission string
}

type htmlReport struct {
	Title           string
	RangeLabel      string
	TotalOrders     int
	TotalSales      string
	TotalCommission string
	Rows            []htmlRow
}

// Filename derives the deterministic artifact name for a range: the end
// date alone for a single day, begin/end plus the range kind otherwise.
func Filename(rng domain.DateRange) string {
	if rng.SingleDay() {
		return fmt.Sprintf("report_%s.html", rng.EndDate())
	}
	return fmt.Sprintf("report_%s_to_%s_%s.html", rng.BeginDate(), rng.EndDate(), rng.Kind)
}

// Render writes the report and returns the path of the written file.
// Brand names pass through html/template and are therefore escaped.
func (r *HTMLReporter) Render(title string, rng domain.DateRange, agg domain.BrandReport) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	totals := agg.Totals()
	data := htmlReport{
		Title:           title,
		RangeLabel:      rng.Label(),
		TotalOrders:     totals.Orders,
		TotalSales:      fmt.Sprintf("%.2f", totals.Sales),
		TotalCommission: fmt.Sprintf("%.2f", totals.Commission),
	}
	for _, brand := range agg.SortedBrandsFold() {
		stats := agg[brand]
		data.Rows = append(data.Rows, htmlRow{
			Brand:      brand,
			Orders:     stats.Orders,
			Sales:      fmt.Sprintf("%.2f", stats.Sales),
			Commission: fmt.Sprintf("%.2f", stats.Commission),
		})
	}

	path := filepath.Join(r.dir, Filename(rng))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return path, nil
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}} {{.RangeLabel}}</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>
    :root {
      --bg: #f5f5f7;
      --card-bg: #ffffff;
      --border: #e5e5ea;
      --text: #1d1d1f;
      --muted: #6e6e73;
      --accent: #0071e3;
      --accent-soft: rgba(0,113,227,0.08);
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px 16px;
      font-family: -apple-system, BlinkMacSystemFont, system-ui, sans-serif;
      background: var(--bg);
      color: var(--text);
    }
    .container { max-width: 980px; margin: 0 auto; }
    .card {
      background: var(--card-bg);
      border-radius: 28px;
      border: 1px solid var(--border);
      box-shadow: 0 20px 40px rgba(0,0,0,0.06);
      padding: 24px 28px 28px;
    }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: baseline;
      gap: 12px;
      margin-bottom: 18px;
    }
    .title { font-size: 22px; font-weight: 600; }
    .date-pill {
      font-size: 13px;
      color: var(--accent);
      background: var(--accent-soft);
      border-radius: 999px;
      padding: 4px 12px;
    }
    .summary { display: flex; flex-wrap: wrap; gap: 12px; margin-bottom: 18px; }
    .summary-item {
      flex: 1 1 160px;
      min-width: 160px;
      padding: 10px 14px;
      border-radius: 16px;
      background: #f9fafb;
      border: 1px solid #ededf0;
    }
    .summary-label {
      font-size: 11px;
      text-transform: uppercase;
      letter-spacing: 0.08em;
      color: var(--muted);
      margin-bottom: 4px;
    }
    .summary-value { font-size: 20px; font-weight: 600; }
    .summary-sub { font-size: 11px; color: var(--muted); margin-top: 2px; }
    .table-wrapper {
      margin-top: 8px;
      border-radius: 18px;
      border: 1px solid var(--border);
      overflow: hidden;
    }
    table { border-collapse: collapse; width: 100%; font-size: 13px; }
    thead { background: #f5f5f7; }
    th, td { padding: 9px 12px; border-bottom: 1px solid #f2f2f7; white-space: nowrap; }
    th { text-align: left; font-weight: 500; color: var(--muted); font-size: 12px; }
    tbody tr:hover { background: #f9fafb; }
    td.brand { max-width: 260px; overflow: hidden; text-overflow: ellipsis; }
    td.num { text-align: right; font-variant-numeric: tabular-nums; }
    .footer-note { margin-top: 12px; font-size: 11px; color: var(--muted); text-align: right; }
  </style>
</head>
<body>
  <div class="container">
    <div class="card">
      <div class="header">
        <div class="title">{{.Title}}</div>
        <div class="date-pill">{{.RangeLabel}}</div>
      </div>
      <div class="summary">
        <div class="summary-item">
          <div class="summary-label">Total Orders</div>
          <div class="summary-value">{{.TotalOrders}}</div>
          <div class="summary-sub">Across all brands</div>
        </div>
        <div class="summary-item">
          <div class="summary-label">Total Sales</div>
          <div class="summary-value">{{.TotalSales}}</div>
          <div class="summary-sub">Sum of sale amounts</div>
        </div>
        <div class="summary-item">
          <div class="summary-label">Total Commission</div>
          <div class="summary-value">{{.TotalCommission}}</div>
          <div class="summary-sub">Sum of commission amounts</div>
        </div>
      </div>
      <div class="table-wrapper">
        <table>
          <thead>
            <tr>
              <th>Brand</th>
              <th>Orders</th>
              <th>Sales</th>
              <th>Commission</th>
            </tr>
          </thead>
          <tbody>
            {{range .Rows}}<tr>
              <td class="brand">{{.Brand}}</td>
              <td class="num">{{.Orders}}</td>
              <td class="num">{{.Sales}}</td>
              <td class="num">{{.Commission}}</td>
            </tr>
            {{end}}
          </tbody>
        </table>
      </div>
      <div class="footer-note">Generated by partner-atlas from the PartnerBoost API.</div>
    </div>
  </div>
</body>
</html>
`))
