package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pb-tools/partner-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func mustRange(t *testing.T, arg string) domain.DateRange {
	t.Helper()
	rng, err := domain.ParseRange(arg, testNow)
	require.NoError(t, err)
	return rng
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "report_2025-03-14.html", Filename(mustRange(t, "yesterday")))
	assert.Equal(t, "report_2025-01-31.html", Filename(mustRange(t, "2025-01-31")))
	assert.Equal(t, "report_2025-03-09_to_2025-03-15_last7.html", Filename(mustRange(t, "last7")))
	assert.Equal(t, "report_2025-03-02_to_2025-03-15_last14.html", Filename(mustRange(t, "last14")))
}

func TestHTMLReporter_Render(t *testing.T) {
	dir := t.TempDir()
	reporter := NewHTMLReporter(dir)

	agg := domain.BrandReport{
		"acme":   {Orders: 2, Sales: 15.5, Commission: 1.55},
		"Globex": {Orders: 1, Sales: 20, Commission: 2},
	}

	path, err := reporter.Render("Transaction Report", mustRange(t, "yesterday"), agg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_2025-03-14.html"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "Transaction Report")
	assert.Contains(t, html, "2025-03-14 · Yesterday")
	assert.Contains(t, html, ">3</div>") // total orders tile
	assert.Contains(t, html, "35.50")
	assert.Contains(t, html, "3.55")
	// case-insensitive brand ordering: acme before Globex
	assert.Less(t, strings.Index(html, "acme"), strings.Index(html, "Globex"))
}

func TestHTMLReporter_Render_EmptyAggregate(t *testing.T) {
	dir := t.TempDir()
	reporter := NewHTMLReporter(dir)

	path, err := reporter.Render("Transaction Report", mustRange(t, "2025-01-31"), domain.BrandReport{})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, ">0</div>")
	assert.Contains(t, html, "0.00")
	assert.NotContains(t, html, `<td class="brand">`)
}

func TestHTMLReporter_Render_EscapesBrandNames(t *testing.T) {
	dir := t.TempDir()
	reporter := NewHTMLReporter(dir)

	agg := domain.BrandReport{
		`<script>alert("x")</script>`: {Orders: 1, Sales: 1, Commission: 0.1},
	}

	path, err := reporter.Render("Transaction Report", mustRange(t, "2025-01-31"), agg)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
}
