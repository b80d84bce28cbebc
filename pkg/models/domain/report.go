package domain

import (
	"sort"
	"strings"
)

// UnknownBrand is the sentinel used when a row cannot be resolved to a brand.
const UnknownBrand = "Unknown"

// BrandStats holds the running totals for one brand.
type BrandStats struct {
	Orders     int
	Sales      float64
	Commission float64
}

// BrandReport maps a resolved brand name to its totals. At most one entry
// exists per distinct brand-name string; only sorted views matter for output.
type BrandReport map[string]BrandStats

// Totals sums every brand's orders, sales and commission.
func (r BrandReport) Totals() BrandStats {
	var total BrandStats
	for _, s := range r {
		total.Orders += s.Orders
		total.Sales += s.Sales
		total.Commission += s.Commission
	}
	return total
}

// SortedBrands returns the brand names in case-sensitive order, the default
// ordering for console output.
func (r BrandReport) SortedBrands() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortedBrandsFold returns the brand names in case-insensitive order, used
// for the HTML rendering.
func (r BrandReport) SortedBrandsFold() []string {
	names := r.SortedBrands()
	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}
