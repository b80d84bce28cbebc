package adapters

import (
	"github.com/pb-tools/partner-atlas/pkg/models/api"
	"github.com/pb-tools/partner-atlas/pkg/models/store"
)

// MapAPIProductToStoreProduct flattens a product listing record into the
// lookup table row, resolving the API's brand_name/brand and title/name
// field aliases.
func MapAPIProductToStoreProduct(record api.ProductRecord) store.Product {
	brandName := record.BrandName
	if brandName == "" {
		brandName = record.Brand
	}
	title := record.Title
	if title == "" {
		title = record.Name
	}
	return store.Product{
		ASIN:        record.ASIN,
		BrandID:     string(record.BrandID),
		BrandName:   brandName,
		Title:       title,
		CountryCode: record.CountryCode,
	}
}
