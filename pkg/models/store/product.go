package store

// Product is one row of the local product lookup table, keyed by ASIN.
type Product struct {
	ASIN        string
	BrandID     string
	BrandName   string
	Title       string
	CountryCode string
}

type ProductStats struct {
	TotalProducts      int64
	DistinctBrandIDs   int64
	DistinctBrandNames int64
}
