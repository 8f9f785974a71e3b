package models

// Product is one entry of the external product catalog.
type Product struct {
	ID       int     `json:"id" yaml:"id"`
	Title    string  `json:"title" yaml:"title"`
	Category string  `json:"category" yaml:"category"`
	Brand    string  `json:"brand" yaml:"brand"`
	Price    float64 `json:"price" yaml:"price"`
	Rating   float64 `json:"rating" yaml:"rating"`
}

// ProductInfo is the subset of a Product used for enrichment.
type ProductInfo struct {
	Title    string
	Category string
	Brand    string
	Rating   float64
}

// ProductMapping indexes catalog products by numeric id.
type ProductMapping map[int]ProductInfo
