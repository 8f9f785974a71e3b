package models

// ProductMatch holds the catalog attributes attached to a matched transaction.
type ProductMatch struct {
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Rating   float64 `json:"rating"`
}

// EnrichedTransaction is a transaction annotated with catalog data.
// A nil Match means the catalog had no entry for the product.
type EnrichedTransaction struct {
	Transaction
	Match *ProductMatch `json:"match,omitempty"`
}

// NewMatched builds an enriched transaction for a catalog hit.
func NewMatched(tx Transaction, info ProductInfo) EnrichedTransaction {
	return EnrichedTransaction{
		Transaction: tx,
		Match: &ProductMatch{
			Category: info.Category,
			Brand:    info.Brand,
			Rating:   info.Rating,
		},
	}
}

// NewUnmatched builds an enriched transaction for a catalog miss.
func NewUnmatched(tx Transaction) EnrichedTransaction {
	return EnrichedTransaction{Transaction: tx}
}

// APIMatch reports whether the catalog matched this transaction.
func (e EnrichedTransaction) APIMatch() bool {
	return e.Match != nil
}

// APICategory returns the catalog category, if matched.
func (e EnrichedTransaction) APICategory() (string, bool) {
	if e.Match == nil {
		return "", false
	}
	return e.Match.Category, true
}

// APIBrand returns the catalog brand, if matched.
func (e EnrichedTransaction) APIBrand() (string, bool) {
	if e.Match == nil {
		return "", false
	}
	return e.Match.Brand, true
}

// APIRating returns the catalog rating, if matched.
func (e EnrichedTransaction) APIRating() (float64, bool) {
	if e.Match == nil {
		return 0, false
	}
	return e.Match.Rating, true
}
