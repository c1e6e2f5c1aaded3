package catalog

// Product is the catalog item shape served to the storefront and handed to
// the cart on add. All fields except ID are optional; a product without an
// ID is unusable.
type Product struct {
	ID          string  `json:"id" dynamodbav:"id"` // PK
	Name        string  `json:"name" dynamodbav:"name,omitempty"`
	Subtitle    string  `json:"subtitle" dynamodbav:"subtitle,omitempty"`
	Description string  `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Category    string  `json:"category,omitempty" dynamodbav:"category,omitempty"`
	Price       float64 `json:"price" dynamodbav:"price"`
	ComparedAt  float64 `json:"comparedAt,omitempty" dynamodbav:"compared_at,omitempty"` // strike-through price; shown only when > Price
	Currency    string  `json:"currency" dynamodbav:"currency,omitempty"`
	Rating      float64 `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	Badge       string  `json:"badge,omitempty" dynamodbav:"badge,omitempty"`
	IsFeatured  bool    `json:"isFeatured,omitempty" dynamodbav:"is_featured,omitempty"`
	ImageURL    string  `json:"imageUrl" dynamodbav:"image_url,omitempty"`
}

// DefaultCurrency is assumed whenever a product omits its currency code.
const DefaultCurrency = "USD"

// Normalize returns a copy of p with defaults applied: empty currency becomes
// DefaultCurrency, negative prices are floored at 0 and ratings are clamped
// to the 0..5 scale.
func Normalize(p Product) Product {
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Price < 0 {
		p.Price = 0
	}
	if p.ComparedAt < 0 {
		p.ComparedAt = 0
	}
	if p.Rating < 0 {
		p.Rating = 0
	}
	if p.Rating > 5 {
		p.Rating = 5
	}
	return p
}
