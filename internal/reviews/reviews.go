// Package reviews generates the storefront's placeholder product reviews.
// Generation is deterministic per product id so a product always shows the
// same reviews across requests without storing anything.
package reviews

import "github.com/wshop/webshop-backend/internal/catalog"

// Review is one placeholder customer review.
type Review struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
}

type person struct {
	name     string
	location string
}

var people = []person{
	{"Lars T.", "Trondheim"},
	{"Eva M.", "Oslo"},
	{"Jonas H.", "Bergen"},
	{"Sofia K.", "Stavanger"},
	{"Maja N.", "Kristiansand"},
}

var texts = []string{
	"The minimalist look is exactly what I wanted.",
	"Feels premium and sturdy - better than expected.",
	"Looks great in my living room. Clean lines.",
	"Easy to match with other furniture, very happy.",
	"Solid quality. Shipping was fast.",
}

// ForProduct returns 2-4 reviews for the product, seeded from its id (name
// as fallback). Ratings are always 4 or 5.
func ForProduct(p catalog.Product) []Review {
	seed := p.ID
	if seed == "" {
		seed = p.Name
	}
	if seed == "" {
		seed = "default_product"
	}
	next := seededRand(seed)

	count := 2 + int(next()*3) // 2 to 4 reviews
	out := make([]Review, 0, count)
	for i := 0; i < count; i++ {
		who := people[int(next()*float64(len(people)))]
		text := texts[int(next()*float64(len(texts)))]
		rating := 4 + int(next()*2) // 4 or 5 stars

		out = append(out, Review{
			Name:     who.name,
			Location: who.location,
			Rating:   rating,
			Text:     text,
		})
	}
	return out
}

// seededRand returns a deterministic generator of values in [0,1). The seed
// string is hashed into a 32-bit value, then stepped with a small LCG; the
// sequence only needs to be stable, not statistically strong.
func seededRand(seed string) func() float64 {
	var h int32
	for _, c := range seed {
		h = (h << 5) - h + int32(c)
	}
	state := int64(h)
	if state < 0 {
		state = -state
	}
	return func() float64 {
		state = (state*9301 + 49297) % 233280
		return float64(state) / 233280
	}
}
