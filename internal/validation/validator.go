package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with custom struct-level validation
// registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// register struct-level validation for AddItemRequest to ensure a
	// submitted currency code at least looks like ISO-4217 before the cart
	// treats it as a display label.
	v.RegisterStructValidation(addItemStructValidation, AddItemRequest{})

	return v
}

// addItemStructValidation rejects currency codes that are not three ASCII
// letters. An absent currency is fine (the engine defaults it to USD).
func addItemStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(AddItemRequest)

	cur := req.Product.Currency
	if cur == "" {
		return
	}
	if !isCurrencyCode(cur) {
		sl.ReportError(req.Product.Currency, "product.currency", "Currency", "currency_code", "")
	}
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
