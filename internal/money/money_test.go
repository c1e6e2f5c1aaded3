package money

import "testing"

func TestFormat(t *testing.T) {
	if got := Format(129, "USD"); got != "129.00 USD" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := Format(5.5, "EUR"); got != "5.50 EUR" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := Format(0.1+0.2, "USD"); got != "0.30 USD" {
		t.Fatalf("float artifact leaked: %q", got)
	}
}

func TestFormat_DefaultsCurrency(t *testing.T) {
	if got := Format(0, ""); got != "0.00 USD" {
		t.Fatalf("expected USD fallback, got %q", got)
	}
}
