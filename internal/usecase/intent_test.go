package usecase

import "testing"

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    intent
	}{
		{"clear history", "please clear history", intentClearHistory},
		{"start over", "let's start over", intentClearHistory},
		{"explicit add", "add to cart please", intentAddToCart},
		{"generic buy", "I want to buy the classic tee", intentAddToCart},
		{"purchase", "purchase 2 slim jeans", intentAddToCart},
		{"remove", "remove the classic tee from my cart", intentRemoveFromCart},
		{"take out", "take out the jeans", intentRemoveFromCart},
		{"discount", "can I get a discount?", intentApplyDiscount},
		{"apply code", "apply code SAVE10", intentApplyDiscount},
		{"checkout", "checkout now", intentCheckout},
		{"checkout beats view cart", "checkout my cart", intentCheckout},
		{"place order", "place my order please", intentCheckout},
		{"view cart", "what's in my cart?", intentViewCart},
		{"show cart", "show cart", intentViewCart},
		{"track", "track my package", intentTrackOrder},
		{"track beats view orders", "track my orders", intentTrackOrder},
		{"order status", "what's my order status", intentTrackOrder},
		{"view orders", "show my orders", intentViewOrders},
		{"order history", "my order history please", intentViewOrders},
		{"product detail", "tell me about the classic tee", intentProductDetail},
		{"browse", "show me some shirts", intentBrowseProducts},
		{"looking for", "I'm looking for a jacket", intentBrowseProducts},
		{"fallback", "hello there", intentFallback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyIntent(tc.message); got != tc.want {
				t.Fatalf("classifyIntent(%q) = %d, want %d", tc.message, got, tc.want)
			}
		})
	}
}

func TestExtractProductID(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"add product 12 to my cart", "12"},
		{"buy id 7", "7"},
		{"buy #42 please", "42"},
		{"buy two shirts", ""},
	}
	for _, tc := range cases {
		if got := extractProductID(tc.message); got != tc.want {
			t.Fatalf("extractProductID(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestExtractQuantity(t *testing.T) {
	cases := []struct {
		message string
		want    int
	}{
		{"add 3 classic tees", 3},
		{"buy 2 pieces", 2},
		{"add the classic tee", 1},
		{"add product 12 to my cart", 1}, // id digits are not a quantity
		{"add 5 of product 12", 5},
	}
	for _, tc := range cases {
		if got := extractQuantity(tc.message); got != tc.want {
			t.Fatalf("extractQuantity(%q) = %d, want %d", tc.message, got, tc.want)
		}
	}
}

func TestExtractSize(t *testing.T) {
	if got := extractSize("add a tee size xl"); got != "XL" {
		t.Fatalf("expected XL, got %q", got)
	}
	if got := extractSize("add a tee"); got != "M" {
		t.Fatalf("expected baseline M, got %q", got)
	}
	if got := extractSizeOrEmpty("remove the tee"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestExtractDiscountCode(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"apply code save10", "SAVE10"},
		{"use coupon WELCOME5", "WELCOME5"},
		{"can you apply SUMMER20 for me", "SUMMER20"},
		{"any discount available?", ""},
	}
	for _, tc := range cases {
		if got := extractDiscountCode(tc.message); got != tc.want {
			t.Fatalf("extractDiscountCode(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestExtractOrderID(t *testing.T) {
	id := "0f8fad5b-d9cb-469f-a165-70867728950e"
	if got := extractOrderID("track order " + id); got != id {
		t.Fatalf("expected %q, got %q", id, got)
	}
	if got := extractOrderID("track my last order"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
