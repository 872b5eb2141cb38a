package entities

import (
	"testing"
	"time"
)

func TestCanonicalCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"save10", "SAVE10"},
		{"  Save10  ", "SAVE10"},
		{"SAVE10", "SAVE10"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := CanonicalCode(tc.in); got != tc.want {
			t.Fatalf("CanonicalCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDiscountCode_Expired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no expiry never expires", func(t *testing.T) {
		d := DiscountCode{Code: "SAVE10"}
		if d.Expired(now) {
			t.Fatal("code without expiry must not expire")
		}
	})

	t.Run("future expiry is valid", func(t *testing.T) {
		until := now.Add(time.Hour)
		d := DiscountCode{Code: "SAVE10", ValidUntil: &until}
		if d.Expired(now) {
			t.Fatal("future expiry must be valid")
		}
	})

	t.Run("past expiry", func(t *testing.T) {
		until := now.Add(-time.Minute)
		d := DiscountCode{Code: "SAVE10", ValidUntil: &until}
		if !d.Expired(now) {
			t.Fatal("past expiry must be expired")
		}
	})

	t.Run("exact boundary still valid", func(t *testing.T) {
		until := now
		d := DiscountCode{Code: "SAVE10", ValidUntil: &until}
		if d.Expired(now) {
			t.Fatal("expiry at the exact instant must still be valid")
		}
	})
}
