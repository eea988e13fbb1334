package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidPIN(t *testing.T) {
	valid := []string{"0000", "4326", "9999"}
	invalid := []string{"", "123", "12345", "12a4", "-123", " 123"}
	for _, pin := range valid {
		if !IsValidPIN(pin) {
			t.Errorf("IsValidPIN(%q) = false, want true", pin)
		}
	}
	for _, pin := range invalid {
		if IsValidPIN(pin) {
			t.Errorf("IsValidPIN(%q) = true, want false", pin)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-28"); !ok {
		t.Error("IsValidDate(2025-02-28) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "28-02-2025", "2025/02/28", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"08123456789", "+6281234567890", "555 012 3456"}
	invalid := []string{"", "12345", "phone-number", "0812345678901234567"}
	for _, p := range valid {
		if !IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", p)
		}
	}
}
