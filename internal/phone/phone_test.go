package phone

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5551234567", "+15551234567"},
		{"15551234567", "+15551234567"},
		{"+15551234567", "+15551234567"},
		{"1555-123-4567", "+1555-123-4567"},
		{"12345", "+12345"},
		{"+447700900123", "+447700900123"},
		{"email@example.com", "email@example.com"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+15551234567", "5551234567"},
		{"15551234567", "5551234567"},
		{"5551234567", "5551234567"},
		{"+447700900123", "+447700900123"},
		{"email@example.com", "email@example.com"},
	}
	for _, tt := range tests {
		if got := DisplayNumber(tt.in); got != tt.want {
			t.Errorf("DisplayNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
