package utils

import "testing"

func TestStripTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"<b>bold</b> move", "bold move"},
		{"<script>alert('x')</script>safe", "alert('x')safe"},
		{"<img src=x onerror=alert(1)>", ""},
		{"a < b and b > a", "a  a"},
		{"  <p>padded</p>  ", "padded"},
	}

	for _, tt := range tests {
		if got := StripTags(tt.in); got != tt.want {
			t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
