package video

import "testing"

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		rate string
		want float64
	}{
		{"30/1", 30},
		{"30000/1001", 29.97002997002997},
		{"25", 25},
		{"0/0", 0},
		{"", 0},
		{"bogus", 0},
	}

	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			got := parseFrameRate(tt.rate)
			if got != tt.want {
				t.Errorf("parseFrameRate(%q) = %v, want %v", tt.rate, got, tt.want)
			}
		})
	}
}
