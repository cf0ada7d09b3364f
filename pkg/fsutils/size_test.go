package fsutils

import (
	"testing"
)

func TestSizeText(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0B"},
		{500, "500B"},
		{1023, "1023B"},
		{1024, "1KB"},
		{1025, "1KB"},
		{1535, "1KB"},
		{1536, "2KB"},
		{2000, "2KB"},
		{1024 * 1024, "1MB"},
		{1024 * 1024 * 1024, "1GB"},
		{1024 * 1024 * 1024 * 1024, "1TB"},
		{2 * 1024 * 1024, "2MB"},
		{1024*1024 + 512*1024 - 1, "1MB"},
		{1024*1024 + 512*1024, "2MB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1024TB"},
		{1024*1024*1024 - 1, "1GB"},
		{1024*1024*1024 - 1024*1024/2, "1GB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			actual := SizeText(tt.size)
			if actual != tt.expected {
				t.Errorf("SizeText(%d) = %s; want %s", tt.size, actual, tt.expected)
			}
		})
	}
}

func TestAverageSizeText(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		count    int
		expected string
	}{
		{"zero_count", 100, 0, "0B"},
		{"negative_count", 100, -1, "0B"},
		{"exact", 2048, 2, "1KB"},
		{"small", 35, 3, "11B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := AverageSizeText(tt.total, tt.count)
			if actual != tt.expected {
				t.Errorf("AverageSizeText(%d, %d) = %s; want %s", tt.total, tt.count, actual, tt.expected)
			}
		})
	}
}
