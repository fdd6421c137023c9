package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
		{name: "request body limit", bytes: 20 * 1024 * 1024, expected: "20.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestSafeFilename(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"manual.pdf":               "manual.pdf",
		"  site photo 1.jpg ":      "site_photo_1.jpg",
		"../../etc/passwd":         "passwd",
		`C:\Users\dee\invoice.pdf`: "invoice.pdf",
		"":                         DefaultFilename,
		"..":                       DefaultFilename,
		"/":                        DefaultFilename,
	}

	for in, want := range tests {
		assert.Equal(t, want, SafeFilename(in), in)
	}
}
