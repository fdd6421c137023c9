package qrcode

import (
	"bytes"
	"testing"

	"vacuum/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"", qrcode.Medium},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestNewQRCodeService_DefaultSize(t *testing.T) {
	srv := NewQRCodeService(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, srv.size)
	assert.Equal(t, qrcode.Medium, srv.errorCorrectionLevel)
}

func TestQRCodeService_EncodePNG(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newQRCodeService(tt.size, "M")

			png, err := srv.EncodePNG("https://service.example.com/service-reports/0192f0c4-8d2e-7000-8000-000000000001")
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(png, pngMagic))
		})
	}
}

func TestQRCodeService_EncodePNG_Empty(t *testing.T) {
	_, err := newQRCodeService(256, "M").EncodePNG("")
	assert.Error(t, err)
}
