package qrcode

import (
	"encoding/json"
	"testing"

	"iloveyou/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(&config.QRCodeConfig{
				Size:                 256,
				ErrorCorrectionLevel: tt.errorCorrectionLevel,
			})
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateInviteQR(t *testing.T) {
	service := NewQRCodeService(&config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"})

	qrBytes, err := service.GenerateInviteQR("couple-1", "LOVE123")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateInviteQR_DifferentSizes(t *testing.T) {
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
			service := NewQRCodeService(&config.QRCodeConfig{Size: tt.size, ErrorCorrectionLevel: "M"})

			qrBytes, err := service.GenerateInviteQR("couple-1", "LOVE123")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseInviteQR(t *testing.T) {
	service := NewQRCodeService(&config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"})

	data := QRCodeData{
		CoupleID:   "couple-1",
		InviteCode: "LOVE123",
		Type:       "couple_invite",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	coupleID, inviteCode, err := service.ParseInviteQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "couple-1", coupleID)
	assert.Equal(t, "LOVE123", inviteCode)
}

func TestQRCodeService_ParseInviteQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(&config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"})

	_, _, err := service.ParseInviteQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseInviteQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(&config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"})

	data := QRCodeData{
		CoupleID:   "couple-1",
		InviteCode: "LOVE123",
		Type:       "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, _, err = service.ParseInviteQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseInviteQR_IncompleteData(t *testing.T) {
	service := NewQRCodeService(&config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"})

	data := QRCodeData{
		CoupleID: "couple-1",
		Type:     "couple_invite",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, _, err = service.ParseInviteQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete QR code data")
}

func TestQRCodeService_LinkIncludedWithBaseURL(t *testing.T) {
	service := NewQRCodeService(&config.QRCodeConfig{
		Size:                 256,
		ErrorCorrectionLevel: "M",
		BaseURL:              "https://app.example.com/invite",
	})

	qrBytes, err := service.GenerateInviteQR("couple-1", "LOVE123")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
