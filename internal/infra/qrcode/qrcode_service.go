package qrcode

import (
	"encoding/json"
	"fmt"

	"iloveyou/config"
	"iloveyou/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CoupleID   string `json:"couple_id"`
	InviteCode string `json:"invite_code"`
	Type       string `json:"type"`
	Link       string `json:"link,omitempty"`
}

const qrTypeCoupleInvite = "couple_invite"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	size := 256
	level := qrcode.Medium
	baseURL := ""

	if cfg != nil {
		if cfg.Size > 0 {
			size = cfg.Size
		}
		baseURL = cfg.BaseURL
		switch cfg.ErrorCorrectionLevel {
		case "L":
			level = qrcode.Low
		case "M":
			level = qrcode.Medium
		case "Q":
			level = qrcode.High
		case "H":
			level = qrcode.Highest
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateInviteQR generates a PNG QR code encoding a couple invite
func (s *qrcodeService) GenerateInviteQR(coupleID, inviteCode string) ([]byte, error) {
	data := QRCodeData{
		CoupleID:   coupleID,
		InviteCode: inviteCode,
		Type:       qrTypeCoupleInvite,
	}
	if s.baseURL != "" {
		data.Link = fmt.Sprintf("%s/%s?code=%s", s.baseURL, coupleID, inviteCode)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseInviteQR parses scanned QR data and returns the couple ID and invite code
func (s *qrcodeService) ParseInviteQR(qrData string) (string, string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrTypeCoupleInvite {
		return "", "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.CoupleID == "" || data.InviteCode == "" {
		return "", "", fmt.Errorf("incomplete QR code data")
	}

	return data.CoupleID, data.InviteCode, nil
}
