package service

// QRCodeService defines the interface for couple invite QR generation and
// parsing.
type QRCodeService interface {
	// GenerateInviteQR generates a PNG QR code encoding a couple invite.
	GenerateInviteQR(coupleID, inviteCode string) ([]byte, error)

	// ParseInviteQR parses scanned QR data and returns the couple ID and
	// invite code.
	ParseInviteQR(qrData string) (coupleID, inviteCode string, err error)
}
