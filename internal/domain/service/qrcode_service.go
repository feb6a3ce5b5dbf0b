package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePaymentQR renders the gateway authorization URL as a QR code
	// so the customer can finish checkout on another device
	GeneratePaymentQR(authorizationURL string) ([]byte, error)
}
