package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReceiptQR generates a pickup QR code for a receipt.
	GenerateReceiptQR(receiptID uuid.UUID) ([]byte, error)

	// ParseReceiptQR parses QR code data and returns the receipt ID.
	ParseReceiptQR(qrData string) (uuid.UUID, error)
}
