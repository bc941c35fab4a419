package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmart/config"
)

func newTestService() *qrcodeService {
	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestQRCodeService_GenerateReceiptQR(t *testing.T) {
	svc := newTestService()

	receiptID := uuid.New()
	png, err := svc.GenerateReceiptQR(receiptID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_ParseReceiptQR(t *testing.T) {
	svc := newTestService()

	receiptID := uuid.New()
	payload, err := json.Marshal(QRCodeData{ReceiptID: receiptID.String(), Type: "receipt"})
	require.NoError(t, err)

	parsed, err := svc.ParseReceiptQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, receiptID, parsed)
}

func TestQRCodeService_ParseRejectsWrongType(t *testing.T) {
	svc := newTestService()

	payload, err := json.Marshal(QRCodeData{ReceiptID: uuid.New().String(), Type: "subscription"})
	require.NoError(t, err)

	_, err = svc.ParseReceiptQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ParseReceiptQR("not json")
	assert.Error(t, err)

	payload, err := json.Marshal(QRCodeData{ReceiptID: "not-a-uuid", Type: "receipt"})
	require.NoError(t, err)

	_, err = svc.ParseReceiptQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_DefaultsWithoutConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)

	png, err := svc.GenerateReceiptQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
