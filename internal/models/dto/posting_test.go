package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/transitpay/settlement-service/internal/models"
	"github.com/transitpay/settlement-service/internal/models/dto"
)

func TestMissingRequiredFields_EmptyPayload(t *testing.T) {
	g := dto.GatewayPosting{}

	missing := g.MissingRequiredFields()

	// The rejection lists the gateway's own field names so their side can
	// correlate it.
	assert.Equal(t, []string{
		"transactionID",
		"merchantId",
		"transactionRRN",
		"checksum",
		"transactionDate",
		"transactionTime",
		"responseCode",
		"transactionStatus",
		"transactionAmount",
	}, missing)
}

func TestMissingRequiredFields_CompletePayload(t *testing.T) {
	g := dto.GatewayPosting{
		TransactionID:     "TXN-001",
		MerchantID:        "MERCH-01",
		TransactionRRN:    "RRN-123",
		Checksum:          "abc",
		TransactionAmount: decimal.NewFromFloat(100.00),
		TransactionDate:   "15-01-2026",
		TransactionTime:   "14:30:00",
		ResponseCode:      "00",
		TransactionStatus: "Transaction Successful",
	}

	assert.Empty(t, g.MissingRequiredFields())
}

func TestSanitize_TrimsWhitespace(t *testing.T) {
	g := dto.GatewayPosting{
		TransactionID: "  TXN-001  ",
		MerchantID:    "\tMERCH-01\n",
		InvoiceNumber: " TKT-001 ",
	}

	g.Sanitize()

	assert.Equal(t, "TXN-001", g.TransactionID)
	assert.Equal(t, "MERCH-01", g.MerchantID)
	assert.Equal(t, "TKT-001", g.InvoiceNumber)
}

func TestToEntity_InitialState(t *testing.T) {
	g := dto.GatewayPosting{
		TransactionID:     "TXN-001",
		MerchantID:        "MERCH-01",
		TransactionRRN:    "RRN-123",
		Checksum:          "abc",
		TransactionAmount: decimal.NewFromFloat(100.00),
		ResponseCode:      "00",
		InvoiceNumber:     "TKT-001",
	}

	posting := g.ToEntity()

	assert.Equal(t, models.ProcessingReceived, posting.ProcessingStatus)
	assert.Equal(t, models.VerificationUnverified, posting.VerificationStatus)
	assert.Equal(t, models.ReconciliationPending, posting.ReconciliationStatus)
	assert.Equal(t, "RRN-123", posting.RRN)
	assert.Equal(t, "abc", posting.ChecksumReceived)
	assert.True(t, posting.Amount.Equal(decimal.NewFromFloat(100.00)))
}
