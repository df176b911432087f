package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/transitpay/settlement-service/internal/models"
)

func TestIsPaymentSuccessful(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"0", true},
		{"00", true},
		{"000", true},
		{"05", false},
		{"51", false},
		{"", false},
		{"0000", false},
	}

	for _, tt := range tests {
		p := models.PaymentPosting{ResponseCode: tt.code}
		assert.Equal(t, tt.want, p.IsPaymentSuccessful(), "response code %q", tt.code)
	}
}

func TestNeedsManagerAttention(t *testing.T) {
	tests := []struct {
		name           string
		verification   models.VerificationStatus
		reconciliation models.ReconciliationStatus
		checksumValid  bool
		want           bool
	}{
		{"unverified always needs attention", models.VerificationUnverified, models.ReconciliationAutoMatched, true, true},
		{"flagged always needs attention", models.VerificationFlagged, models.ReconciliationAutoMatched, true, true},
		{"invalid checksum even when verified", models.VerificationVerified, models.ReconciliationAutoMatched, false, true},
		{"amount mismatch even when verified", models.VerificationVerified, models.ReconciliationAmountMismatch, true, true},
		{"not found even when verified", models.VerificationVerified, models.ReconciliationNotFound, true, true},
		{"duplicate even when verified", models.VerificationVerified, models.ReconciliationDuplicate, true, true},
		{"verified auto-matched clean", models.VerificationVerified, models.ReconciliationAutoMatched, true, false},
		{"verified manual match clean", models.VerificationVerified, models.ReconciliationManualMatch, true, false},
		{"rejected auto-matched clean", models.VerificationRejected, models.ReconciliationAutoMatched, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.PaymentPosting{
				VerificationStatus:   tt.verification,
				ReconciliationStatus: tt.reconciliation,
				IsChecksumValid:      tt.checksumValid,
			}
			assert.Equal(t, tt.want, p.NeedsManagerAttention())
		})
	}
}

func TestIsReadyForSettlement(t *testing.T) {
	ready := models.PaymentPosting{
		VerificationStatus: models.VerificationVerified,
		ResponseCode:       "00",
	}
	assert.True(t, ready.IsReadyForSettlement())

	unverified := ready
	unverified.VerificationStatus = models.VerificationUnverified
	assert.False(t, unverified.IsReadyForSettlement())

	declined := ready
	declined.ResponseCode = "05"
	assert.False(t, declined.IsReadyForSettlement())

	batched := ready
	batched.SettlementBatchID = "BATCH-001"
	assert.False(t, batched.IsReadyForSettlement())
}

func TestTotalAmount(t *testing.T) {
	p := models.PaymentPosting{
		Amount:    decimal.NewFromFloat(100.50),
		CashBack:  decimal.NewFromFloat(20.00),
		TipAmount: decimal.NewFromFloat(5.25),
	}

	assert.True(t, p.TotalAmount().Equal(decimal.NewFromFloat(125.75)))
}

func TestTransitionProcessing_LegalMoves(t *testing.T) {
	tests := []struct {
		from models.ProcessingStatus
		to   models.ProcessingStatus
	}{
		{models.ProcessingReceived, models.ProcessingValidated},
		{models.ProcessingReceived, models.ProcessingValidationFailed},
		{models.ProcessingValidated, models.ProcessingReconciling},
		{models.ProcessingValidated, models.ProcessingPendingVerification},
		{models.ProcessingValidationFailed, models.ProcessingPendingVerification},
		{models.ProcessingReconciling, models.ProcessingPendingVerification},
	}

	for _, tt := range tests {
		p := models.PaymentPosting{ProcessingStatus: tt.from}
		err := p.TransitionProcessing(tt.to)

		assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		assert.Equal(t, tt.to, p.ProcessingStatus)
	}
}

func TestTransitionProcessing_IllegalMoves(t *testing.T) {
	tests := []struct {
		from models.ProcessingStatus
		to   models.ProcessingStatus
	}{
		{models.ProcessingReceived, models.ProcessingReconciling},
		{models.ProcessingReceived, models.ProcessingPendingVerification},
		{models.ProcessingValidationFailed, models.ProcessingReconciling},
		{models.ProcessingPendingVerification, models.ProcessingReceived},
		{models.ProcessingPendingVerification, models.ProcessingReconciling},
		{models.ProcessingValidated, models.ProcessingReceived},
	}

	for _, tt := range tests {
		p := models.PaymentPosting{ProcessingStatus: tt.from}
		err := p.TransitionProcessing(tt.to)

		var invalid *models.InvalidTransitionError
		assert.ErrorAs(t, err, &invalid, "%s -> %s", tt.from, tt.to)
		assert.Equal(t, tt.from, p.ProcessingStatus, "status must not move on a rejected transition")
	}
}

func TestVerificationStatus_IsDecision(t *testing.T) {
	assert.True(t, models.VerificationVerified.IsDecision())
	assert.True(t, models.VerificationRejected.IsDecision())
	assert.True(t, models.VerificationFlagged.IsDecision())
	assert.False(t, models.VerificationUnverified.IsDecision())
	assert.False(t, models.VerificationDisputed.IsDecision())
	assert.False(t, models.VerificationStatus("APPROVED").IsDecision())
}

func TestReviewerIsElevated(t *testing.T) {
	for _, role := range []string{
		models.RoleCompanyAdmin, models.RoleBranchAdmin, models.RoleAdmin, models.RoleSuperAdmin,
	} {
		assert.True(t, models.Reviewer{Role: role}.IsElevated(), role)
	}

	assert.False(t, models.Reviewer{Role: "driver"}.IsElevated())
	assert.False(t, models.Reviewer{Role: "accountant"}.IsElevated())
	assert.False(t, models.Reviewer{}.IsElevated())
}
