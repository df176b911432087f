package service_test

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/transitpay/settlement-service/internal/checksum"
	"github.com/transitpay/settlement-service/internal/models"
	"github.com/transitpay/settlement-service/internal/models/dto"
	"github.com/transitpay/settlement-service/internal/service"
	"github.com/transitpay/settlement-service/internal/service/mocks"
	"gorm.io/gorm"
)

const intakeTestSecret = "intake-test-secret"

func gatewaySign(transactionID, merchantID, rrn string) string {
	sum := sha512.Sum512([]byte(transactionID + merchantID + rrn + intakeTestSecret))
	return hex.EncodeToString(sum[:])
}

func newIntakeService(t *testing.T) (*service.IntakeService, *mocks.MockPostingRepo, *mocks.MockTicketRepo, *mocks.MockPublisher) {
	mockRepo := mocks.NewMockPostingRepo(t)
	mockTickets := mocks.NewMockTicketRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)

	validator, err := checksum.New(intakeTestSecret)
	require.NoError(t, err)

	matcher := service.NewMatcher(mockRepo, mockTickets)
	intake := service.NewIntakeService(mockRepo, validator, matcher, mockPublisher)
	return intake, mockRepo, mockTickets, mockPublisher
}

func validGatewayPayload() *dto.GatewayPosting {
	return &dto.GatewayPosting{
		TransactionID:     "TXN-001",
		MerchantID:        "MERCH-01",
		TransactionRRN:    "RRN-123",
		Checksum:          gatewaySign("TXN-001", "MERCH-01", "RRN-123"),
		TransactionAmount: decimal.NewFromFloat(100.00),
		TransactionDate:   "15-01-2026",
		TransactionTime:   "14:30:00",
		ResponseCode:      "00",
		TransactionStatus: "Transaction Successful",
		InvoiceNumber:     "TKT-001",
		BillNumber:        "BILL-001",
	}
}

func TestIngest_Success(t *testing.T) {
	intake, mockRepo, _, mockPublisher := newIntakeService(t)

	ctx := context.Background()
	payload := validGatewayPayload()
	raw := []byte(`{"transactionID":"TXN-001"}`)

	mockRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *models.PaymentPosting) bool {
			return p.TransactionID == "TXN-001" &&
				p.MerchantID == "MERCH-01" &&
				p.ProcessingStatus == models.ProcessingReceived &&
				p.VerificationStatus == models.VerificationUnverified &&
				p.ReconciliationStatus == models.ReconciliationPending &&
				p.TransactionDatetime.Equal(time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)) &&
				string(p.RawPayload) == string(raw) &&
				len(p.ResponseSent) > 0
		})).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PostingReceivedTopic, mock.MatchedBy(func(evt models.PostingReceivedEvent) bool {
			return evt.TransactionID == "TXN-001" && evt.MerchantID == "MERCH-01"
		})).
		Return(nil).
		Once()

	ack, err := intake.Ingest(ctx, payload, raw)

	require.NoError(t, err)
	assert.Equal(t, 200, ack.Status)
	assert.Equal(t, "success", ack.Message)
	assert.Equal(t, "BILL-001", ack.MerchantRefTxnID)
}

func TestIngest_MissingRequiredFields(t *testing.T) {
	intake, mockRepo, _, mockPublisher := newIntakeService(t)

	payload := validGatewayPayload()
	payload.Checksum = "   "
	payload.TransactionAmount = decimal.Zero

	_, err := intake.Ingest(context.Background(), payload, []byte(`{}`))

	var missing *service.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"checksum", "transactionAmount"}, missing.Fields)
	// A malformed payload must never create a record or an event.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngest_InvalidDateFormat(t *testing.T) {
	intake, mockRepo, _, _ := newIntakeService(t)

	payload := validGatewayPayload()
	payload.TransactionDate = "2026-01-15"

	_, err := intake.Ingest(context.Background(), payload, []byte(`{}`))

	var badDate *service.InvalidDateTimeError
	require.ErrorAs(t, err, &badDate)
	assert.Contains(t, badDate.Error(), "DD-MM-YYYY")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIngest_RepostReplaysStoredAck(t *testing.T) {
	intake, mockRepo, _, mockPublisher := newIntakeService(t)

	ctx := context.Background()
	payload := validGatewayPayload()

	storedAck := dto.Acknowledgement{Status: 200, Message: "success", MerchantRefTxnID: "BILL-001"}
	storedBytes, err := json.Marshal(storedAck)
	require.NoError(t, err)

	existing := &models.PaymentPosting{
		TransactionID: "TXN-001",
		BillNumber:    "BILL-001",
		RepostCount:   3,
		ResponseSent:  storedBytes,
	}

	mockRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.PaymentPosting")).
		Return(gorm.ErrDuplicatedKey).
		Once()
	mockRepo.EXPECT().
		RecordRepost(ctx, "TXN-001").
		Return(existing, nil).
		Once()

	ack, err := intake.Ingest(ctx, payload, []byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, storedAck, *ack)
	// The repost must not re-enter the pipeline.
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngest_PublishFailureFallsBackInline(t *testing.T) {
	intake, mockRepo, _, mockPublisher := newIntakeService(t)

	ctx := context.Background()
	payload := validGatewayPayload()

	mockRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.PaymentPosting")).
		Return(nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.PostingReceivedTopic, mock.Anything).
		Return(errors.New("broker unavailable")).
		Once()
	// The inline fallback goroutine reloads the posting; answer it with an
	// already-processed record so the run is a no-op.
	mockRepo.EXPECT().
		GetByTransactionID(mock.Anything, "TXN-001").
		Return(&models.PaymentPosting{
			TransactionID:    "TXN-001",
			ProcessingStatus: models.ProcessingPendingVerification,
		}, nil).
		Maybe()

	ack, err := intake.Ingest(ctx, payload, []byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, 200, ack.Status)

	time.Sleep(50 * time.Millisecond)
}

func receivedPosting() *models.PaymentPosting {
	return &models.PaymentPosting{
		ID:                   "posting-1",
		TransactionID:        "TXN-001",
		MerchantID:           "MERCH-01",
		RRN:                  "RRN-123",
		ChecksumReceived:     gatewaySign("TXN-001", "MERCH-01", "RRN-123"),
		Amount:               decimal.NewFromFloat(100.00),
		ResponseCode:         "00",
		InvoiceNumber:        "TKT-001",
		ProcessingStatus:     models.ProcessingReceived,
		VerificationStatus:   models.VerificationUnverified,
		ReconciliationStatus: models.ReconciliationPending,
	}
}

func TestProcess_AutoMatch(t *testing.T) {
	intake, mockRepo, mockTickets, mockPublisher := newIntakeService(t)

	ctx := context.Background()
	posting := receivedPosting()
	ticket := &models.Ticket{
		ID:           "ticket-1",
		TicketNumber: "TKT-001",
		Amount:       decimal.NewFromFloat(100.00),
	}

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "TXN-001").
		Return(posting, nil).
		Once()
	mockRepo.EXPECT().
		Update(ctx, posting).
		Return(nil).
		Times(3)
	mockTickets.EXPECT().
		FindByTicketNumber(ctx, "TKT-001").
		Return(ticket, nil).
		Once()
	mockRepo.EXPECT().
		FindTicketClaimant(ctx, "ticket-1", "posting-1").
		Return(nil, nil).
		Once()
	mockRepo.EXPECT().
		ClaimTicket(ctx, posting, ticket, models.ReconciliationAutoMatched, "").
		Run(func(ctx context.Context, p *models.PaymentPosting, tk *models.Ticket, status models.ReconciliationStatus, reconciledBy string) {
			now := time.Now().UTC()
			p.RelatedTicketID = &tk.ID
			p.ReconciliationStatus = status
			p.ReconciledAt = &now
		}).
		Return(nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.PostingReconciledTopic, mock.MatchedBy(func(evt models.PostingReconciledEvent) bool {
			return evt.TransactionID == "TXN-001" &&
				evt.ReconciliationStatus == models.ReconciliationAutoMatched &&
				evt.IsChecksumValid &&
				evt.RelatedTicketID == "ticket-1"
		})).
		Return(nil).
		Once()

	err := intake.Process(ctx, "TXN-001")

	require.NoError(t, err)
	assert.Equal(t, models.ProcessingPendingVerification, posting.ProcessingStatus)
	assert.Equal(t, models.ReconciliationAutoMatched, posting.ReconciliationStatus)
	assert.True(t, posting.IsChecksumValid)
	assert.Empty(t, posting.ReconciliationError)
}

func TestProcess_AmountMismatchKeepsTicketAttached(t *testing.T) {
	intake, mockRepo, mockTickets, mockPublisher := newIntakeService(t)

	ctx := context.Background()
	posting := receivedPosting()
	ticket := &models.Ticket{
		ID:           "ticket-1",
		TicketNumber: "TKT-001",
		Amount:       decimal.NewFromFloat(150.00),
	}

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "TXN-001").
		Return(posting, nil).
		Once()
	mockRepo.EXPECT().
		Update(ctx, posting).
		Return(nil).
		Times(3)
	mockTickets.EXPECT().
		FindByTicketNumber(ctx, "TKT-001").
		Return(ticket, nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.PostingReconciledTopic, mock.Anything).
		Return(nil).
		Once()

	err := intake.Process(ctx, "TXN-001")

	require.NoError(t, err)
	assert.Equal(t, models.ProcessingPendingVerification, posting.ProcessingStatus)
	assert.Equal(t, models.ReconciliationAmountMismatch, posting.ReconciliationStatus)
	require.NotNil(t, posting.RelatedTicketID)
	assert.Equal(t, "ticket-1", *posting.RelatedTicketID)
	assert.Contains(t, posting.ReconciliationError, "150.00")
	assert.Contains(t, posting.ReconciliationError, "100.00")
	assert.True(t, posting.NeedsManagerAttention())
}

func TestProcess_ChecksumFailureSkipsMatching(t *testing.T) {
	intake, mockRepo, mockTickets, mockPublisher := newIntakeService(t)

	ctx := context.Background()
	posting := receivedPosting()
	posting.ChecksumReceived = "not-the-right-digest"

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "TXN-001").
		Return(posting, nil).
		Once()
	mockRepo.EXPECT().
		Update(ctx, posting).
		Return(nil).
		Times(2)
	mockPublisher.EXPECT().
		Publish(ctx, models.PostingReconciledTopic, mock.MatchedBy(func(evt models.PostingReconciledEvent) bool {
			return !evt.IsChecksumValid && evt.ProcessingStatus == models.ProcessingPendingVerification
		})).
		Return(nil).
		Once()

	err := intake.Process(ctx, "TXN-001")

	require.NoError(t, err)
	assert.Equal(t, models.ProcessingPendingVerification, posting.ProcessingStatus)
	assert.False(t, posting.IsChecksumValid)
	assert.Equal(t, "checksum mismatch", posting.ValidationError)
	assert.Equal(t, models.ReconciliationPending, posting.ReconciliationStatus)
	assert.NotEmpty(t, posting.ChecksumCalculated)
	// An unauthenticated posting never touches the ticket ledger.
	mockTickets.AssertNotCalled(t, "FindByTicketNumber", mock.Anything, mock.Anything)
}

func TestProcess_DeclinedPaymentSkipsMatching(t *testing.T) {
	intake, mockRepo, mockTickets, mockPublisher := newIntakeService(t)

	ctx := context.Background()
	posting := receivedPosting()
	posting.ResponseCode = "05"

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "TXN-001").
		Return(posting, nil).
		Once()
	mockRepo.EXPECT().
		Update(ctx, posting).
		Return(nil).
		Times(2)
	mockPublisher.EXPECT().
		Publish(ctx, models.PostingReconciledTopic, mock.Anything).
		Return(nil).
		Once()

	err := intake.Process(ctx, "TXN-001")

	require.NoError(t, err)
	assert.Equal(t, models.ProcessingPendingVerification, posting.ProcessingStatus)
	assert.True(t, posting.IsChecksumValid)
	assert.Equal(t, models.ReconciliationPending, posting.ReconciliationStatus)
	mockTickets.AssertNotCalled(t, "FindByTicketNumber", mock.Anything, mock.Anything)
}

func TestProcess_AlreadyProcessedIsNoOp(t *testing.T) {
	intake, mockRepo, _, mockPublisher := newIntakeService(t)

	ctx := context.Background()
	posting := receivedPosting()
	posting.ProcessingStatus = models.ProcessingPendingVerification

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "TXN-001").
		Return(posting, nil).
		Once()

	err := intake.Process(ctx, "TXN-001")

	require.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_PostingNotFound(t *testing.T) {
	intake, mockRepo, _, _ := newIntakeService(t)

	ctx := context.Background()
	mockRepo.EXPECT().
		GetByTransactionID(ctx, "TXN-MISSING").
		Return(nil, gorm.ErrRecordNotFound).
		Once()

	err := intake.Process(ctx, "TXN-MISSING")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
