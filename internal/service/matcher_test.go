package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/transitpay/settlement-service/internal/models"
	"github.com/transitpay/settlement-service/internal/repository/posgrest"
	"github.com/transitpay/settlement-service/internal/service"
	"github.com/transitpay/settlement-service/internal/service/mocks"
)

func pendingPosting(invoiceNumber string, amount float64) *models.PaymentPosting {
	return &models.PaymentPosting{
		ID:                   "posting-1",
		TransactionID:        "TXN-001",
		InvoiceNumber:        invoiceNumber,
		Amount:               decimal.NewFromFloat(amount),
		ReconciliationStatus: models.ReconciliationPending,
	}
}

func TestMatch_NoInvoiceNumber(t *testing.T) {
	mockPostings := mocks.NewMockPostingRepo(t)
	mockTickets := mocks.NewMockTicketRepo(t)
	matcher := service.NewMatcher(mockPostings, mockTickets)

	outcome := matcher.Match(context.Background(), pendingPosting("", 100.00))

	assert.Equal(t, models.ReconciliationNotFound, outcome.Status)
	assert.Equal(t, "no invoice number provided", outcome.Err)
	mockTickets.AssertNotCalled(t, "FindByTicketNumber", mock.Anything, mock.Anything)
}

func TestMatch_TicketNotFound(t *testing.T) {
	mockPostings := mocks.NewMockPostingRepo(t)
	mockTickets := mocks.NewMockTicketRepo(t)
	matcher := service.NewMatcher(mockPostings, mockTickets)

	ctx := context.Background()
	mockTickets.EXPECT().
		FindByTicketNumber(ctx, "TKT-404").
		Return(nil, nil).
		Once()

	outcome := matcher.Match(ctx, pendingPosting("TKT-404", 100.00))

	assert.Equal(t, models.ReconciliationNotFound, outcome.Status)
	assert.Equal(t, "no ticket found: TKT-404", outcome.Err)
	mockPostings.AssertNotCalled(t, "ClaimTicket", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMatch_AmountMismatch(t *testing.T) {
	mockPostings := mocks.NewMockPostingRepo(t)
	mockTickets := mocks.NewMockTicketRepo(t)
	matcher := service.NewMatcher(mockPostings, mockTickets)

	ctx := context.Background()
	ticket := &models.Ticket{
		ID:           "ticket-1",
		TicketNumber: "TKT-001",
		Amount:       decimal.NewFromFloat(150.00),
	}
	mockTickets.EXPECT().
		FindByTicketNumber(ctx, "TKT-001").
		Return(ticket, nil).
		Once()

	outcome := matcher.Match(ctx, pendingPosting("TKT-001", 100.00))

	assert.Equal(t, models.ReconciliationAmountMismatch, outcome.Status)
	assert.Equal(t, ticket, outcome.Ticket)
	assert.Equal(t, "amount mismatch - ticket: 150.00, payment: 100.00", outcome.Err)
	// The mismatch never reaches the claimant check or the claim itself.
	mockPostings.AssertNotCalled(t, "FindTicketClaimant", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatch_AmountsEqualAfterRounding(t *testing.T) {
	mockPostings := mocks.NewMockPostingRepo(t)
	mockTickets := mocks.NewMockTicketRepo(t)
	matcher := service.NewMatcher(mockPostings, mockTickets)

	ctx := context.Background()
	ticket := &models.Ticket{
		ID:           "ticket-1",
		TicketNumber: "TKT-001",
		Amount:       decimal.RequireFromString("100.004"),
	}
	posting := pendingPosting("TKT-001", 100.00)

	mockTickets.EXPECT().
		FindByTicketNumber(ctx, "TKT-001").
		Return(ticket, nil).
		Once()
	mockPostings.EXPECT().
		FindTicketClaimant(ctx, "ticket-1", "posting-1").
		Return(nil, nil).
		Once()
	mockPostings.EXPECT().
		ClaimTicket(ctx, posting, ticket, models.ReconciliationAutoMatched, "").
		Return(nil).
		Once()

	outcome := matcher.Match(ctx, posting)

	assert.Equal(t, models.ReconciliationAutoMatched, outcome.Status)
	assert.Equal(t, ticket, outcome.Ticket)
	assert.Empty(t, outcome.Err)
}

func TestMatch_DuplicateClaimant(t *testing.T) {
	mockPostings := mocks.NewMockPostingRepo(t)
	mockTickets := mocks.NewMockTicketRepo(t)
	matcher := service.NewMatcher(mockPostings, mockTickets)

	ctx := context.Background()
	ticket := &models.Ticket{
		ID:           "ticket-1",
		TicketNumber: "TKT-001",
		Amount:       decimal.NewFromFloat(100.00),
	}
	claimant := &models.PaymentPosting{ID: "posting-0", TransactionID: "TXN-000"}

	mockTickets.EXPECT().
		FindByTicketNumber(ctx, "TKT-001").
		Return(ticket, nil).
		Once()
	mockPostings.EXPECT().
		FindTicketClaimant(ctx, "ticket-1", "posting-1").
		Return(claimant, nil).
		Once()

	outcome := matcher.Match(ctx, pendingPosting("TKT-001", 100.00))

	assert.Equal(t, models.ReconciliationDuplicate, outcome.Status)
	assert.Equal(t, "TXN-000", outcome.ExistingTransactionID)
	assert.Equal(t, "ticket already paid by transaction: TXN-000", outcome.Err)
	mockPostings.AssertNotCalled(t, "ClaimTicket", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMatch_DuplicateOnClaimRace(t *testing.T) {
	mockPostings := mocks.NewMockPostingRepo(t)
	mockTickets := mocks.NewMockTicketRepo(t)
	matcher := service.NewMatcher(mockPostings, mockTickets)

	ctx := context.Background()
	ticket := &models.Ticket{
		ID:           "ticket-1",
		TicketNumber: "TKT-001",
		Amount:       decimal.NewFromFloat(100.00),
	}
	posting := pendingPosting("TKT-001", 100.00)

	mockTickets.EXPECT().
		FindByTicketNumber(ctx, "TKT-001").
		Return(ticket, nil).
		Once()
	mockPostings.EXPECT().
		FindTicketClaimant(ctx, "ticket-1", "posting-1").
		Return(nil, nil).
		Once()
	mockPostings.EXPECT().
		ClaimTicket(ctx, posting, ticket, models.ReconciliationAutoMatched, "").
		Return(&posgrest.ErrTicketAlreadyClaimed{TransactionID: "TXN-RACE"}).
		Once()

	outcome := matcher.Match(ctx, posting)

	assert.Equal(t, models.ReconciliationDuplicate, outcome.Status)
	assert.Equal(t, "TXN-RACE", outcome.ExistingTransactionID)
	assert.Equal(t, "ticket already paid by transaction: TXN-RACE", outcome.Err)
}

func TestMatch_LookupFailureStaysPending(t *testing.T) {
	mockPostings := mocks.NewMockPostingRepo(t)
	mockTickets := mocks.NewMockTicketRepo(t)
	matcher := service.NewMatcher(mockPostings, mockTickets)

	ctx := context.Background()
	mockTickets.EXPECT().
		FindByTicketNumber(ctx, "TKT-001").
		Return(nil, errors.New("connection refused")).
		Once()

	outcome := matcher.Match(ctx, pendingPosting("TKT-001", 100.00))

	assert.Equal(t, models.ReconciliationPending, outcome.Status)
	assert.Equal(t, "auto-reconciliation error: connection refused", outcome.Err)
}
