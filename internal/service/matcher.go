package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/transitpay/settlement-service/internal/models"
	"github.com/transitpay/settlement-service/internal/models/dto"
	"github.com/transitpay/settlement-service/internal/repository/posgrest"
)

// PostingRepo defines the persistence operations the settlement services need
// for payment postings. The transaction_id unique constraint and the
// ticket-claim transaction live behind this interface.
type PostingRepo interface {
	Create(ctx context.Context, posting *models.PaymentPosting) error
	GetByTransactionID(ctx context.Context, transactionID string) (*models.PaymentPosting, error)
	RecordRepost(ctx context.Context, transactionID string) (*models.PaymentPosting, error)
	Update(ctx context.Context, posting *models.PaymentPosting) error
	FindTicketClaimant(ctx context.Context, ticketID, excludeID string) (*models.PaymentPosting, error)
	ClaimTicket(ctx context.Context, posting *models.PaymentPosting, ticket *models.Ticket, status models.ReconciliationStatus, reconciledBy string) error
	List(ctx context.Context, q dto.SettlementQuery) ([]models.PaymentPosting, error)
	Summarize(ctx context.Context, q dto.SettlementQuery) (*dto.SettlementSummary, error)
}

// TicketRepo defines the read-only lookup against the ticket ledger.
type TicketRepo interface {
	FindByTicketNumber(ctx context.Context, ticketNumber string) (*models.Ticket, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Outcome is the matcher's result contract. Status carries the
// classification; Err is the human-readable reconciliation_error recorded on
// the posting. A Status of PENDING with a non-empty Err means the lookup
// itself failed and the posting must be parked for review unclassified.
type Outcome struct {
	Status                models.ReconciliationStatus
	Ticket                *models.Ticket
	ExistingTransactionID string
	Err                   string
}

// Matcher links an approved, authenticated posting to at most one ticket.
// Callers must gate on is_checksum_valid AND is_payment_successful before
// invoking Match.
type Matcher struct {
	Postings PostingRepo
	Tickets  TicketRepo
}

func NewMatcher(postings PostingRepo, tickets TicketRepo) *Matcher {
	return &Matcher{
		Postings: postings,
		Tickets:  tickets,
	}
}

// Match runs the reconciliation rules in fixed order, first applicable rule
// wins. The ordering is a contract: a posting with no ticket reference
// reports NOT_FOUND even if it would also have been a duplicate, because the
// lookup rules short-circuit before the claim check can run.
func (m *Matcher) Match(ctx context.Context, posting *models.PaymentPosting) Outcome {
	if posting.InvoiceNumber == "" {
		return Outcome{
			Status: models.ReconciliationNotFound,
			Err:    "no invoice number provided",
		}
	}

	ticket, err := m.Tickets.FindByTicketNumber(ctx, posting.InvoiceNumber)
	if err != nil {
		return m.lookupFailure(posting, err)
	}
	if ticket == nil {
		return Outcome{
			Status: models.ReconciliationNotFound,
			Err:    fmt.Sprintf("no ticket found: %s", posting.InvoiceNumber),
		}
	}

	ticketAmount := ticket.Amount.Round(2)
	paymentAmount := posting.Amount.Round(2)
	if !ticketAmount.Equal(paymentAmount) {
		return Outcome{
			Status: models.ReconciliationAmountMismatch,
			Ticket: ticket,
			Err: fmt.Sprintf("amount mismatch - ticket: %s, payment: %s",
				ticketAmount.StringFixed(2), paymentAmount.StringFixed(2)),
		}
	}

	claimant, err := m.Postings.FindTicketClaimant(ctx, ticket.ID, posting.ID)
	if err != nil {
		return m.lookupFailure(posting, err)
	}
	if claimant != nil {
		return Outcome{
			Status:                models.ReconciliationDuplicate,
			ExistingTransactionID: claimant.TransactionID,
			Err:                   fmt.Sprintf("ticket already paid by transaction: %s", claimant.TransactionID),
		}
	}

	// The claim re-checks exclusivity inside a transaction with the ticket
	// row locked, so two concurrent auto-match attempts cannot both land.
	err = m.Postings.ClaimTicket(ctx, posting, ticket, models.ReconciliationAutoMatched, "")
	var already *posgrest.ErrTicketAlreadyClaimed
	if errors.As(err, &already) {
		return Outcome{
			Status:                models.ReconciliationDuplicate,
			ExistingTransactionID: already.TransactionID,
			Err:                   fmt.Sprintf("ticket already paid by transaction: %s", already.TransactionID),
		}
	}
	if err != nil {
		return m.lookupFailure(posting, err)
	}

	return Outcome{
		Status: models.ReconciliationAutoMatched,
		Ticket: ticket,
	}
}

func (m *Matcher) lookupFailure(posting *models.PaymentPosting, err error) Outcome {
	return Outcome{
		Status: posting.ReconciliationStatus,
		Err:    fmt.Sprintf("auto-reconciliation error: %s", err.Error()),
	}
}
