package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/transitpay/settlement-service/internal/models"
	"github.com/transitpay/settlement-service/internal/models/dto"
	"github.com/transitpay/settlement-service/internal/repository/posgrest"
)

var (
	// ErrInsufficientRole rejects callers outside the elevated role set.
	ErrInsufficientRole = errors.New("insufficient permissions")
	// ErrUnknownDecision rejects verification statuses a reviewer may not request.
	ErrUnknownDecision = errors.New("verification_status must be VERIFIED, REJECTED or FLAGGED")
	// ErrTicketNotFound rejects a manual match against a ticket that does not exist.
	ErrTicketNotFound = errors.New("ticket not found")
)

// AlreadyDecidedError rejects a second decision on a posting. Decisions are
// single-shot; the original decider is surfaced so the second reviewer knows
// who to talk to instead of silently overwriting.
type AlreadyDecidedError struct {
	Status    models.VerificationStatus
	DecidedBy string
}

func (e *AlreadyDecidedError) Error() string {
	return fmt.Sprintf("posting already %s by %s", e.Status, e.DecidedBy)
}

// TicketClaimedError rejects a manual match against a ticket some other
// posting already holds.
type TicketClaimedError struct {
	TransactionID string
}

func (e *TicketClaimedError) Error() string {
	return fmt.Sprintf("ticket already claimed by transaction %s", e.TransactionID)
}

// ReviewService is the human side of settlement: recording verification
// decisions and manual ticket matches, and serving the review queue listing.
type ReviewService struct {
	Repo    PostingRepo
	Tickets TicketRepo
}

func NewReviewService(repo PostingRepo, tickets TicketRepo) *ReviewService {
	return &ReviewService{
		Repo:    repo,
		Tickets: tickets,
	}
}

// Verify records a reviewer's decision on one posting. The posting must still
// be UNVERIFIED: every decision is terminal, and an attempt to re-decide
// returns AlreadyDecidedError naming the original reviewer.
func (s *ReviewService) Verify(ctx context.Context, reviewer models.Reviewer, req *dto.VerificationRequest) (*models.PaymentPosting, error) {
	if !reviewer.IsElevated() {
		return nil, ErrInsufficientRole
	}

	req.Sanitize()
	decision := models.VerificationStatus(req.VerificationStatus)
	if !decision.IsDecision() {
		return nil, ErrUnknownDecision
	}

	posting, err := s.Repo.GetByTransactionID(ctx, req.TransactionRef)
	if err != nil {
		return nil, err
	}

	if posting.VerificationStatus != models.VerificationUnverified {
		return nil, &AlreadyDecidedError{
			Status:    posting.VerificationStatus,
			DecidedBy: posting.VerifiedBy,
		}
	}

	now := time.Now().UTC()
	posting.VerificationStatus = decision
	posting.VerifiedBy = reviewer.Username
	posting.VerifiedAt = &now
	posting.VerificationNotes = req.Notes

	if err := s.Repo.Update(ctx, posting); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"transaction_id": posting.TransactionID,
		"decision":       decision,
		"reviewer":       reviewer.Username,
	}).Info("settlement verification recorded")

	return posting, nil
}

// ManualMatch links a posting to a ticket by hand, for the cases the
// automated matcher classified as NOT_FOUND or AMOUNT_MISMATCH. The claim
// goes through the same exclusive ticket-claim transaction as auto-matching,
// so a manual match can never double-claim a ticket either.
func (s *ReviewService) ManualMatch(ctx context.Context, reviewer models.Reviewer, req *dto.ManualMatchRequest) (*models.PaymentPosting, error) {
	if !reviewer.IsElevated() {
		return nil, ErrInsufficientRole
	}

	req.Sanitize()
	posting, err := s.Repo.GetByTransactionID(ctx, req.TransactionRef)
	if err != nil {
		return nil, err
	}

	if posting.VerificationStatus == models.VerificationVerified {
		return nil, &AlreadyDecidedError{
			Status:    posting.VerificationStatus,
			DecidedBy: posting.VerifiedBy,
		}
	}

	ticket, err := s.Tickets.FindByTicketNumber(ctx, req.TicketNumber)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}

	posting.ReconciliationError = ""
	posting.ManagerNotes = req.Notes
	err = s.Repo.ClaimTicket(ctx, posting, ticket, models.ReconciliationManualMatch, reviewer.Username)
	var claimed *posgrest.ErrTicketAlreadyClaimed
	if errors.As(err, &claimed) {
		return nil, &TicketClaimedError{TransactionID: claimed.TransactionID}
	}
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"transaction_id": posting.TransactionID,
		"ticket_number":  req.TicketNumber,
		"reviewer":       reviewer.Username,
	}).Info("manual match recorded")

	return posting, nil
}

// List returns the review listing for a date range, newest first, capped at
// maxSettlementRecords.
func (s *ReviewService) List(ctx context.Context, reviewer models.Reviewer, filter dto.SettlementFilter) ([]models.PaymentPosting, error) {
	if !reviewer.IsElevated() {
		return nil, ErrInsufficientRole
	}

	query, err := buildSettlementQuery(filter)
	if err != nil {
		return nil, err
	}
	return s.Repo.List(ctx, query)
}
