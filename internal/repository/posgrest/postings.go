package posgrest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/transitpay/settlement-service/internal/models"
	"github.com/transitpay/settlement-service/internal/models/dto"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrTicketAlreadyClaimed is returned when a claim attempt loses the race for
// a ticket: some other posting already holds it as related_ticket.
type ErrTicketAlreadyClaimed struct {
	TransactionID string
}

func (e *ErrTicketAlreadyClaimed) Error() string {
	return fmt.Sprintf("ticket already claimed by transaction %s", e.TransactionID)
}

// PostingRepository is the GORM-backed store for payment postings. The
// transaction_id unique constraint is the idempotency mechanism: Create
// surfaces gorm.ErrDuplicatedKey and callers take the repost path, so there
// is no check-then-insert race at the application layer.
type PostingRepository struct {
	db *gorm.DB
}

func NewPostingRepository(db *gorm.DB) *PostingRepository {
	return &PostingRepository{
		db,
	}
}

// Create inserts a new posting. A unique violation on transaction_id comes
// back as gorm.ErrDuplicatedKey (TranslateError is enabled on the connection).
func (r *PostingRepository) Create(ctx context.Context, posting *models.PaymentPosting) error {
	return r.db.WithContext(ctx).Create(posting).Error
}

// GetByTransactionID retrieves a posting by the gateway-assigned id.
func (r *PostingRepository) GetByTransactionID(ctx context.Context, transactionID string) (*models.PaymentPosting, error) {
	var posting models.PaymentPosting
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&posting).Error; err != nil {
		return nil, err
	}
	return &posting, nil
}

// RecordRepost registers a gateway retry: bumps repost_count and refreshes
// last_received_at atomically, then returns the stored record so the original
// acknowledgement can be replayed.
func (r *PostingRepository) RecordRepost(ctx context.Context, transactionID string) (*models.PaymentPosting, error) {
	res := r.db.WithContext(ctx).Model(&models.PaymentPosting{}).
		Where("transaction_id = ?", transactionID).
		UpdateColumns(map[string]interface{}{
			"repost_count":     gorm.Expr("repost_count + 1"),
			"last_received_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByTransactionID(ctx, transactionID)
}

// Update persists the posting's current field values.
func (r *PostingRepository) Update(ctx context.Context, posting *models.PaymentPosting) error {
	return r.db.WithContext(ctx).Save(posting).Error
}

// FindTicketClaimant returns the posting (other than excludeID) that already
// holds the ticket as related_ticket, or nil when the ticket is unclaimed.
func (r *PostingRepository) FindTicketClaimant(ctx context.Context, ticketID, excludeID string) (*models.PaymentPosting, error) {
	var posting models.PaymentPosting
	err := r.db.WithContext(ctx).
		Where("related_ticket_id = ? AND id <> ?", ticketID, excludeID).
		Order("created_at").
		First(&posting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &posting, nil
}

// ClaimTicket links the posting to the ticket with the given reconciliation
// status. The claim must be exclusive, so the ticket row is locked FOR UPDATE
// and the claimant check re-runs inside the transaction; losing the race
// returns ErrTicketAlreadyClaimed with the winner's transaction id.
func (r *PostingRepository) ClaimTicket(ctx context.Context, posting *models.PaymentPosting, ticket *models.Ticket, status models.ReconciliationStatus, reconciledBy string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked models.Ticket
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", ticket.ID).
			First(&locked).Error; err != nil {
			return err
		}

		var claimant models.PaymentPosting
		err := tx.Where("related_ticket_id = ? AND id <> ?", ticket.ID, posting.ID).
			First(&claimant).Error
		if err == nil {
			return &ErrTicketAlreadyClaimed{TransactionID: claimant.TransactionID}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now().UTC()
		posting.RelatedTicketID = &ticket.ID
		posting.ReconciliationStatus = status
		posting.ReconciledAt = &now
		posting.ManuallyReconciledBy = reconciledBy
		return tx.Save(posting).Error
	})
}

// List returns postings in the date range, newest first, capped by q.Limit.
func (r *PostingRepository) List(ctx context.Context, q dto.SettlementQuery) ([]models.PaymentPosting, error) {
	var postings []models.PaymentPosting
	err := r.scoped(ctx, q).
		Order("transaction_datetime DESC").
		Limit(q.Limit).
		Find(&postings).Error
	if err != nil {
		return nil, err
	}
	return postings, nil
}

// Summarize aggregates counts and approved-amount sums over the date range.
// The groupings mirror the posting model's predicates exactly so dashboard
// numbers agree with the review queue.
func (r *PostingRepository) Summarize(ctx context.Context, q dto.SettlementQuery) (*dto.SettlementSummary, error) {
	var summary dto.SettlementSummary

	count := func(db *gorm.DB) (int64, error) {
		var n int64
		err := db.Model(&models.PaymentPosting{}).Count(&n).Error
		return n, err
	}

	var err error
	if summary.Verification.Total, err = count(r.scoped(ctx, q)); err != nil {
		return nil, err
	}

	verificationCounts := map[models.VerificationStatus]*int64{
		models.VerificationUnverified: &summary.Verification.Unverified,
		models.VerificationVerified:   &summary.Verification.Verified,
		models.VerificationRejected:   &summary.Verification.Rejected,
		models.VerificationFlagged:    &summary.Verification.Flagged,
	}
	for status, dst := range verificationCounts {
		if *dst, err = count(r.scoped(ctx, q).Where("verification_status = ?", status)); err != nil {
			return nil, err
		}
	}

	reconciliationCounts := map[models.ReconciliationStatus]*int64{
		models.ReconciliationAutoMatched:    &summary.Reconciliation.AutoMatched,
		models.ReconciliationAmountMismatch: &summary.Reconciliation.AmountMismatch,
		models.ReconciliationNotFound:       &summary.Reconciliation.NotFound,
		models.ReconciliationDuplicate:      &summary.Reconciliation.Duplicate,
		models.ReconciliationManualMatch:    &summary.Reconciliation.ManualMatch,
	}
	for status, dst := range reconciliationCounts {
		if *dst, err = count(r.scoped(ctx, q).Where("reconciliation_status = ?", status)); err != nil {
			return nil, err
		}
	}

	if summary.Payment.Approved, err = count(r.scoped(ctx, q).Where("response_code IN ?", approvedCodes)); err != nil {
		return nil, err
	}
	if summary.Payment.Declined, err = count(r.scoped(ctx, q).Where("response_code NOT IN ?", approvedCodes)); err != nil {
		return nil, err
	}

	if summary.Security.ChecksumValid, err = count(r.scoped(ctx, q).Where("is_checksum_valid = ?", true)); err != nil {
		return nil, err
	}
	if summary.Security.ChecksumInvalid, err = count(r.scoped(ctx, q).Where("is_checksum_valid = ?", false)); err != nil {
		return nil, err
	}

	sum := func(db *gorm.DB) (decimal.Decimal, error) {
		var row struct {
			Total decimal.Decimal
		}
		err := db.Model(&models.PaymentPosting{}).
			Select("COALESCE(SUM(amount), 0) AS total").
			Scan(&row).Error
		return row.Total, err
	}

	if summary.Amount.TotalAmount, err = sum(r.scoped(ctx, q).Where("response_code IN ?", approvedCodes)); err != nil {
		return nil, err
	}
	if summary.Amount.VerifiedAmount, err = sum(r.scoped(ctx, q).
		Where("response_code IN ?", approvedCodes).
		Where("verification_status = ?", models.VerificationVerified)); err != nil {
		return nil, err
	}
	summary.Amount.PendingAmount = summary.Amount.TotalAmount.Sub(summary.Amount.VerifiedAmount)

	return &summary, nil
}

var approvedCodes = []string{"0", "00", "000"}

func (r *PostingRepository) scoped(ctx context.Context, q dto.SettlementQuery) *gorm.DB {
	db := r.db.WithContext(ctx).
		Where("transaction_datetime >= ? AND transaction_datetime < ?", q.From, q.To)

	if q.VerificationStatus != "" && q.VerificationStatus != "ALL" {
		db = db.Where("verification_status = ?", q.VerificationStatus)
	}
	if q.ReconciliationStatus != "" && q.ReconciliationStatus != "ALL" {
		db = db.Where("reconciliation_status = ?", q.ReconciliationStatus)
	}
	switch q.PaymentStatus {
	case "approved":
		db = db.Where("response_code IN ?", approvedCodes)
	case "declined":
		db = db.Where("response_code NOT IN ?", approvedCodes)
	}
	if q.MerchantID != "" && q.MerchantID != "ALL" {
		db = db.Where("merchant_id = ?", q.MerchantID)
	}
	return db
}
