package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VerificationRequest is a reviewer's decision on one posting.
type VerificationRequest struct {
	TransactionRef     string `json:"transaction_ref"`
	VerificationStatus string `json:"verification_status"`
	Notes              string `json:"notes,omitempty"`
}

func (v *VerificationRequest) Sanitize() {
	v.TransactionRef = strings.TrimSpace(v.TransactionRef)
	v.VerificationStatus = strings.ToUpper(strings.TrimSpace(v.VerificationStatus))
}

// ManualMatchRequest links a posting to a ticket by hand when the automated
// matcher could not.
type ManualMatchRequest struct {
	TransactionRef string `json:"transaction_ref"`
	TicketNumber   string `json:"ticket_number"`
	Notes          string `json:"notes,omitempty"`
}

func (m *ManualMatchRequest) Sanitize() {
	m.TransactionRef = strings.TrimSpace(m.TransactionRef)
	m.TicketNumber = strings.TrimSpace(m.TicketNumber)
}

// SettlementFilter scopes the listing and summary queries. FromDate and
// ToDate are required, everything else optional; "ALL" means no filter, the
// same convention the dashboard sends.
type SettlementFilter struct {
	FromDate             string
	ToDate               string
	VerificationStatus   string
	ReconciliationStatus string
	PaymentStatus        string
	MerchantID           string
}

// SettlementQuery is the parsed form of SettlementFilter handed to the
// store: a half-open [From, To) datetime range plus the optional filters.
type SettlementQuery struct {
	From                 time.Time
	To                   time.Time
	VerificationStatus   string
	ReconciliationStatus string
	PaymentStatus        string
	MerchantID           string
	Limit                int
}

// SettlementSummary is the dashboard aggregation over a date range. All
// groupings reuse the classification predicates of the posting model so the
// numbers can never drift from the review queue's view of the world.
type SettlementSummary struct {
	Verification   VerificationSummary   `json:"verification_summary"`
	Reconciliation ReconciliationSummary `json:"reconciliation_summary"`
	Payment        PaymentSummary        `json:"payment_summary"`
	Amount         AmountSummary         `json:"amount_summary"`
	Security       SecuritySummary       `json:"security_summary"`
}

type VerificationSummary struct {
	Total      int64 `json:"total"`
	Unverified int64 `json:"unverified"`
	Verified   int64 `json:"verified"`
	Rejected   int64 `json:"rejected"`
	Flagged    int64 `json:"flagged"`
}

type ReconciliationSummary struct {
	AutoMatched    int64 `json:"auto_matched"`
	AmountMismatch int64 `json:"amount_mismatch"`
	NotFound       int64 `json:"not_found"`
	Duplicate      int64 `json:"duplicate"`
	ManualMatch    int64 `json:"manual_match"`
}

type PaymentSummary struct {
	Approved int64 `json:"approved"`
	Declined int64 `json:"declined"`
}

type AmountSummary struct {
	TotalAmount    decimal.Decimal `json:"total_amount"`
	VerifiedAmount decimal.Decimal `json:"verified_amount"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
}

type SecuritySummary struct {
	ChecksumValid   int64 `json:"checksum_valid"`
	ChecksumInvalid int64 `json:"checksum_invalid"`
}
