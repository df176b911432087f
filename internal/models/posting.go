package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProcessingStatus string
type VerificationStatus string
type ReconciliationStatus string

const (
	ProcessingReceived            ProcessingStatus = "RECEIVED"
	ProcessingValidated           ProcessingStatus = "VALIDATED"
	ProcessingValidationFailed    ProcessingStatus = "VALIDATION_FAILED"
	ProcessingReconciling         ProcessingStatus = "RECONCILING"
	ProcessingPendingVerification ProcessingStatus = "PENDING_VERIFICATION"

	VerificationUnverified VerificationStatus = "UNVERIFIED"
	VerificationVerified   VerificationStatus = "VERIFIED"
	VerificationRejected   VerificationStatus = "REJECTED"
	VerificationFlagged    VerificationStatus = "FLAGGED"
	VerificationDisputed   VerificationStatus = "DISPUTED"

	ReconciliationPending        ReconciliationStatus = "PENDING"
	ReconciliationAutoMatched    ReconciliationStatus = "AUTO_MATCHED"
	ReconciliationAmountMismatch ReconciliationStatus = "AMOUNT_MISMATCH"
	ReconciliationNotFound       ReconciliationStatus = "NOT_FOUND"
	ReconciliationDuplicate      ReconciliationStatus = "DUPLICATE"
	ReconciliationManualMatch    ReconciliationStatus = "MANUAL_MATCH"
)

// approvedResponseCodes is the gateway's fixed allow-set for a successful payment.
var approvedResponseCodes = map[string]struct{}{
	"0":   {},
	"00":  {},
	"000": {},
}

// processingTransitions is the only legal set of processing_status moves.
// Anything outside this table is a programming error, not data.
var processingTransitions = map[ProcessingStatus][]ProcessingStatus{
	ProcessingReceived:         {ProcessingValidated, ProcessingValidationFailed},
	ProcessingValidated:        {ProcessingReconciling, ProcessingPendingVerification},
	ProcessingValidationFailed: {ProcessingPendingVerification},
	ProcessingReconciling:      {ProcessingPendingVerification},
}

// PaymentPosting is one settlement event delivered by the payment gateway.
// A row is created once per transaction_id and never deleted; gateway retries
// only bump repost_count. The three status axes evolve independently:
// processing_status through the automated pipeline, reconciliation_status
// through the matcher, verification_status through the human review workflow.
type PaymentPosting struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	TransactionID string `gorm:"uniqueIndex;size:50;not null" json:"transaction_id"`
	MerchantID    string `gorm:"size:45;index" json:"merchant_id"`
	RRN           string `gorm:"size:50;index" json:"rrn"`
	STAN          string `gorm:"size:6" json:"stan,omitempty"`
	TerminalID    string `gorm:"size:20" json:"terminal_id,omitempty"`
	AuthCode      string `gorm:"size:60" json:"auth_code,omitempty"`

	Amount    decimal.Decimal `gorm:"type:numeric(15,2)" json:"amount"`
	CashBack  decimal.Decimal `gorm:"type:numeric(15,2);default:0" json:"cash_back"`
	TipAmount decimal.Decimal `gorm:"type:numeric(15,2);default:0" json:"tip_amount"`

	TransactionDate     string    `gorm:"size:10" json:"transaction_date"`
	TransactionTime     string    `gorm:"size:8" json:"transaction_time"`
	TransactionDatetime time.Time `gorm:"index" json:"transaction_datetime"`

	ResponseCode      string `gorm:"size:6;index" json:"response_code"`
	TransactionStatus string `gorm:"size:100" json:"transaction_status"`

	InvoiceNumber string `gorm:"size:100;index" json:"invoice_number,omitempty"`
	BillNumber    string `gorm:"size:100" json:"bill_number,omitempty"`
	RefTxnID      string `gorm:"size:45" json:"ref_txn_id,omitempty"`

	CardNumber     string `gorm:"size:16" json:"card_number,omitempty"`
	CardHolderName string `gorm:"size:150" json:"card_holder_name,omitempty"`
	CardType       string `gorm:"size:45" json:"card_type,omitempty"`
	AcquirerName   string `gorm:"size:50" json:"acquirer_name,omitempty"`
	CurrencyID     string `gorm:"size:5" json:"currency_id,omitempty"`
	Narration      string `gorm:"size:100" json:"narration,omitempty"`

	ChecksumReceived   string `gorm:"size:512" json:"checksum_received"`
	ChecksumCalculated string `gorm:"size:512" json:"checksum_calculated,omitempty"`
	IsChecksumValid    bool   `gorm:"index" json:"is_checksum_valid"`
	ValidationError    string `gorm:"type:text" json:"validation_error,omitempty"`

	ProcessingStatus     ProcessingStatus     `gorm:"size:30;index;default:RECEIVED" json:"processing_status"`
	VerificationStatus   VerificationStatus   `gorm:"size:20;index;default:UNVERIFIED" json:"verification_status"`
	ReconciliationStatus ReconciliationStatus `gorm:"size:20;index;default:PENDING" json:"reconciliation_status"`

	RelatedTicketID     *string `gorm:"size:36;index" json:"related_ticket_id,omitempty"`
	ReconciliationError string  `gorm:"type:text" json:"reconciliation_error,omitempty"`
	ReconciledAt        *time.Time `json:"reconciled_at,omitempty"`
	ManuallyReconciledBy string    `gorm:"size:150" json:"manually_reconciled_by,omitempty"`

	VerifiedBy        string     `gorm:"size:150" json:"verified_by,omitempty"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
	VerificationNotes string     `gorm:"type:text" json:"verification_notes,omitempty"`
	ManagerNotes      string     `gorm:"type:text" json:"manager_notes,omitempty"`

	SettlementBatchID string     `gorm:"size:50;index" json:"settlement_batch_id,omitempty"`
	SettledAt         *time.Time `json:"settled_at,omitempty"`

	RepostCount     int       `gorm:"default:0" json:"repost_count"`
	FirstReceivedAt time.Time `gorm:"autoCreateTime" json:"first_received_at"`
	LastReceivedAt  time.Time `gorm:"autoUpdateTime" json:"last_received_at"`

	RawPayload   []byte `gorm:"type:jsonb" json:"-"`
	ResponseSent []byte `gorm:"type:jsonb" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PaymentPosting) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return
}

// IsPaymentSuccessful reports whether the gateway approved the payment.
func (p *PaymentPosting) IsPaymentSuccessful() bool {
	_, ok := approvedResponseCodes[p.ResponseCode]
	return ok
}

// NeedsManagerAttention is the single source of truth for the review queue:
// anything unverified or flagged, anything that failed the checksum, and any
// reconciliation outcome that is not a clean match.
func (p *PaymentPosting) NeedsManagerAttention() bool {
	return p.VerificationStatus == VerificationUnverified ||
		p.VerificationStatus == VerificationFlagged ||
		!p.IsChecksumValid ||
		p.ReconciliationStatus == ReconciliationAmountMismatch ||
		p.ReconciliationStatus == ReconciliationNotFound ||
		p.ReconciliationStatus == ReconciliationDuplicate
}

// IsReadyForSettlement reports whether the downstream settlement batcher may
// pick this posting up.
func (p *PaymentPosting) IsReadyForSettlement() bool {
	return p.VerificationStatus == VerificationVerified &&
		p.IsPaymentSuccessful() &&
		p.SettlementBatchID == ""
}

// TotalAmount is the gross amount including cashback and tip.
func (p *PaymentPosting) TotalAmount() decimal.Decimal {
	return p.Amount.Add(p.CashBack).Add(p.TipAmount)
}

// TransitionProcessing moves processing_status along the pipeline's state
// machine, rejecting any move the transition table does not allow.
func (p *PaymentPosting) TransitionProcessing(next ProcessingStatus) error {
	for _, allowed := range processingTransitions[p.ProcessingStatus] {
		if allowed == next {
			p.ProcessingStatus = next
			return nil
		}
	}
	return &InvalidTransitionError{From: p.ProcessingStatus, To: next}
}

// InvalidTransitionError reports an illegal processing_status move.
type InvalidTransitionError struct {
	From ProcessingStatus
	To   ProcessingStatus
}

func (e *InvalidTransitionError) Error() string {
	return "invalid processing status transition: " + string(e.From) + " -> " + string(e.To)
}

func (s ProcessingStatus) IsValid() bool {
	switch s {
	case ProcessingReceived, ProcessingValidated, ProcessingValidationFailed,
		ProcessingReconciling, ProcessingPendingVerification:
		return true
	default:
		return false
	}
}

func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationUnverified, VerificationVerified, VerificationRejected,
		VerificationFlagged, VerificationDisputed:
		return true
	default:
		return false
	}
}

// IsDecision reports whether the status is one a reviewer may request.
func (s VerificationStatus) IsDecision() bool {
	switch s {
	case VerificationVerified, VerificationRejected, VerificationFlagged:
		return true
	default:
		return false
	}
}

func (s ReconciliationStatus) IsValid() bool {
	switch s {
	case ReconciliationPending, ReconciliationAutoMatched, ReconciliationAmountMismatch,
		ReconciliationNotFound, ReconciliationDuplicate, ReconciliationManualMatch:
		return true
	default:
		return false
	}
}
