package models

import "time"

const (
	PostingReceivedTopic   = "settlements.posting.received"
	PostingReconciledTopic = "settlements.posting.reconciled"
	SettlementsDLQTopic    = "settlements.dlq"
)

// PostingReceivedEvent triggers the asynchronous validation/reconciliation
// pipeline for a freshly persisted posting. The record is the durable fact;
// the event only carries enough to find it again.
type PostingReceivedEvent struct {
	PostingID     string    `json:"posting_id"`
	TransactionID string    `json:"transaction_id"`
	MerchantID    string    `json:"merchant_id"`
	ReceivedAt    time.Time `json:"received_at"`
}

// PostingReconciledEvent is published after the automated pipeline has parked
// a posting in PENDING_VERIFICATION, for downstream consumers (dashboards,
// settlement batching).
type PostingReconciledEvent struct {
	PostingID            string               `json:"posting_id"`
	TransactionID        string               `json:"transaction_id"`
	ProcessingStatus     ProcessingStatus     `json:"processing_status"`
	ReconciliationStatus ReconciliationStatus `json:"reconciliation_status"`
	IsChecksumValid      bool                 `json:"is_checksum_valid"`
	RelatedTicketID      string               `json:"related_ticket_id,omitempty"`
	ProcessedAt          time.Time            `json:"processed_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
