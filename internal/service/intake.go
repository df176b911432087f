package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/transitpay/settlement-service/internal/checksum"
	"github.com/transitpay/settlement-service/internal/models"
	"github.com/transitpay/settlement-service/internal/models/dto"
	"gorm.io/gorm"
)

const (
	gatewayDateLayout = "02-01-2006"
	gatewayTimeLayout = "15:04:05"
)

// MissingFieldsError rejects a payload missing required gateway fields.
// No record is created for these; the gateway must resend a complete posting.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidDateTimeError rejects a payload whose transactionDate/transactionTime
// pair cannot be parsed. No record is created.
type InvalidDateTimeError struct {
	Reason string
}

func (e *InvalidDateTimeError) Error() string {
	return "invalid date/time format: " + e.Reason
}

// IntakeService is the payment intake pipeline. Ingest accepts gateway
// postings idempotently; Process drives the automated
// checksum -> reconciliation stages of the processing state machine.
type IntakeService struct {
	Repo      PostingRepo
	Validator *checksum.Validator
	Matcher   *Matcher
	Publisher Publisher
}

func NewIntakeService(repo PostingRepo, validator *checksum.Validator, matcher *Matcher, publisher Publisher) *IntakeService {
	return &IntakeService{
		Repo:      repo,
		Validator: validator,
		Matcher:   matcher,
		Publisher: publisher,
	}
}

// Ingest accepts one gateway posting and returns the acknowledgement payload.
// The endpoint is safe under at-least-once delivery: creation races on the
// transaction_id unique constraint, and the loser takes the repost path,
// replaying the acknowledgement persisted with the original record.
func (s *IntakeService) Ingest(ctx context.Context, payload *dto.GatewayPosting, raw []byte) (*dto.Acknowledgement, error) {
	payload.Sanitize()

	if missing := payload.MissingRequiredFields(); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	transactionDatetime, err := parseGatewayDatetime(payload.TransactionDate, payload.TransactionTime)
	if err != nil {
		return nil, &InvalidDateTimeError{Reason: err.Error()}
	}

	posting := payload.ToEntity()
	posting.TransactionDatetime = transactionDatetime
	posting.RawPayload = raw

	ack := &dto.Acknowledgement{
		Status:           http.StatusOK,
		Message:          "success",
		MerchantRefTxnID: posting.BillNumber,
	}
	// The ack is persisted with the record so reposts answer byte-identically.
	posting.ResponseSent, err = json.Marshal(ack)
	if err != nil {
		return nil, err
	}

	err = s.Repo.Create(ctx, posting)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return s.acknowledgeRepost(ctx, payload.TransactionID)
	}
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"transaction_id": posting.TransactionID,
		"merchant_id":    posting.MerchantID,
	}).Info("posting received")

	event := models.PostingReceivedEvent{
		PostingID:     posting.ID,
		TransactionID: posting.TransactionID,
		MerchantID:    posting.MerchantID,
		ReceivedAt:    posting.FirstReceivedAt,
	}
	if err := s.Publisher.Publish(ctx, models.PostingReceivedTopic, event); err != nil {
		// The RECEIVED record is the durable fact and the gateway ack must
		// not depend on the broker, so fall back to inline processing.
		logrus.Errorf("publish posting.received failed, processing inline: %s", err.Error())
		go func() {
			if err := s.Process(context.Background(), posting.TransactionID); err != nil {
				logrus.Errorf("inline processing failed for %s: %s", posting.TransactionID, err.Error())
			}
		}()
	}

	return ack, nil
}

func (s *IntakeService) acknowledgeRepost(ctx context.Context, transactionID string) (*dto.Acknowledgement, error) {
	existing, err := s.Repo.RecordRepost(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"transaction_id": transactionID,
		"repost_count":   existing.RepostCount,
	}).Info("posting repost acknowledged")

	if len(existing.ResponseSent) > 0 {
		var stored dto.Acknowledgement
		if err := json.Unmarshal(existing.ResponseSent, &stored); err == nil {
			return &stored, nil
		}
	}
	return &dto.Acknowledgement{
		Status:           http.StatusOK,
		Message:          "success",
		MerchantRefTxnID: existing.BillNumber,
	}, nil
}

// Process runs the automated stages for one posting, in fixed order:
// checksum validation, then reconciliation for approved authentic payments.
// It is resumable: re-delivery of the trigger event picks up from whatever
// stage the posting last reached, and a posting that already hit
// PENDING_VERIFICATION is a no-op. Whatever happens during matching, the
// posting ends in PENDING_VERIFICATION so the review queue is the universal
// catch-all.
func (s *IntakeService) Process(ctx context.Context, transactionID string) error {
	posting, err := s.Repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return err
	}

	if posting.ProcessingStatus == models.ProcessingPendingVerification {
		logrus.Infof("posting %s already processed, skipping", transactionID)
		return nil
	}

	if posting.ProcessingStatus == models.ProcessingReceived {
		if err := s.runValidationStage(ctx, posting); err != nil {
			return err
		}
	}

	eligible := posting.IsChecksumValid && posting.IsPaymentSuccessful()
	if (posting.ProcessingStatus == models.ProcessingValidated && !eligible) ||
		posting.ProcessingStatus == models.ProcessingValidationFailed {
		return s.park(ctx, posting)
	}

	if posting.ProcessingStatus == models.ProcessingValidated {
		if err := posting.TransitionProcessing(models.ProcessingReconciling); err != nil {
			return err
		}
		if err := s.Repo.Update(ctx, posting); err != nil {
			return err
		}
	}

	outcome := s.Matcher.Match(ctx, posting)
	s.applyOutcome(posting, outcome)
	return s.park(ctx, posting)
}

func (s *IntakeService) runValidationStage(ctx context.Context, posting *models.PaymentPosting) error {
	result := s.Validator.Validate(posting.TransactionID, posting.MerchantID, posting.RRN, posting.ChecksumReceived)

	posting.ChecksumCalculated = result.Calculated
	posting.IsChecksumValid = result.IsValid
	posting.ValidationError = result.Err

	next := models.ProcessingValidated
	if !result.IsValid {
		next = models.ProcessingValidationFailed
		logrus.Warnf("checksum validation failed for %s: %s", posting.TransactionID, result.Err)
	}
	if err := posting.TransitionProcessing(next); err != nil {
		return err
	}
	return s.Repo.Update(ctx, posting)
}

func (s *IntakeService) applyOutcome(posting *models.PaymentPosting, outcome Outcome) {
	switch outcome.Status {
	case models.ReconciliationAutoMatched:
		// ClaimTicket already recorded the link, status and timestamp.
		posting.ReconciliationError = ""
	case models.ReconciliationAmountMismatch:
		posting.ReconciliationStatus = outcome.Status
		posting.ReconciliationError = outcome.Err
		if outcome.Ticket != nil {
			// The ticket stays attached for operator visibility even though
			// the match is not finalized.
			posting.RelatedTicketID = &outcome.Ticket.ID
		}
	case models.ReconciliationNotFound, models.ReconciliationDuplicate:
		posting.ReconciliationStatus = outcome.Status
		posting.ReconciliationError = outcome.Err
	default:
		// Lookup failure: classification stays PENDING, the error is data.
		posting.ReconciliationError = outcome.Err
	}
}

// park forces the posting into PENDING_VERIFICATION and announces the final
// automated disposition.
func (s *IntakeService) park(ctx context.Context, posting *models.PaymentPosting) error {
	if err := posting.TransitionProcessing(models.ProcessingPendingVerification); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, posting); err != nil {
		return err
	}

	event := models.PostingReconciledEvent{
		PostingID:            posting.ID,
		TransactionID:        posting.TransactionID,
		ProcessingStatus:     posting.ProcessingStatus,
		ReconciliationStatus: posting.ReconciliationStatus,
		IsChecksumValid:      posting.IsChecksumValid,
		ProcessedAt:          time.Now().UTC(),
	}
	if posting.RelatedTicketID != nil {
		event.RelatedTicketID = *posting.RelatedTicketID
	}
	if err := s.Publisher.Publish(ctx, models.PostingReconciledTopic, event); err != nil {
		// Downstream consumers can rebuild from the store; don't fail the run.
		logrus.Errorf("publish posting.reconciled failed for %s: %s", posting.TransactionID, err.Error())
	}
	return nil
}

func parseGatewayDatetime(dateStr, timeStr string) (time.Time, error) {
	date, err := time.Parse(gatewayDateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("transactionDate %q: expected DD-MM-YYYY", dateStr)
	}
	clock, err := time.Parse(gatewayTimeLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("transactionTime %q: expected HH:MM:SS", timeStr)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC), nil
}
