package service

import (
	"context"
	"errors"
	"time"

	"github.com/transitpay/settlement-service/internal/models"
	"github.com/transitpay/settlement-service/internal/models/dto"
)

// maxSettlementRecords caps review listings; the dashboard pages by date
// range, not offset.
const maxSettlementRecords = 500

const queryDateLayout = "2006-01-02"

// ErrBadDateRange rejects listing/summary requests without a usable range.
var ErrBadDateRange = errors.New("from_date and to_date are required (YYYY-MM-DD)")

// SummaryService is the read-only aggregation side of settlement. It owns no
// classification logic of its own: all groupings are delegated to the store,
// which mirrors the posting model's predicates.
type SummaryService struct {
	Repo PostingRepo
}

func NewSummaryService(repo PostingRepo) *SummaryService {
	return &SummaryService{
		Repo: repo,
	}
}

// Summarize returns the settlement dashboard numbers for a date range.
func (s *SummaryService) Summarize(ctx context.Context, reviewer models.Reviewer, filter dto.SettlementFilter) (*dto.SettlementSummary, error) {
	if !reviewer.IsElevated() {
		return nil, ErrInsufficientRole
	}

	query, err := buildSettlementQuery(filter)
	if err != nil {
		return nil, err
	}
	return s.Repo.Summarize(ctx, query)
}

// buildSettlementQuery parses the wire-level filter into the store query.
// The range is half-open: [from 00:00, to+1d 00:00).
func buildSettlementQuery(filter dto.SettlementFilter) (dto.SettlementQuery, error) {
	if filter.FromDate == "" || filter.ToDate == "" {
		return dto.SettlementQuery{}, ErrBadDateRange
	}
	from, err := time.Parse(queryDateLayout, filter.FromDate)
	if err != nil {
		return dto.SettlementQuery{}, ErrBadDateRange
	}
	to, err := time.Parse(queryDateLayout, filter.ToDate)
	if err != nil {
		return dto.SettlementQuery{}, ErrBadDateRange
	}

	return dto.SettlementQuery{
		From:                 from,
		To:                   to.AddDate(0, 0, 1),
		VerificationStatus:   filter.VerificationStatus,
		ReconciliationStatus: filter.ReconciliationStatus,
		PaymentStatus:        filter.PaymentStatus,
		MerchantID:           filter.MerchantID,
		Limit:                maxSettlementRecords,
	}, nil
}
